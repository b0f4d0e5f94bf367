package handler

import (
	"net/http"
	"os"
	"runtime"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version        string `json:"version"`
	GoVersion      string `json:"go_version"`
	CatalogVersion string `json:"catalog_version,omitempty"`
	BuildTime      string `json:"build_time,omitempty"`
	GitCommit      string `json:"git_commit,omitempty"`
}

// Build-time variables (injected via ldflags)
var (
	Version   = "dev"     // Set via -X flag at build time
	BuildTime = "unknown" // Set via -X flag at build time
	GitCommit = "unset"   // Set via -X flag at build time
)

// HandleVersion returns build information and the version of the loaded item catalog
func HandleVersion(catalogVersion string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:        getVersionInfo(),
			GoVersion:      runtime.Version(),
			CatalogVersion: catalogVersion,
			BuildTime:      BuildTime,
			GitCommit:      GitCommit,
		})
	}
}

// getVersionInfo returns version from build-time variable or environment
func getVersionInfo() string {
	// Priority: build-time > environment > default
	if Version != "dev" && Version != "" {
		return Version
	}
	if envVersion := os.Getenv("VERSION"); envVersion != "" {
		return envVersion
	}
	return "dev"
}
