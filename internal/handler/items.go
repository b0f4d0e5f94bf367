package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/enderryno/nuclearcraft-items/internal/domain"
	"github.com/enderryno/nuclearcraft-items/internal/logger"
	"github.com/enderryno/nuclearcraft-items/internal/metrics"
	"github.com/enderryno/nuclearcraft-items/internal/naming"
	"github.com/enderryno/nuclearcraft-items/internal/registry"
)

// ItemResponse is the API representation of an item definition
type ItemResponse struct {
	ID          domain.ItemID `json:"id"`
	DisplayName string        `json:"display_name"`
	Behavior    *string       `json:"behavior"`
	Aliases     []string      `json:"aliases,omitempty"`
}

// ItemHandler serves read-only item lookups
type ItemHandler struct {
	reg      *registry.Registry
	resolver naming.Resolver
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(reg *registry.Registry, resolver naming.Resolver) *ItemHandler {
	return &ItemHandler{reg: reg, resolver: resolver}
}

func (h *ItemHandler) toResponse(def domain.ItemDefinition) ItemResponse {
	resp := ItemResponse{
		ID:          def.ID,
		DisplayName: def.DisplayName,
		Aliases:     h.resolver.AliasesFor(def.ID),
	}
	if def.HasBehavior() {
		name := def.BehaviorName()
		resp.Behavior = &name
	}
	return resp
}

// HandleList returns every item in registration order
func (h *ItemHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	items := make([]ItemResponse, 0, h.reg.Len())
	for def := range h.reg.All() {
		items = append(items, h.toResponse(def))
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: items})
}

// HandleGetByID returns the item with the id in the URL
func (h *ItemHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(w, http.StatusBadRequest, ErrMsgInvalidItemIDError)
		return
	}

	def, err := h.reg.LookupByID(domain.ItemID(id))
	metrics.RecordLookup(metrics.LookupByID, err)
	if err != nil {
		logger.FromContext(r.Context()).Debug("Item lookup missed", "id", id)
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: h.toResponse(def)})
}

// HandleGetByName returns the item whose display name matches the URL segment
func (h *ItemHandler) HandleGetByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	def, err := h.reg.LookupByName(name)
	metrics.RecordLookup(metrics.LookupByName, err)
	if err != nil {
		logger.FromContext(r.Context()).Debug("Item lookup missed", "name", name)
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: h.toResponse(def)})
}

// HandleResolve resolves free-form input from the q query parameter
func (h *ItemHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if strings.TrimSpace(query) == "" {
		RespondError(w, http.StatusBadRequest, ErrMsgMissingQueryError)
		return
	}

	def, err := h.resolver.Resolve(query)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: h.toResponse(def)})
}
