package registry_bench

import (
	"fmt"
	"testing"

	"github.com/enderryno/nuclearcraft-items/internal/domain"
	"github.com/enderryno/nuclearcraft-items/internal/naming"
	"github.com/enderryno/nuclearcraft-items/internal/registry"
)

const benchItemCount = 512

// buildRegistry seals a registry of n synthetic items
func buildRegistry(b *testing.B, n int) *registry.Registry {
	b.Helper()
	builder := registry.NewBuilder()
	for i := 1; i <= n; i++ {
		if _, err := builder.Define(domain.ItemID(i), fmt.Sprintf("Survival Item %04d", i), nil); err != nil {
			b.Fatalf("define %d: %v", i, err)
		}
	}
	return builder.Seal()
}

func BenchmarkLookupByID(b *testing.B) {
	reg := buildRegistry(b, benchItemCount)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := reg.LookupByID(domain.ItemID(i%benchItemCount + 1)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLookupByName(b *testing.B) {
	reg := buildRegistry(b, benchItemCount)
	names := make([]string, benchItemCount)
	for i := range names {
		names[i] = fmt.Sprintf("survival ITEM %04d", i+1)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := reg.LookupByName(names[i%benchItemCount]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAll(b *testing.B) {
	reg := buildRegistry(b, benchItemCount)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		count := 0
		for range reg.All() {
			count++
		}
		if count != benchItemCount {
			b.Fatalf("expected %d items, got %d", benchItemCount, count)
		}
	}
}

// Prefix queries miss the name index and scan every definition
func BenchmarkResolvePrefix(b *testing.B) {
	reg := buildRegistry(b, benchItemCount)

	for _, cacheSize := range []int{1, benchItemCount} {
		b.Run(fmt.Sprintf("cache=%d", cacheSize), func(b *testing.B) {
			resolver, err := naming.NewResolver(reg, nil, cacheSize)
			if err != nil {
				b.Fatal(err)
			}
			queries := make([]string, benchItemCount)
			for i := range queries {
				// three of four digits, so each query matches up to ten names
				queries[i] = fmt.Sprintf("survival item %03d", (i+1)/10)
			}
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = resolver.Resolve(queries[i%benchItemCount])
			}
		})
	}
}
