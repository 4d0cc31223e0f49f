package middleware

import (
	"fmt"
	"testing"
)

func BenchmarkNormalizePath(b *testing.B) {
	// The paths a typical facts run touches.
	paths := []string{
		"/api/login",
		"/api/self/sites",
		"/api/s/default/stat/sta/aa:bb:cc:dd:ee:ff",
		"/api/s/default/stat/device",
		"/api/s/branch-office/rest/wlanconf/5c2e8a7f9d3b4a0011223344",
		"/api/s/default/stat/report/hourly.site",
	}

	b.Run("cached", func(b *testing.B) {
		for _, path := range paths {
			_ = normalizePath(path)
		}

		b.ReportAllocs()
		i := 0
		for b.Loop() {
			_ = normalizePath(paths[i%len(paths)])
			i++
		}
	})

	b.Run("uncached", func(b *testing.B) {
		b.ReportAllocs()
		i := 0
		for b.Loop() {
			// Unique path every iteration forces the regex path.
			_ = normalizePath(fmt.Sprintf("/api/s/site-%d/stat/device/%d", i, i))
			i++
		}
	})

	b.Run("concurrent", func(b *testing.B) {
		for _, path := range paths {
			_ = normalizePath(path)
		}

		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			i := 0
			for pb.Next() {
				_ = normalizePath(paths[i%len(paths)])
				i++
			}
		})
	})
}
