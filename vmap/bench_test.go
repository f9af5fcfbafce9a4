// SPDX-License-Identifier: MIT
package vmap_test

import (
	"testing"

	"github.com/katalvlaran/bidir/vmap"
)

// BenchmarkMap_Put measures insertion including amortized growth.
func BenchmarkMap_Put(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := vmap.New[int, float64](vmap.WithCapacity(1024), vmap.WithLoadFactor(1.3))
		for k := 0; k < 4096; k++ {
			_ = m.Put(k, float64(k))
		}
	}
}

// BenchmarkMap_Lookup measures hits on a populated map.
func BenchmarkMap_Lookup(b *testing.B) {
	m := vmap.New[int, float64]()
	for k := 0; k < 1<<16; k++ {
		_ = m.Put(k, float64(k))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Lookup(i & (1<<16 - 1))
	}
}

// BenchmarkBuiltinMap_Lookup is the baseline for BenchmarkMap_Lookup.
func BenchmarkBuiltinMap_Lookup(b *testing.B) {
	m := make(map[int]float64)
	for k := 0; k < 1<<16; k++ {
		m[k] = float64(k)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[i&(1<<16-1)]
	}
}
