// SPDX-License-Identifier: MIT
// Package vmap_test verifies Map and Set contracts: overwrite semantics,
// insertion-order iteration, growth, slot recycling and the entry limit.
package vmap_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bidir/vmap"
)

// TestMap_PutGetOverwrite VERIFIES that Put inserts once and overwrites after.
func TestMap_PutGetOverwrite(t *testing.T) {
	// Stage 1: fresh map is empty.
	m := vmap.New[int, string]()
	require.Equal(t, 0, m.Len())
	_, err := m.Get(7)
	require.ErrorIs(t, err, vmap.ErrKeyNotFound)

	// Stage 2: insert and read back.
	require.NoError(t, m.Put(7, "a"))
	v, err := m.Get(7)
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	// Stage 3: overwrite keeps the size.
	require.NoError(t, m.Put(7, "b"))
	assert.Equal(t, 1, m.Len())
	v, ok := m.Lookup(7)
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	assert.Equal(t, "b", m.MustGet(7))
}

func TestMap_MustGetPanicsOnMissing(t *testing.T) {
	m := vmap.New[int, int]()
	assert.PanicsWithValue(t, vmap.ErrKeyNotFound, func() { m.MustGet(1) })
}

// TestMap_GrowthPreservesEntries inserts far past the initial capacity and
// checks that every key survives rehashing.
func TestMap_GrowthPreservesEntries(t *testing.T) {
	const n = 5000
	m := vmap.New[int, int](vmap.WithCapacity(16), vmap.WithLoadFactor(0.75))
	for i := 0; i < n; i++ {
		require.NoError(t, m.Put(i*31, i))
	}

	require.Equal(t, n, m.Len())
	assert.GreaterOrEqual(t, float64(m.Capacity())*0.75, float64(n)*0.5)
	for i := 0; i < n; i++ {
		v, ok := m.Lookup(i * 31)
		require.True(t, ok, "key %d lost", i*31)
		require.Equal(t, i, v)
	}
	assert.False(t, m.Contains(1))
}

func TestMap_CapacityFloorsAndPowerOfTwo(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, vmap.MinCapacity},
		{3, vmap.MinCapacity},
		{16, 16},
		{17, 32},
		{1000, 1024},
		{1024, 1024},
	}
	for _, tc := range cases {
		m := vmap.New[int, int](vmap.WithCapacity(tc.in))
		assert.Equal(t, tc.want, m.Capacity(), "WithCapacity(%d)", tc.in)
	}
}

func TestMap_LoadFactorAboveOneDelaysGrowth(t *testing.T) {
	m := vmap.New[int, int](vmap.WithCapacity(16), vmap.WithLoadFactor(1.3))
	// 16*1.3 = 20 entries fit before the first doubling.
	for i := 0; i < 20; i++ {
		require.NoError(t, m.Put(i, i))
	}
	assert.Equal(t, 16, m.Capacity())
	require.NoError(t, m.Put(20, 20))
	assert.Equal(t, 32, m.Capacity())
}

// TestMap_HugeLoadFactorNeverGrows VERIFIES that a load factor whose threshold
// exceeds the int range keeps the initial bucket array instead of doubling on
// every insert.
func TestMap_HugeLoadFactorNeverGrows(t *testing.T) {
	for _, lf := range []float64{1e300, math.MaxFloat64} {
		m := vmap.New[int, int](vmap.WithCapacity(32), vmap.WithLoadFactor(lf))
		for i := 0; i < 64; i++ {
			require.NoError(t, m.Put(i, i))
		}
		assert.Equal(t, 32, m.Capacity(), "load factor %g", lf)
		assert.Equal(t, 64, m.Len())
		for i := 0; i < 64; i++ {
			require.Equal(t, i, m.MustGet(i))
		}
	}
}

func TestMap_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { vmap.WithCapacity(-1) })
	assert.Panics(t, func() { vmap.WithLoadFactor(0) })
	assert.Panics(t, func() { vmap.WithLoadFactor(-2) })
	assert.Panics(t, func() { vmap.WithLoadFactor(math.Inf(1)) })
	assert.Panics(t, func() { vmap.WithLoadFactor(math.NaN()) })
	assert.Panics(t, func() { vmap.WithMaxEntries(-1) })
}

// TestMap_RemoveAndOrder VERIFIES insertion-order iteration across removals
// and slot reuse.
func TestMap_RemoveAndOrder(t *testing.T) {
	// Stage 1: insert 0..9.
	m := vmap.New[int, int]()
	for i := 0; i < 10; i++ {
		require.NoError(t, m.Put(i, i*i))
	}

	// Stage 2: remove head, tail and a middle key.
	assert.True(t, m.Remove(0))
	assert.True(t, m.Remove(9))
	assert.True(t, m.Remove(4))
	assert.False(t, m.Remove(4))
	assert.False(t, m.Remove(100))
	require.Equal(t, 7, m.Len())

	// Stage 3: new keys land at the end of the order even when they reuse slots.
	require.NoError(t, m.Put(42, 1))
	require.NoError(t, m.Put(43, 2))

	got := slices.Collect(m.Keys())
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7, 8, 42, 43}, got)

	// Stage 4: overwrite does not move the key.
	require.NoError(t, m.Put(1, -1))
	got = slices.Collect(m.Keys())
	assert.Equal(t, 1, got[0])
}

func TestMap_RemoveCurrentDuringIteration(t *testing.T) {
	m := vmap.New[int, bool]()
	for i := 0; i < 50; i++ {
		require.NoError(t, m.Put(i, i%2 == 0))
	}
	for k, even := range m.All() {
		if even {
			m.Remove(k)
		}
	}
	require.Equal(t, 25, m.Len())
	for k := range m.Keys() {
		assert.Equal(t, 1, k%2)
	}
}

func TestMap_AllStopsEarly(t *testing.T) {
	m := vmap.New[int, int]()
	for i := 0; i < 10; i++ {
		require.NoError(t, m.Put(i, i))
	}
	seen := 0
	for range m.All() {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestMap_ClearKeepsCapacity(t *testing.T) {
	m := vmap.New[int, int]()
	for i := 0; i < 300; i++ {
		require.NoError(t, m.Put(i, i))
	}
	capBefore := m.Capacity()
	m.Clear()

	assert.Equal(t, 0, m.Len())
	assert.Equal(t, capBefore, m.Capacity())
	assert.False(t, m.Contains(5))
	assert.Empty(t, slices.Collect(m.Keys()))

	// Map is fully usable after Clear.
	require.NoError(t, m.Put(5, 50))
	assert.Equal(t, 50, m.MustGet(5))
}

// TestMap_MaxEntries VERIFIES the entry limit: new keys fail, overwrites do not.
func TestMap_MaxEntries(t *testing.T) {
	m := vmap.New[int, int](vmap.WithMaxEntries(3))
	require.NoError(t, m.Put(1, 1))
	require.NoError(t, m.Put(2, 2))
	require.NoError(t, m.Put(3, 3))

	require.ErrorIs(t, m.Put(4, 4), vmap.ErrOutOfMemory)
	assert.Equal(t, 3, m.Len())
	assert.False(t, m.Contains(4))

	require.NoError(t, m.Put(2, 20))
	assert.Equal(t, 20, m.MustGet(2))

	// Freeing a slot makes room again.
	m.Remove(1)
	require.NoError(t, m.Put(4, 4))
}

func TestMap_NegativeAndWideKeys(t *testing.T) {
	m := vmap.New[int64, int]()
	keys := []int64{-1, -1 << 40, 1 << 62, 0, -7}
	for i, k := range keys {
		require.NoError(t, m.Put(k, i))
	}
	for i, k := range keys {
		assert.Equal(t, i, m.MustGet(k))
	}
}

// TestMap_RandomizedAgainstBuiltin drives Map and a builtin map with the same
// random operation stream and compares them after every step.
func TestMap_RandomizedAgainstBuiltin(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := vmap.New[int, int](vmap.WithLoadFactor(0.2))
	ref := make(map[int]int)

	for step := 0; step < 20000; step++ {
		k := rng.Intn(512)
		switch rng.Intn(3) {
		case 0, 1:
			require.NoError(t, m.Put(k, step))
			ref[k] = step
		case 2:
			_, had := ref[k]
			require.Equal(t, had, m.Remove(k))
			delete(ref, k)
		}
		require.Equal(t, len(ref), m.Len())
	}
	for k, v := range ref {
		got, ok := m.Lookup(k)
		require.True(t, ok)
		require.Equal(t, v, got)
	}
}

func TestSet_Basics(t *testing.T) {
	s := vmap.NewSet[int]()
	require.NoError(t, s.Add(3))
	require.NoError(t, s.Add(1))
	require.NoError(t, s.Add(3))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(1))
	assert.False(t, s.Contains(2))
	assert.Equal(t, []int{3, 1}, slices.Collect(s.All()))

	assert.True(t, s.Remove(3))
	assert.False(t, s.Contains(3))
	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestSet_MaxEntries(t *testing.T) {
	s := vmap.NewSet[int](vmap.WithMaxEntries(1))
	require.NoError(t, s.Add(1))
	require.NoError(t, s.Add(1))
	require.ErrorIs(t, s.Add(2), vmap.ErrOutOfMemory)
}
