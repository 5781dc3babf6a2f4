package status

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetReturnsCachedPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("entity.spawned")
	b := r.Ints.Get("entity.spawned")
	assert.Same(t, a, b)

	a.Add(3)
	assert.Equal(t, int64(3), b.Load())
	assert.Equal(t, 1, r.Ints.Count())
}

func TestConcurrentRegistration(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get("combat.hits").Add(1)
			r.Bools.Get("engine.running").Store(true)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(16), r.Ints.Get("combat.hits").Load())
	assert.Equal(t, 1, r.Ints.Count())
	assert.Equal(t, 1, r.Bools.Count())
	assert.True(t, r.Bools.Get("engine.running").Load())
}

func TestSnapshotSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("b").Store(2)
	r.Ints.Get("a").Store(1)

	var keys []string
	r.Ints.Range(func(key string, _ *atomic.Int64) { keys = append(keys, key) })
	assert.Equal(t, []string{"a", "b"}, keys)
	assert.Equal(t, map[string]int64{"a": 1, "b": 2}, r.Snapshot())
}
