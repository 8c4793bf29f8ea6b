package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreIsolatesSessions(t *testing.T) {
	store := NewStore()

	a := store.Get("session-a")
	b := store.Get("session-b")
	a.Add(map[string]any{"id": "P1", "price": 10.0})

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, b.Len())
}

func TestStoreReturnsSameCartPerSession(t *testing.T) {
	store := NewStore()

	store.Get("session-a").Add(map[string]any{"id": "P1", "price": 10.0})
	again := store.Get("session-a")

	assert.Equal(t, 1, again.Len())
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Get("shared").Add(map[string]any{"id": "P1", "price": 10.0})
		}()
	}
	wg.Wait()

	item := store.Get("shared").Items()[0]
	assert.Equal(t, 16, item.Quantity)
}
