package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterVaGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("items", "collection-items")
	require.NoError(t, err)
	assert.True(t, isNew)

	// Đăng ký lại cùng key → ghi đè, isNew = false
	isNew, err = r.Register("items", "collection-items-v2")
	require.NoError(t, err)
	assert.False(t, isNew)

	got, exists := r.Get("items")
	require.True(t, exists)
	assert.Equal(t, "collection-items-v2", got)

	_, exists = r.Get("khong-ton-tai")
	assert.False(t, exists)
}

func TestRegistry_NameRong(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.Register("", 1)
	require.Error(t, err)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = r.Register("counter", n)
			_, _ = r.Get("counter")
		}(i)
	}
	wg.Wait()

	_, exists := r.Get("counter")
	assert.True(t, exists)
}
