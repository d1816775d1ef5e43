package utility

import (
	"sync"
	"time"
)

// cacheEntry giữ giá trị kèm thời điểm hết hạn
type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

// Cache là in-memory cache có TTL theo từng entry, dùng cho auth middleware
// để giảm số lần query user theo token. Goroutine dọn dẹp chạy định kỳ để
// xóa các entry đã hết hạn.
type Cache struct {
	mu       sync.RWMutex
	items    map[string]cacheEntry
	ttl      time.Duration
	cleanup  time.Duration
	stopChan chan struct{}
}

// NewCache tạo cache với thời gian sống ttl cho mỗi entry và chu kỳ dọn dẹp cleanup
func NewCache(ttl, cleanup time.Duration) *Cache {
	c := &Cache{
		items:    make(map[string]cacheEntry),
		ttl:      ttl,
		cleanup:  cleanup,
		stopChan: make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

// Set lưu giá trị vào cache với thời gian sống mặc định
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheEntry{value: value, expiresAt: time.Now().Add(c.ttl)}
}

// Get lấy giá trị từ cache, trả về false nếu không có hoặc đã hết hạn
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, exists := c.items[key]
	if !exists || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.value, true
}

// Stop dừng goroutine dọn dẹp
func (c *Cache) Stop() {
	close(c.stopChan)
}

// cleanupLoop xóa entry hết hạn theo chu kỳ cleanup
func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for k, entry := range c.items {
				if now.After(entry.expiresAt) {
					delete(c.items, k)
				}
			}
			c.mu.Unlock()
		case <-c.stopChan:
			return
		}
	}
}
