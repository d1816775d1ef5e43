package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Test set rồi get trả về đúng giá trị khi chưa hết hạn
func TestCache_SetVaGet(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	defer c.Stop()

	c.Set("user:abc", "nguyenvana")

	value, found := c.Get("user:abc")
	assert.True(t, found)
	assert.Equal(t, "nguyenvana", value)
}

// Test get key không tồn tại trả về false
func TestCache_KeyKhongTonTai(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	defer c.Stop()

	_, found := c.Get("khong-co")
	assert.False(t, found)
}

// Test entry hết hạn không được trả về dù chưa tới chu kỳ dọn dẹp
func TestCache_EntryHetHan(t *testing.T) {
	c := NewCache(10*time.Millisecond, time.Hour)
	defer c.Stop()

	c.Set("token", "xyz")
	time.Sleep(30 * time.Millisecond)

	_, found := c.Get("token")
	assert.False(t, found)
}
