package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook ghi log bất đồng bộ qua một goroutine riêng để file I/O
// không block request handling. Entry được buffer trong channel; khi
// buffer đầy, entry mới bị bỏ qua thay vì block.
type AsyncHook struct {
	writers []io.Writer
	entries chan *logrus.Entry
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// NewAsyncHookWithWriters tạo async hook ghi ra nhiều writers (file, stdout).
// bufferSize <= 0 dùng mặc định 1000 entries.
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
	}

	hook.wg.Add(1)
	go hook.drain()

	return hook
}

// Levels trả về các log levels mà hook này xử lý
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đưa entry vào channel, không bao giờ block.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// Hook đã đóng: ghi đồng bộ trực tiếp, không còn goroutine xử lý
		data, err := formatEntry(entry)
		if err != nil {
			return err
		}
		for _, w := range h.writers {
			_, _ = w.Write(data)
		}
		return nil
	}

	select {
	case h.entries <- entry:
	default:
		// Buffer đầy: bỏ entry này. Không log warning ở đây vì sẽ tạo vòng lặp.
	}
	return nil
}

// drain xử lý entries tuần tự. Có recover để panic trong format/write
// không kéo sập server.
func (h *AsyncHook) drain() {
	defer h.wg.Done()

	for entry := range h.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					// Không dùng logger ở đây (vòng lặp); ghi thẳng stderr
					fmt.Fprintf(os.Stderr, "[LOGGER PANIC] Logger goroutine panic recovered: %v\n", r)
					debug.PrintStack()
				}
			}()

			// FilterHook đánh dấu entry bị loại bằng field "_filtered"
			if filtered, ok := entry.Data["_filtered"].(bool); ok && filtered {
				return
			}
			if _, ok := entry.Data["_filtered"]; ok {
				// Bỏ field đánh dấu khỏi bản ghi ra log
				entry = entry.Dup()
				delete(entry.Data, "_filtered")
			}

			data, err := formatEntry(entry)
			if err != nil {
				return
			}
			for _, w := range h.writers {
				if _, err := w.Write(data); err != nil {
					continue // writer lỗi không chặn writer còn lại
				}
			}
		}()
	}
}

// formatEntry render entry bằng formatter của logger gốc, fallback String().
func formatEntry(entry *logrus.Entry) ([]byte, error) {
	if entry.Logger != nil && entry.Logger.Formatter != nil {
		return entry.Logger.Formatter.Format(entry)
	}
	line, err := entry.String()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// Close đóng hook và đợi toàn bộ buffer được ghi xong.
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
