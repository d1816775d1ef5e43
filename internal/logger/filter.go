package logger

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// FilterHook lọc log entries theo các tiêu chí trong LogConfig:
// - Level (trace, debug, info, warn, error, fatal)
// - Module (auth, billing, customer, ...)
// - Collection (users, invoices, ...)
// Entry bị loại được đánh dấu bằng field "_filtered" = true,
// AsyncHook kiểm tra field này và bỏ qua entry khi ghi.
type FilterHook struct {
	// map[string]bool để lookup nhanh; chứa "*" nghĩa là cho phép tất cả
	allowedLevels      map[string]bool
	allowedModules     map[string]bool
	allowedCollections map[string]bool

	hasLevelFilter      bool
	hasModuleFilter     bool
	hasCollectionFilter bool

	mu sync.RWMutex
}

// NewFilterHook tạo một filter hook mới từ cấu hình
func NewFilterHook(cfg *LogConfig) *FilterHook {
	hook := &FilterHook{}
	hook.UpdateFilters(cfg)
	return hook
}

// UpdateFilters cập nhật filters từ config mới (có thể gọi runtime)
func (h *FilterHook) UpdateFilters(cfg *LogConfig) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.allowedLevels = parseFilter(cfg.FilterLevels)
	h.hasLevelFilter = len(h.allowedLevels) > 0 && !h.allowedLevels["*"]

	h.allowedModules = parseFilter(cfg.FilterModules)
	h.hasModuleFilter = len(h.allowedModules) > 0 && !h.allowedModules["*"]

	h.allowedCollections = parseFilter(cfg.FilterCollections)
	h.hasCollectionFilter = len(h.allowedCollections) > 0 && !h.allowedCollections["*"]
}

// parseFilter parse filter string dạng "value1,value2" thành map.
// Rỗng hoặc "*" nghĩa là cho phép tất cả.
func parseFilter(filterStr string) map[string]bool {
	result := make(map[string]bool)

	if filterStr == "" || filterStr == "*" {
		result["*"] = true
		return result
	}

	for _, v := range strings.Split(filterStr, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			// Lowercase để so sánh không phân biệt hoa thường
			result[strings.ToLower(v)] = true
		}
	}

	return result
}

// Levels trả về các log levels mà hook này xử lý
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire được gọi mỗi khi có log entry mới
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.hasLevelFilter {
		if !h.allowedLevels[strings.ToLower(entry.Level.String())] {
			entry.Data["_filtered"] = true
			return nil
		}
	}

	// Entry không có field tương ứng thì không bị filter theo tiêu chí đó
	if h.hasModuleFilter {
		if module, ok := entry.Data["module"].(string); ok && module != "" {
			if !h.allowedModules[strings.ToLower(module)] {
				entry.Data["_filtered"] = true
				return nil
			}
		}
	}

	if h.hasCollectionFilter {
		if collection, ok := entry.Data["collection"].(string); ok && collection != "" {
			if !h.allowedCollections[strings.ToLower(collection)] {
				entry.Data["_filtered"] = true
				return nil
			}
		}
	}

	return nil
}
