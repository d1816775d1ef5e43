// Package worker - DirectoryRefreshWorker rebuild cache danh bạ khách hàng theo chu kỳ.
package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	custsvc "sales_ledger/internal/api/customer/service"
	"sales_ledger/internal/logger"
)

// DirectoryRefreshWorker worker rebuild danh bạ khách hàng định kỳ.
//
// Mỗi chu kỳ, worker dựng lại danh bạ cho mọi scope (user hoặc toàn hệ thống) đang có
// trong cache của DirectoryService, để dữ liệu phục vụ request luôn mới mà không phải
// gom nhóm lại toàn bộ hóa đơn trong request path.
type DirectoryRefreshWorker struct {
	directoryService *custsvc.DirectoryService
	interval         time.Duration // Khoảng thời gian giữa các lần chạy (vd: 5 phút)
}

// NewDirectoryRefreshWorker tạo worker mới.
//
// Tham số:
//   - interval: Khoảng cách giữa các lần chạy (mặc định: 5 phút)
func NewDirectoryRefreshWorker(interval time.Duration) (*DirectoryRefreshWorker, error) {
	directoryService, err := custsvc.GetDirectoryService()
	if err != nil {
		return nil, err
	}
	if interval < time.Second {
		interval = 5 * time.Minute
	}
	return &DirectoryRefreshWorker{
		directoryService: directoryService,
		interval:         interval,
	}, nil
}

// Start chạy worker trong vòng lặp.
func (w *DirectoryRefreshWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("📇 [DIRECTORY_REFRESH] Starting Directory Refresh Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("📇 [DIRECTORY_REFRESH] Directory Refresh Worker stopped")
			return
		case <-ticker.C:
			w.run(ctx, log)
		}
	}
}

// run chạy một đợt refresh toàn bộ scope đang cache.
func (w *DirectoryRefreshWorker) run(ctx context.Context, log *logrus.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(map[string]interface{}{
				"panic": r,
			}).Error("📇 [DIRECTORY_REFRESH] Panic khi xử lý, sẽ tiếp tục lần chạy tiếp theo")
		}
	}()

	start := time.Now()
	refreshed, err := w.directoryService.RefreshAll(ctx)
	if err != nil {
		log.WithError(err).Error("📇 [DIRECTORY_REFRESH] Có scope refresh thất bại")
	}
	if refreshed > 0 {
		logger.GetPerformanceLogger().WithFields(logrus.Fields{
			"scopes":     refreshed,
			"durationMs": time.Since(start).Milliseconds(),
		}).Info("📇 [DIRECTORY_REFRESH] Đã rebuild cache danh bạ")
	}
}
