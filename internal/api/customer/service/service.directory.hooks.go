// Package service - Event handler cho danh bạ khách hàng (OnDataChanged).
// Hóa đơn thay đổi thì cache danh bạ của scope tương ứng bị invalidate,
// request tiếp theo sẽ build lại từ store thay vì chờ chu kỳ refresh.
package service

import (
	"context"

	"sales_ledger/internal/api/events"
	"sales_ledger/internal/global"
)

func init() {
	events.OnDataChanged(handleDirectoryDataChange)
}

// handleDirectoryDataChange invalidate cache danh bạ khi collection invoices thay đổi.
func handleDirectoryDataChange(ctx context.Context, e events.DataChangeEvent) {
	if e.CollectionName != global.MongoDB_ColNames.Invoices {
		return
	}

	// Singleton chưa init (server đang khởi động) thì chưa có cache để invalidate
	if directoryServiceInstance == nil {
		return
	}

	ownerUserID := events.GetOwnerUserIDFromDocument(e.Document)
	if ownerUserID.IsZero() {
		// Không xác định được scope (vd: delete chỉ có id): xóa toàn bộ cache cho chắc
		directoryServiceInstance.InvalidateAll()
		return
	}
	directoryServiceInstance.Invalidate(&ownerUserID)
}
