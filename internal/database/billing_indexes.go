// Package database - Index bổ sung cho billing (nested fields) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"sales_ledger/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateBillingAdditionalIndexes tạo các index bổ sung cho billing (nested fields).
// Gọi sau CreateIndexes cho collection invoices.
func CreateBillingAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	invoices := db.Collection(global.MongoDB_ColNames.Invoices)

	// invoices: (ownerUserId, customerPhone) — gom hóa đơn theo khách khi build danh bạ
	if _, err := invoices.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ownerUserId", Value: 1},
			{Key: "customerPhone", Value: 1},
		},
		Options: options.Index().SetName("invoice_owner_phone"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// invoices: lineItems.description — tra cứu hóa đơn theo mặt hàng
	if _, err := invoices.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "lineItems.description", Value: 1},
		},
		Options: options.Index().SetName("invoice_line_description").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

// isIndexExistsError kiểm tra lỗi tạo index do index đã tồn tại (cùng tên hoặc cùng keys).
func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "IndexOptionsConflict") ||
		strings.Contains(msg, "IndexKeySpecsConflict") ||
		strings.Contains(msg, "already exists")
}
