// Package service - nghiệp vụ billing: cấp số hóa đơn, CRUD hóa đơn, feed billing.
package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "sales_ledger/internal/api/billing/models"
	"sales_ledger/internal/common"
	"sales_ledger/internal/global"
)

// CounterService cấp phát số tuần tự từ collection counters.
// Dùng thẳng mongo.Collection vì update cần $inc (UpdateData của base service không hỗ trợ).
type CounterService struct {
	collection *mongo.Collection
}

// NewCounterService tạo mới CounterService
func NewCounterService() (*CounterService, error) {
	counterCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Counters)
	if !exist {
		return nil, fmt.Errorf("failed to get counters collection: %v", common.ErrNotFound)
	}
	return &CounterService{collection: counterCollection}, nil
}

// NextSequence tăng bộ đếm name lên 1 (tạo mới nếu chưa có) và trả về giá trị sau khi tăng.
// FindOneAndUpdate với $inc là thao tác nguyên tử nên nhiều request song song không cấp trùng số.
func (s *CounterService) NextSequence(ctx context.Context, name string) (int64, error) {
	filter := bson.M{"_id": name}
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter models.Counter
	if err := s.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return counter.Seq, nil
}

// formatInvoiceNumber định dạng số thứ tự thành số hóa đơn INV-000001.
func formatInvoiceNumber(seq int64) string {
	return fmt.Sprintf("INV-%06d", seq)
}

// NextInvoiceNumber cấp số hóa đơn tiếp theo, định dạng INV-000001.
func (s *CounterService) NextInvoiceNumber(ctx context.Context) (string, error) {
	seq, err := s.NextSequence(ctx, models.CounterInvoiceNumber)
	if err != nil {
		return "", err
	}
	return formatInvoiceNumber(seq), nil
}
