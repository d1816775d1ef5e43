package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "sales_ledger/internal/api/base/service"
	models "sales_ledger/internal/api/billing/models"
	"sales_ledger/internal/common"
	"sales_ledger/internal/global"
)

// InvoiceService cung cấp CRUD cho collection invoices.
// InsertOne và UpdateById được override để tính total từng dòng hàng ở server
// và cấp số hóa đơn tự động khi invoiceNumber để trống.
type InvoiceService struct {
	*basesvc.BaseServiceMongoImpl[models.Invoice]
	counterService *CounterService
}

// NewInvoiceService tạo mới InvoiceService
func NewInvoiceService() (*InvoiceService, error) {
	invoiceCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Invoices)
	if !exist {
		return nil, fmt.Errorf("failed to get invoices collection: %v", common.ErrNotFound)
	}
	counterService, err := NewCounterService()
	if err != nil {
		return nil, fmt.Errorf("failed to create counter service: %v", err)
	}
	return &InvoiceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Invoice](invoiceCollection),
		counterService:       counterService,
	}, nil
}

// normalizeInvoice chuẩn hóa hóa đơn trước khi ghi: tính lại total từng dòng,
// điền status mặc định pending.
func normalizeInvoice(invoice *models.Invoice) {
	for i := range invoice.LineItems {
		invoice.LineItems[i].Total = invoice.LineItems[i].Quantity * invoice.LineItems[i].UnitPrice
	}
	if invoice.Status == "" {
		invoice.Status = models.InvoiceStatusPending
	}
}

// InsertOne tạo hóa đơn mới: chuẩn hóa dòng hàng và cấp số hóa đơn nếu chưa có.
func (s *InvoiceService) InsertOne(ctx context.Context, data models.Invoice) (models.Invoice, error) {
	normalizeInvoice(&data)
	if data.InvoiceNumber == "" {
		invoiceNumber, err := s.counterService.NextInvoiceNumber(ctx)
		if err != nil {
			return data, err
		}
		data.InvoiceNumber = invoiceNumber
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// toFloat64 ép các kiểu số BSON (int32/int64/float64) về float64.
func toFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

// recomputeLineItemTotals tính lại total trong mảng lineItems đã được flatten sang BSON map
// (primitive.A của primitive.M — kết quả của utility.ToMap ở tầng handler).
func recomputeLineItemTotals(raw interface{}) interface{} {
	items, ok := raw.(primitive.A)
	if !ok {
		if slice, ok2 := raw.([]interface{}); ok2 {
			items = primitive.A(slice)
		} else {
			return raw
		}
	}
	for _, item := range items {
		var m map[string]interface{}
		switch entry := item.(type) {
		case primitive.M:
			m = entry
		case map[string]interface{}:
			m = entry
		default:
			continue
		}
		m["total"] = toFloat64(m["quantity"]) * toFloat64(m["unitPrice"])
	}
	return items
}

// UpdateById cập nhật hóa đơn theo id; nếu update có lineItems thì tính lại total từng dòng.
func (s *InvoiceService) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (models.Invoice, error) {
	if updateData, ok := data.(*basesvc.UpdateData); ok && updateData.Set != nil {
		if raw, exists := updateData.Set["lineItems"]; exists {
			updateData.Set["lineItems"] = recomputeLineItemTotals(raw)
		}
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, data)
}

// BillingRecords trả danh sách hóa đơn theo filter dưới dạng BillingRecord cho feed GET /billing.
// Sắp xếp orderDate giảm dần (chuỗi YYYY-MM-DD nên thứ tự chuỗi trùng thứ tự thời gian).
func (s *InvoiceService) BillingRecords(ctx context.Context, filter interface{}) ([]models.BillingRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}, {Key: "createdAt", Value: -1}})
	invoices, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	records := make([]models.BillingRecord, 0, len(invoices))
	for _, invoice := range invoices {
		records = append(records, models.NewBillingRecord(invoice))
	}
	return records, nil
}
