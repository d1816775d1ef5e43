// Package service - test phần nghiệp vụ thuần của billing (không cần MongoDB).
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "sales_ledger/internal/api/billing/models"
)

func TestNormalizeInvoice_TinhLaiTotalTungDong(t *testing.T) {
	invoice := models.Invoice{
		LineItems: []models.InvoiceLineItem{
			{Description: "Hàng A", Quantity: 2, UnitPrice: 30, Total: 999}, // total sai từ client
			{Description: "Hàng B", Quantity: 1, UnitPrice: 50},
		},
		Status: models.InvoiceStatusPaid,
	}

	normalizeInvoice(&invoice)

	assert.Equal(t, 60.0, invoice.LineItems[0].Total, "Total client gửi lên phải bị ghi đè")
	assert.Equal(t, 50.0, invoice.LineItems[1].Total)
	assert.Equal(t, 110.0, invoice.Total())
	assert.Equal(t, models.InvoiceStatusPaid, invoice.Status)
}

func TestNormalizeInvoice_StatusMacDinhPending(t *testing.T) {
	invoice := models.Invoice{
		LineItems: []models.InvoiceLineItem{{Description: "Hàng", Quantity: 1, UnitPrice: 10}},
	}

	normalizeInvoice(&invoice)

	assert.Equal(t, models.InvoiceStatusPending, invoice.Status)
}

func TestRecomputeLineItemTotals_PrimitiveA(t *testing.T) {
	// Hình dạng dữ liệu sau khi update payload bị flatten sang BSON:
	// primitive.A của primitive.M, số là int32/int64/float64
	raw := primitive.A{
		primitive.M{"description": "Hàng A", "quantity": int32(3), "unitPrice": float64(40), "total": float64(0)},
		primitive.M{"description": "Hàng B", "quantity": int64(2), "unitPrice": int32(25)},
	}

	result := recomputeLineItemTotals(raw)

	items, ok := result.(primitive.A)
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, 120.0, items[0].(primitive.M)["total"])
	assert.Equal(t, 50.0, items[1].(primitive.M)["total"])
}

func TestRecomputeLineItemTotals_SliceInterface(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{"description": "Hàng", "quantity": 4.0, "unitPrice": 2.5},
	}

	result := recomputeLineItemTotals(raw)

	items, ok := result.(primitive.A)
	require.True(t, ok)
	assert.Equal(t, 10.0, items[0].(map[string]interface{})["total"])
}

func TestRecomputeLineItemTotals_KieuLaGiuNguyen(t *testing.T) {
	assert.Equal(t, "khong phai mang", recomputeLineItemTotals("khong phai mang"))
	assert.Nil(t, recomputeLineItemTotals(nil))
}

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-000001", formatInvoiceNumber(1))
	assert.Equal(t, "INV-000042", formatInvoiceNumber(42))
	assert.Equal(t, "INV-1000000", formatInvoiceNumber(1000000), "Vượt 6 chữ số thì không cắt")
}

func TestNewBillingRecord_ChieuTuInvoice(t *testing.T) {
	id := primitive.NewObjectID()
	invoice := models.Invoice{
		ID:            id,
		InvoiceNumber: "INV-000007",
		CustomerId:    "C1",
		CustomerPhone: "555",
		LineItems: []models.InvoiceLineItem{
			{Description: "Hàng", Quantity: 2, UnitPrice: 75, Total: 150},
		},
		Status:    models.InvoiceStatusPaid,
		OrderDate: "2024-01-15",
	}

	record := models.NewBillingRecord(invoice)

	assert.Equal(t, id.Hex(), record.Id)
	assert.Equal(t, "555", record.CustomerPhone)
	assert.Equal(t, "2024-01-15", record.OrderDate)
	assert.Equal(t, 150.0, record.Total)
	assert.Len(t, record.Items, 1)
}
