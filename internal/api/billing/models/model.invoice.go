// Package models - model hóa đơn (Invoice) thuộc domain billing.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái hợp lệ của hóa đơn.
const (
	InvoiceStatusPaid      = "paid"
	InvoiceStatusPending   = "pending"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

// InvoiceLineItem một dòng hàng trong hóa đơn.
// Total = Quantity × UnitPrice, luôn được tính lại ở server khi insert/update.
type InvoiceLineItem struct {
	Description string  `json:"description" bson:"description" validate:"required,no_xss"`
	Quantity    float64 `json:"quantity" bson:"quantity" validate:"min=0"`
	UnitPrice   float64 `json:"unitPrice" bson:"unitPrice" validate:"min=0"`
	Total       float64 `json:"total" bson:"total"`
}

// Invoice định nghĩa một hóa đơn bán hàng.
// InvoiceNumber được cấp phát tuần tự từ collection counters (INV-000001, INV-000002, ...).
// OrderDate lưu dạng chuỗi "YYYY-MM-DD" để sort theo thứ tự chuỗi trùng với thứ tự thời gian.
type Invoice struct {
	ID              primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	InvoiceNumber   string              `json:"invoiceNumber" bson:"invoiceNumber" index:"unique,sparse"`
	CustomerId      string              `json:"customerId,omitempty" bson:"customerId,omitempty" index:"single:1"`
	CustomerName    string              `json:"customerName,omitempty" bson:"customerName,omitempty"`
	CustomerPhone   string              `json:"customerPhone,omitempty" bson:"customerPhone,omitempty" index:"single:1"`
	CustomerEmail   string              `json:"customerEmail,omitempty" bson:"customerEmail,omitempty"`
	CustomerAddress string              `json:"customerAddress,omitempty" bson:"customerAddress,omitempty"`
	LineItems       []InvoiceLineItem   `json:"lineItems" bson:"lineItems"`
	Status          string              `json:"status" bson:"status" index:"single:1"` // paid | pending | overdue | cancelled
	OrderDate       string              `json:"orderDate" bson:"orderDate" index:"single:-1"`
	Notes           string              `json:"notes,omitempty" bson:"notes,omitempty"`
	OwnerUserID     *primitive.ObjectID `json:"ownerUserId,omitempty" bson:"ownerUserId,omitempty" index:"single:1"`
	CreatedAt       int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64               `json:"updatedAt" bson:"updatedAt"`
}

// Total tổng tiền hóa đơn = tổng các dòng hàng.
func (inv *Invoice) Total() float64 {
	var sum float64
	for _, line := range inv.LineItems {
		sum += line.Total
	}
	return sum
}

// InvoicePaginateResult đại diện cho kết quả phân trang Invoice
type InvoicePaginateResult struct {
	Page      int64     `json:"page" bson:"page"`
	Limit     int64     `json:"limit" bson:"limit"`
	ItemCount int64     `json:"itemCount" bson:"itemCount"`
	Items     []Invoice `json:"items" bson:"items"`
}
