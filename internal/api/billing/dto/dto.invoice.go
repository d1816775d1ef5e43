// Package dto - input cho các API hóa đơn.
package dto

import (
	models "sales_ledger/internal/api/billing/models"
)

// InvoiceCreateInput dữ liệu đầu vào khi tạo hóa đơn mới.
// InvoiceNumber để trống sẽ được cấp tự động từ counters; total của từng dòng do server tính.
type InvoiceCreateInput struct {
	InvoiceNumber   string                   `json:"invoiceNumber,omitempty" validate:"omitempty,no_xss" maxLength:"20"`
	CustomerId      string                   `json:"customerId,omitempty" validate:"omitempty,no_xss" maxLength:"50"`
	CustomerName    string                   `json:"customerName,omitempty" validate:"omitempty,no_xss" maxLength:"200"`
	CustomerPhone   string                   `json:"customerPhone" validate:"required,no_xss" maxLength:"20"`
	CustomerEmail   string                   `json:"customerEmail,omitempty" validate:"omitempty,email" maxLength:"200"`
	CustomerAddress string                   `json:"customerAddress,omitempty" validate:"omitempty,no_xss" maxLength:"500"`
	LineItems       []models.InvoiceLineItem `json:"lineItems" validate:"required,min=1,dive"`
	Status          string                   `json:"status,omitempty" validate:"omitempty,oneof=paid pending overdue cancelled"`
	OrderDate       string                   `json:"orderDate" validate:"required,datetime=2006-01-02"`
	Notes           string                   `json:"notes,omitempty" validate:"omitempty,no_xss" maxLength:"1000"`
}

// InvoiceChangeInput dữ liệu đầu vào khi cập nhật hóa đơn (partial update).
type InvoiceChangeInput struct {
	CustomerId      string                   `json:"customerId,omitempty" validate:"omitempty,no_xss" maxLength:"50"`
	CustomerName    string                   `json:"customerName,omitempty" validate:"omitempty,no_xss" maxLength:"200"`
	CustomerPhone   string                   `json:"customerPhone,omitempty" validate:"omitempty,no_xss" maxLength:"20"`
	CustomerEmail   string                   `json:"customerEmail,omitempty" validate:"omitempty,email" maxLength:"200"`
	CustomerAddress string                   `json:"customerAddress,omitempty" validate:"omitempty,no_xss" maxLength:"500"`
	LineItems       []models.InvoiceLineItem `json:"lineItems,omitempty" validate:"omitempty,min=1,dive"`
	Status          string                   `json:"status,omitempty" validate:"omitempty,oneof=paid pending overdue cancelled"`
	OrderDate       string                   `json:"orderDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes           string                   `json:"notes,omitempty" validate:"omitempty,no_xss" maxLength:"1000"`
}
