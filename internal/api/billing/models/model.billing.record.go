// Package models - BillingRecord: bản ghi billing công khai qua feed GET /billing.
package models

// BillingRecord là hình chiếu của một Invoice dành cho feed billing.
// Đây là wire contract mà customer engine tiêu thụ; total đã được tính sẵn.
type BillingRecord struct {
	Id              string            `json:"id"`
	CustomerId      string            `json:"customerId,omitempty"`
	CustomerName    string            `json:"customerName,omitempty"`
	CustomerPhone   string            `json:"customerPhone,omitempty"`
	CustomerEmail   string            `json:"customerEmail,omitempty"`
	CustomerAddress string            `json:"customerAddress,omitempty"`
	Items           []InvoiceLineItem `json:"items"`
	Status          string            `json:"status"`
	OrderDate       string            `json:"orderDate"`
	Total           float64           `json:"total"`
}

// NewBillingRecord chiếu một Invoice sang BillingRecord.
func NewBillingRecord(inv Invoice) BillingRecord {
	return BillingRecord{
		Id:              inv.ID.Hex(),
		CustomerId:      inv.CustomerId,
		CustomerName:    inv.CustomerName,
		CustomerPhone:   inv.CustomerPhone,
		CustomerEmail:   inv.CustomerEmail,
		CustomerAddress: inv.CustomerAddress,
		Items:           inv.LineItems,
		Status:          inv.Status,
		OrderDate:       inv.OrderDate,
		Total:           inv.Total(),
	}
}
