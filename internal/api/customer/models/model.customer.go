// Package models - các model của customer engine: hồ sơ khách hàng tổng hợp từ feed billing.
package models

// BillingLineItem một dòng hàng trong bản ghi billing nhận từ feed.
type BillingLineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// BillingRecord bản ghi billing theo wire contract của feed GET /billing.
// CustomerPhone là khóa gom nhóm nên bắt buộc phải có; record thiếu phone bị loại khi ingest.
type BillingRecord struct {
	Id              string            `json:"id"`
	CustomerId      string            `json:"customerId"`
	CustomerName    string            `json:"customerName"`
	CustomerPhone   string            `json:"customerPhone"`
	CustomerEmail   string            `json:"customerEmail"`
	CustomerAddress string            `json:"customerAddress"`
	Items           []BillingLineItem `json:"items"`
	Status          string            `json:"status"`
	OrderDate       string            `json:"orderDate"` // YYYY-MM-DD
	Total           float64           `json:"total"`
}

// OrderTotal tổng tiền của bản ghi = Σ (quantity × unitPrice) từng dòng.
// Luôn tính lại từ dòng hàng, không tin total trên wire.
func (r BillingRecord) OrderTotal() float64 {
	var sum float64
	for _, item := range r.Items {
		sum += item.Quantity * item.UnitPrice
	}
	return sum
}

// CustomerOrder một đơn hàng trong hồ sơ khách (chiếu từ một BillingRecord).
type CustomerOrder struct {
	InvoiceId string  `json:"invoiceId"`
	Date      string  `json:"date"` // YYYY-MM-DD
	Status    string  `json:"status"`
	Total     float64 `json:"total"`
}

// CustomerProfile hồ sơ khách hàng đã gom nhóm theo số điện thoại.
// Id = customerPhone (khóa gom nhóm, không phải surrogate key) nên luôn unique trong danh bạ.
// Các trường định danh còn lại (customerId, name, email, address) lấy từ bản ghi
// xuất hiện ĐẦU TIÊN của số đó; customerId chỉ để hiển thị, có thể rỗng hoặc trùng nhau.
type CustomerProfile struct {
	Id            string          `json:"id"`
	CustomerId    string          `json:"customerId"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	Orders        []CustomerOrder `json:"orders"`
	OrdersCount   int             `json:"ordersCount"`
	TotalSpent    float64         `json:"totalSpent"`
	LastOrderDate string          `json:"lastOrderDate"` // YYYY-MM-DD, max trong Orders
}

// LatestOrderStatus trạng thái của đơn gần nhất (theo ngày), "" khi chưa có đơn.
func (p CustomerProfile) LatestOrderStatus() string {
	latest := ""
	status := ""
	for _, order := range p.Orders {
		if order.Date >= latest {
			latest = order.Date
			status = order.Status
		}
	}
	return status
}

// AvgOrderValue giá trị đơn trung bình của khách, 0 khi chưa có đơn.
func (p CustomerProfile) AvgOrderValue() float64 {
	if p.OrdersCount == 0 {
		return 0
	}
	return p.TotalSpent / float64(p.OrdersCount)
}

// DirectoryStats số liệu tổng hợp của toàn danh bạ.
type DirectoryStats struct {
	TotalCustomers int     `json:"totalCustomers"`
	TotalOrders    int     `json:"totalOrders"`
	TotalRevenue   float64 `json:"totalRevenue"`
	AvgOrderValue  float64 `json:"avgOrderValue"`
}
