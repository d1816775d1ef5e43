// Package dto - input cho các API vật phẩm kho.
package dto

// ItemCreateInput dữ liệu đầu vào khi tạo vật phẩm mới
type ItemCreateInput struct {
	Name      string  `json:"name" validate:"required,no_xss" maxLength:"200"`
	Sku       string  `json:"sku,omitempty" validate:"omitempty,no_xss" maxLength:"50"`
	Category  string  `json:"category,omitempty" validate:"omitempty,no_xss" maxLength:"100"`
	Quantity  int64   `json:"quantity" validate:"min=0"`
	UnitPrice float64 `json:"unitPrice" validate:"min=0"`
}

// ItemChangeInput dữ liệu đầu vào khi cập nhật vật phẩm
type ItemChangeInput struct {
	Name      string   `json:"name,omitempty" validate:"omitempty,no_xss" maxLength:"200"`
	Sku       string   `json:"sku,omitempty" validate:"omitempty,no_xss" maxLength:"50"`
	Category  string   `json:"category,omitempty" validate:"omitempty,no_xss" maxLength:"100"`
	Quantity  *int64   `json:"quantity,omitempty" validate:"omitempty,min=0"`
	UnitPrice *float64 `json:"unitPrice,omitempty" validate:"omitempty,min=0"`
}
