// Package dto - input cho các API thông báo.
package dto

// NotificationCreateInput dữ liệu đầu vào khi tạo/upsert thông báo
type NotificationCreateInput struct {
	Key   string `json:"key" validate:"required,no_xss" maxLength:"200"`
	Title string `json:"title" validate:"required,no_xss" maxLength:"200"`
	Body  string `json:"body,omitempty" validate:"omitempty,no_xss" maxLength:"2000"`
}

// NotificationChangeInput dữ liệu đầu vào khi cập nhật thông báo (đánh dấu đã đọc)
type NotificationChangeInput struct {
	Title  string `json:"title,omitempty" validate:"omitempty,no_xss" maxLength:"200"`
	Body   string `json:"body,omitempty" validate:"omitempty,no_xss" maxLength:"2000"`
	IsRead *bool  `json:"isRead,omitempty"`
}
