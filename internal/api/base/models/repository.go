// Package models chứa các kiểu dùng chung cho layer repository/base.
package models

// PaginateResult là một trang kết quả truy vấn kèm thông tin phân trang.
// ItemCount là số mục trong trang hiện tại, Total là tổng số mục match filter.
type PaginateResult[T any] struct {
	Page      int64 `json:"page" bson:"page"`
	Limit     int64 `json:"limit" bson:"limit"`
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	Items     []T   `json:"items" bson:"items"`
	Total     int64 `json:"total" bson:"total"`
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}
