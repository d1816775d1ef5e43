// Package models - model thông báo (Notification) thuộc domain notification.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification một thông báo của user.
// Key là mã định danh nghiệp vụ (vd: "invoice.overdue.INV-000042") để upsert không tạo trùng.
type Notification struct {
	ID          primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Key         string              `json:"key" bson:"key" index:"single:1"`
	Title       string              `json:"title" bson:"title"`
	Body        string              `json:"body,omitempty" bson:"body,omitempty"`
	IsRead      bool                `json:"isRead" bson:"isRead"`
	OwnerUserID *primitive.ObjectID `json:"ownerUserId,omitempty" bson:"ownerUserId,omitempty" index:"single:1"`
	CreatedAt   int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64               `json:"updatedAt" bson:"updatedAt"`
}

// NotificationPaginateResult đại diện cho kết quả phân trang Notification
type NotificationPaginateResult struct {
	Page      int64          `json:"page" bson:"page"`
	Limit     int64          `json:"limit" bson:"limit"`
	ItemCount int64          `json:"itemCount" bson:"itemCount"`
	Items     []Notification `json:"items" bson:"items"`
}
