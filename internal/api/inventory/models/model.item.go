// Package models - model vật phẩm kho (Item) thuộc domain inventory.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item định nghĩa một vật phẩm trong kho của user.
// Mỗi item thuộc về đúng một user (ownerUserId); admin thấy tất cả.
type Item struct {
	ID          primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string              `json:"name" bson:"name" index:"text"`
	Sku         string              `json:"sku,omitempty" bson:"sku,omitempty" index:"single:1"`
	Category    string              `json:"category,omitempty" bson:"category,omitempty" index:"single:1"`
	Quantity    int64               `json:"quantity" bson:"quantity"`
	UnitPrice   float64             `json:"unitPrice" bson:"unitPrice"`
	OwnerUserID *primitive.ObjectID `json:"ownerUserId,omitempty" bson:"ownerUserId,omitempty" index:"single:1"`
	CreatedAt   int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64               `json:"updatedAt" bson:"updatedAt"`
}

// ItemPaginateResult đại diện cho kết quả phân trang Item
type ItemPaginateResult struct {
	Page      int64  `json:"page" bson:"page"`
	Limit     int64  `json:"limit" bson:"limit"`
	ItemCount int64  `json:"itemCount" bson:"itemCount"`
	Items     []Item `json:"items" bson:"items"`
}
