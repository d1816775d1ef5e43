// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleAdmin, RoleUser là các role của hệ thống.
// Admin thấy và thao tác trên toàn bộ dữ liệu, user thường chỉ trên dữ liệu của mình.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User định nghĩa mô hình người dùng
// Token chứa token xác thực mới nhất của người dùng
// Tokens chứa danh sách các token, mỗi thiết bị khác nhau sẽ có một token riêng để xác thực (bằng hwid)
type User struct {
	_Relationships struct{}           `relationship:"collection:items,field:ownerUserId,message:Không thể xóa user vì có %d vật phẩm trong kho thuộc về user này. Vui lòng xóa hoặc chuyển các vật phẩm trước.|collection:invoices,field:ownerUserId,message:Không thể xóa user vì có %d hóa đơn thuộc về user này. Vui lòng xóa các hóa đơn trước.|collection:notifications,field:ownerUserId,message:Không thể xóa user vì có %d thông báo thuộc về user này."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Email          string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Password       string             `json:"-" bson:"password,omitempty"`
	Salt           string             `json:"-" bson:"salt,omitempty"`
	Phone          string             `json:"phone,omitempty" bson:"phone,omitempty" index:"unique,sparse"`
	FirebaseUID    string             `json:"firebaseUid,omitempty" bson:"firebaseUid,omitempty" index:"unique,sparse"`
	Role           string             `json:"role" bson:"role"` // admin | user
	EmailVerified  bool               `json:"emailVerified" bson:"emailVerified"`
	PhoneVerified  bool               `json:"phoneVerified" bson:"phoneVerified"`
	AvatarURL      string             `json:"avatarUrl" bson:"avatarUrl"`
	Token          string             `json:"token" bson:"token"`
	Tokens         []Token            `json:"-" bson:"tokens"`
	IsBlock        bool               `json:"-" bson:"isBlock"`
	BlockNote      string             `json:"-" bson:"blockNote"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
