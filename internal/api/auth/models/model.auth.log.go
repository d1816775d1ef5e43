// Package models - AuthLog thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthActionRegister, AuthActionLogin, ... là các action được ghi vào AuthLog.
const (
	AuthActionRegister      = "register"
	AuthActionLogin         = "login"
	AuthActionLoginFirebase = "login_firebase"
	AuthActionLogout        = "logout"
	AuthActionBlock         = "block"
	AuthActionUnblock       = "unblock"
	AuthActionSetRole       = "set_role"
)

// AuthLog lưu log các hành động trong nhóm chức năng AUTH (đăng nhập, đăng xuất, khóa tài khoản).
type AuthLog struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId,omitempty" bson:"userId,omitempty" index:"single:1"`
	Action    string             `json:"action,omitempty" bson:"action,omitempty"`
	Describe  string             `json:"describe,omitempty" bson:"describe,omitempty"`
	Hwid      string             `json:"hwid,omitempty" bson:"hwid,omitempty"`
	IP        string             `json:"ip,omitempty" bson:"ip,omitempty"`
	CreatedAt int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
