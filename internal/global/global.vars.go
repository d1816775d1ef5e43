// Package global chứa các biến toàn cục của server (config, session DB, registry collections...).
package global

import (
	"sales_ledger/config"
	"sales_ledger/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionNames chứa tên các collection trong MongoDB
type CollectionNames struct {
	Users         string // Tên collection cho người dùng
	Items         string // Tên collection cho hàng hóa trong kho
	Invoices      string // Tên collection cho hóa đơn
	Counters      string // Tên collection cho bộ đếm số hóa đơn
	Notifications string // Tên collection cho thông báo
	AuthLogs      string // Tên collection cho log xác thực
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames CollectionNames           // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
