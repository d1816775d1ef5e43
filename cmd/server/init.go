package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"sales_ledger/config"
	authmodels "sales_ledger/internal/api/auth/models"
	billmodels "sales_ledger/internal/api/billing/models"
	invmodels "sales_ledger/internal/api/inventory/models"
	notimodels "sales_ledger/internal/api/notification/models"
	"sales_ledger/internal/database"
	"sales_ledger/internal/global"
	"sales_ledger/internal/utility"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initFirebase()         // Khởi tạo Firebase
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "auth_users"
	global.MongoDB_ColNames.AuthLogs = "auth_logs"
	global.MongoDB_ColNames.Items = "items"
	global.MongoDB_ColNames.Invoices = "invoices"
	global.MongoDB_ColNames.Counters = "counters"
	global.MongoDB_ColNames.Notifications = "notifications"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, strong_password, exists, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.AuthLogs), authmodels.AuthLog{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Items), invmodels.Item{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Invoices), billmodels.Invoice{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Notifications), notimodels.Notification{})
	// Counters chỉ truy cập theo _id nên không cần index thêm

	// Index bổ sung của billing (nested fields) không khai báo được qua model tags
	if err := database.CreateBillingAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Warnf("Failed to create billing additional indexes: %v", err)
	}
}

// initFirebase khởi tạo Firebase Admin SDK (tùy chọn: thiếu config thì bỏ qua, login Firebase bị tắt)
func initFirebase() {
	cfg := global.MongoDB_ServerConfig

	if cfg.FirebaseProjectID == "" || cfg.FirebaseCredentialsPath == "" {
		logrus.Warn("Firebase config không đầy đủ, bỏ qua khởi tạo Firebase")
		return
	}

	err := utility.InitFirebase(cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath)
	if err != nil {
		logrus.Errorf("Failed to initialize Firebase: %v", err)
		// Không fatal, chỉ log warning để hệ thống vẫn chạy được
		return
	}

	logrus.Info("Firebase initialized successfully")
}
