package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
// Nó chứa thông tin cơ sở dữ liệu
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"`               // Chế độ khởi tạo
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Bí mật JWT
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Tên cơ sở dữ liệu chính
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting
	// Billing Feed Configuration (nguồn dữ liệu hóa đơn cho danh bạ khách hàng)
	BillingFeedURL      string `env:"BILLING_FEED_URL" envDefault:"http://localhost:8080/api/v1/billing"` // URL nguồn dữ liệu hóa đơn
	BillingFeedToken    string `env:"BILLING_FEED_TOKEN"`                                                 // Bearer token để gọi nguồn dữ liệu hóa đơn
	BillingFeedExternal bool   `env:"BILLING_FEED_EXTERNAL" envDefault:"false"`                           // true = danh bạ build từ feed HTTP ngoài thay vì collection invoices
	DirectoryRefreshSec int    `env:"DIRECTORY_REFRESH_SEC" envDefault:"300"`                             // Chu kỳ refresh danh bạ khách hàng (giây)
	// Firebase Configuration
	FirebaseProjectID       string `env:"FIREBASE_PROJECT_ID"`       // Firebase Project ID
	FirebaseCredentialsPath string `env:"FIREBASE_CREDENTIALS_PATH"` // Đường dẫn đến service account JSON
	FirebaseAPIKey          string `env:"FIREBASE_API_KEY"`          // Firebase Web API Key (cho frontend)
	FirebaseAdminUID        string `env:"FIREBASE_ADMIN_UID"`        // Firebase UID của user admin (tự động tạo admin user trong init)
	// Frontend URL
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"` // URL frontend
	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)
}

// envFilePath tìm file env theo GO_ENV (mặc định development):
// đi ngược từ thư mục hiện tại lên tới thư mục chứa config/env
// rồi lấy config/env/<GO_ENV>.env. Trả về chuỗi rỗng nếu không tìm thấy.
func envFilePath() string {
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" {
		goEnv = "development"
	}

	dir, err := os.Getwd()
	if err != nil {
		// fmt vì chạy trước khi logger được init
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	for {
		envDir := filepath.Join(dir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, goEnv+".env")
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// NewConfig load file env của môi trường hiện tại và parse vào Configuration.
// Trả về nil khi không tìm thấy file env hoặc thiếu biến bắt buộc.
func NewConfig(files ...string) *Configuration {
	envPath := envFilePath()
	if envPath == "" {
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}
	return &cfg
}
