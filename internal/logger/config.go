package logger

import (
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
)

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	// Log Level: trace, debug, info, warn, error, fatal
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Log Format: json, text
	Format string `env:"LOG_FORMAT" envDefault:"text"`

	// Log Output: file, stdout, both
	Output string `env:"LOG_OUTPUT" envDefault:"both"`

	// Log Rotation
	MaxSize    int  `env:"LOG_MAX_SIZE" envDefault:"100"` // MB
	MaxBackups int  `env:"LOG_MAX_BACKUPS" envDefault:"7"`
	MaxAge     int  `env:"LOG_MAX_AGE" envDefault:"7"` // Số ngày giữ lại
	Compress   bool `env:"LOG_COMPRESS" envDefault:"true"`

	// Log Paths
	LogPath         string `env:"LOG_PATH" envDefault:"./logs"`
	AppFile         string `env:"LOG_APP_FILE" envDefault:"app.log"`
	AuditFile       string `env:"LOG_AUDIT_FILE" envDefault:"audit.log"`
	PerformanceFile string `env:"LOG_PERF_FILE" envDefault:"performance.log"`

	// Log Filters: danh sách comma-separated, rỗng hoặc "*" nghĩa là cho phép tất cả
	// Ví dụ: LOG_FILTER_MODULES="billing,customer" chỉ ghi log của 2 module đó
	FilterModules     string `env:"LOG_FILTER_MODULES" envDefault:""`
	FilterCollections string `env:"LOG_FILTER_COLLECTIONS" envDefault:""`
	FilterLevels      string `env:"LOG_FILTER_LEVELS" envDefault:""`
}

// DefaultConfig trả về cấu hình mặc định, đọc override từ environment variables
func DefaultConfig() *LogConfig {
	config := &LogConfig{}
	if err := env.Parse(config); err != nil {
		// env.Parse chỉ fail khi tag sai kiểu, fallback về defaults cứng
		config = &LogConfig{
			Level:           "info",
			Format:          "text",
			Output:          "both",
			MaxSize:         100,
			MaxBackups:      7,
			MaxAge:          7,
			Compress:        true,
			LogPath:         "./logs",
			AppFile:         "app.log",
			AuditFile:       "audit.log",
			PerformanceFile: "performance.log",
		}
	}

	// Điều chỉnh theo môi trường nếu LOG_LEVEL/LOG_FORMAT chưa được set tường minh
	envName := os.Getenv("GO_ENV")
	if envName == "" {
		envName = "development"
	}
	if os.Getenv("LOG_LEVEL") == "" {
		if envName == "development" {
			config.Level = "debug"
		} else {
			config.Level = "info"
		}
	}
	if os.Getenv("LOG_FORMAT") == "" && envName != "development" {
		config.Format = "json"
	}

	config.Level = strings.ToLower(config.Level)
	config.Format = strings.ToLower(config.Format)
	config.Output = strings.ToLower(config.Output)

	return config
}
