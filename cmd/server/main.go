package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v3"

	"sales_ledger/internal/global"
	"sales_ledger/internal/logger"
	"sales_ledger/internal/worker"
)

func main() {
	initLogger()
	InitGlobal()
	InitRegistry()
	InitDefaultData()

	stopWorker := startDirectoryWorker()
	defer stopWorker()

	runServer()
}

// initLogger khởi tạo hệ thống log trước mọi thành phần khác.
// Cấu hình đọc từ environment variables.
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// startDirectoryWorker chạy background worker rebuild danh bạ khách hàng
// theo chu kỳ cấu hình. Trả về hàm dừng worker.
func startDirectoryWorker() func() {
	log := logger.GetAppLogger()

	interval := time.Duration(global.MongoDB_ServerConfig.DirectoryRefreshSec) * time.Second
	refreshWorker, err := worker.NewDirectoryRefreshWorker(interval)
	if err != nil {
		log.WithError(err).Error("Failed to create directory refresh worker, continuing without refresh worker")
		return func() {}
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(map[string]interface{}{
					"panic": r,
				}).Error("📇 [DIRECTORY_REFRESH] Worker goroutine panic")
			}
		}()

		refreshWorker.Start(ctx)
		log.Warn("📇 [DIRECTORY_REFRESH] Worker đã dừng (có thể do context cancelled)")
	}()

	log.Info("📇 [DIRECTORY_REFRESH] Directory Refresh Worker started successfully")
	return cancel
}

// runServer khởi tạo Fiber app và listen theo cấu hình, TLS nếu được bật
func runServer() {
	app := InitFiberApp()
	cfg := global.MongoDB_ServerConfig
	log := logger.GetAppLogger()

	log.Info("Starting Fiber server...")

	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		serveTLS(app, cfg.Address, cfg.TLSCertFile, cfg.TLSKeyFile)
		return
	}

	log.WithFields(map[string]interface{}{
		"address":  cfg.Address,
		"protocol": "HTTP",
	}).Info("Starting server with HTTP")

	if err := app.Listen(cfg.Address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// serveTLS listen với TLS, cert/key resolve tương đối từ thư mục gốc dự án
func serveTLS(app *fiber.App, address, certFile, keyFile string) {
	log := logger.GetAppLogger()

	certPath := resolveProjectPath(certFile)
	keyPath := resolveProjectPath(keyFile)

	if _, err := os.Stat(certPath); os.IsNotExist(err) {
		log.Fatalf("TLS certificate file not found: %s (resolved from: %s)", certPath, certFile)
	}
	if _, err := os.Stat(keyPath); os.IsNotExist(err) {
		log.Fatalf("TLS key file not found: %s (resolved from: %s)", keyPath, keyFile)
	}

	cert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		log.Fatalf("Error loading TLS certificate: %v", err)
	}

	ln, err := net.Listen("tcp", address)
	if err != nil {
		log.Fatalf("Error creating listener: %v", err)
	}

	tlsListener := tls.NewListener(ln, &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	})

	log.WithFields(map[string]interface{}{
		"address": address,
		"cert":    certPath,
		"key":     keyPath,
	}).Info("Starting server with HTTPS/TLS")

	if err := app.Listener(tlsListener); err != nil {
		log.Fatalf("Error in Fiber Listener with TLS: %v", err)
	}
}

// resolveProjectPath đổi đường dẫn tương đối thành tuyệt đối tính từ
// thư mục gốc dự án (thư mục chứa config/env). Không tìm thấy thì giữ nguyên.
func resolveProjectPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	dir, err := os.Getwd()
	if err != nil {
		return path
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "config", "env")); err == nil {
			return filepath.Join(dir, path)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return path
		}
		dir = parent
	}
}
