package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	authrouter "sales_ledger/internal/api/auth/router"
	billingrouter "sales_ledger/internal/api/billing/router"
	customerrouter "sales_ledger/internal/api/customer/router"
	inventoryrouter "sales_ledger/internal/api/inventory/router"
	notificationrouter "sales_ledger/internal/api/notification/router"
	"sales_ledger/internal/api/router"
	"sales_ledger/internal/common"
	"sales_ledger/internal/global"
	"sales_ledger/internal/logger"
)

// InitFiberApp dựng Fiber app: config server, middleware stack
// (request-id, CORS, security headers, rate limit, recover) và route các domain
func InitFiberApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:       "Sales Ledger API",
		ServerHeader:  "Sales Ledger API",
		StrictRouting: true, // /foo và /foo/ là khác nhau
		CaseSensitive: true,
		UnescapePath:  true,
		Immutable:     false,

		BodyLimit:       10 * 1024 * 1024,
		Concurrency:     256 * 1024,
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,

		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		ErrorHandler: fiberErrorHandler,
	})

	registerMiddleware(app)

	if err := router.SetupRoutes(app,
		authrouter.Register,
		inventoryrouter.Register,
		billingrouter.Register,
		customerrouter.Register,
		notificationrouter.Register,
	); err != nil {
		logger.GetAppLogger().Fatalf("Failed to setup routes: %v", err)
	}

	return app
}

// fiberErrorHandler map lỗi Fiber sang envelope lỗi chung của ứng dụng
func fiberErrorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"
	errorCode := common.ErrCodeInternalServer.Code

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
		switch code {
		case fiber.StatusBadRequest:
			errorCode = common.ErrCodeValidationInput.Code
		case fiber.StatusUnauthorized:
			errorCode = common.ErrCodeAuthToken.Code
		case fiber.StatusForbidden:
			errorCode = common.ErrCodeAuthRole.Code
		case fiber.StatusNotFound, fiber.StatusConflict:
			errorCode = common.ErrCodeDatabaseQuery.Code
		}
	}

	// Client gọi https:// vào server HTTP: payload TLS handshake (0x16 0x03 0x01)
	// đến như một request method lạ. Không log, trả 400 kèm hướng dẫn.
	if isTLSHandshakeError(err) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    common.ErrCodeValidationInput.Code,
			"message": "Server chỉ hỗ trợ HTTP. Vui lòng sử dụng http:// thay vì https://",
			"status":  "error",
			"details": fiber.Map{
				"protocol":   "HTTP only",
				"suggestion": "Sử dụng URL: http://localhost" + global.MongoDB_ServerConfig.Address,
			},
		})
	}

	logger.WithRequest(c).WithFields(map[string]interface{}{
		"code":      code,
		"errorCode": errorCode,
		"message":   message,
	}).Error("Request error")

	return c.Status(code).JSON(fiber.Map{
		"code":    errorCode,
		"message": message,
		"status":  "error",
	})
}

// isTLSHandshakeError nhận diện lỗi do TLS handshake gửi vào server HTTP
func isTLSHandshakeError(err error) bool {
	msg := err.Error()
	if !strings.Contains(msg, "unsupported http request method") {
		return false
	}
	return strings.Contains(msg, "\\x16\\x03\\x01") ||
		strings.Contains(msg, "\x16\x03\x01") ||
		strings.Contains(msg, "error when reading request headers")
}

// registerMiddleware gắn middleware stack theo thứ tự:
// request-id trước để mọi log có trace id, CORS trước các middleware khác
// để preflight không bị chặn
func registerMiddleware(app *fiber.App) {
	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return fmt.Sprintf("%d", time.Now().UnixNano())
		},
	}))

	app.Use(cors.New(corsConfig()))

	// Security headers cho mọi response
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		// HSTS chỉ bật khi chạy sau TLS terminator
		return c.Next()
	})

	registerRateLimit(app)

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithFields(map[string]interface{}{
				"panic":   e,
				"headers": c.GetReqHeaders(),
				"body":    string(c.Body()),
			}).Error("Panic recovered")

			c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"code":    fiber.StatusInternalServerError,
				"message": "Internal Server Error",
				"error":   fmt.Sprintf("%v", e),
				"time":    time.Now().Format(time.RFC3339),
			})
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/health" ||
				c.Path() == "/metrics" ||
				c.Path() == "/api/v1/system/health"
		},
	}))
}

// corsConfig dựng config CORS từ server config.
// CORS_Origins = "*" cho development, danh sách origin cách nhau dấu phẩy cho production.
func corsConfig() cors.Config {
	allowOrigins := []string{"*"}
	if origins := global.MongoDB_ServerConfig.CORS_Origins; origins != "*" {
		allowOrigins = strings.Split(origins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
	}

	return cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
			"X-Requested-With",
		},
		AllowCredentials: global.MongoDB_ServerConfig.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "Content-Range", "X-Request-ID"},
		MaxAge:           24 * 60 * 60, // cache preflight 24 giờ
	}
}

// registerRateLimit bật rate limit theo IP nếu được cấu hình.
// Health check và OPTIONS (preflight) không bị giới hạn.
func registerRateLimit(app *fiber.App) {
	cfg := global.MongoDB_ServerConfig
	if !cfg.RateLimit_Enabled || cfg.RateLimit_Max <= 0 {
		logger.GetAppLogger().Info("Rate limiting disabled")
		return
	}

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit_Max,
		Expiration: time.Duration(cfg.RateLimit_Window) * time.Second,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"code":    common.ErrCodeBusinessOperation.Code,
				"message": "Quá nhiều yêu cầu, vui lòng thử lại sau",
				"status":  "error",
			})
		},
		SkipFailedRequests:     false,
		SkipSuccessfulRequests: false,
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/health" ||
				c.Path() == "/api/v1/system/health" ||
				c.Method() == "OPTIONS"
		},
	}))
	logger.GetAppLogger().Infof("Rate limiting enabled: %d requests per %d seconds", cfg.RateLimit_Max, cfg.RateLimit_Window)
}
