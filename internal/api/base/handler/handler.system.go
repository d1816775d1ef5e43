package basehdl

import (
	"context"
	"sales_ledger/internal/common"
	"sales_ledger/internal/global"
	"time"

	"github.com/gofiber/fiber/v3"
)

// SystemHandler xử lý các route hệ thống (health check)
type SystemHandler struct {
	*BaseHandler[interface{}, interface{}, interface{}]
}

// NewSystemHandler tạo một instance mới của SystemHandler
func NewSystemHandler() (*SystemHandler, error) {
	return &SystemHandler{
		BaseHandler: &BaseHandler[interface{}, interface{}, interface{}]{},
	}, nil
}

// HandleHealth kiểm tra tình trạng hệ thống
// @Summary Kiểm tra tình trạng hệ thống
// @Description Kiểm tra trạng thái của API và database connection
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Hệ thống hoạt động bình thường"
// @Failure 503 {object} map[string]interface{} "Hệ thống đang gặp sự cố"
// @Router /system/health [get]
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	services := fiber.Map{"api": "ok"}
	healthData := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"services":  services,
	}

	// Mongo chưa init (vd: chạy tool offline) thì báo degraded nhưng vẫn trả 200
	if global.MongoDB_Session == nil {
		healthData["status"] = "degraded"
		services["database"] = "not_initialized"
		return h.writeHealth(c, common.StatusOK, common.MsgSuccess, "success", healthData)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := global.MongoDB_Session.Ping(ctx, nil); err != nil {
		healthData["status"] = "degraded"
		services["database"] = "error"
		healthData["database_error"] = err.Error()
		return h.writeHealth(c, common.StatusServiceUnavailable, "Hệ thống đang gặp sự cố", "error", healthData)
	}

	services["database"] = "ok"
	return h.writeHealth(c, common.StatusOK, common.MsgSuccess, "success", healthData)
}

// writeHealth trả health check theo envelope chung {code, message, data, status}
func (h *SystemHandler) writeHealth(c fiber.Ctx, code int, message, status string, data fiber.Map) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"message": message,
		"data":    data,
		"status":  status,
	})
}
