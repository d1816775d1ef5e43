package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// requestID tìm request id theo thứ tự: Locals (requestid middleware set vào đây),
// header request, header response
func requestID(c fiber.Ctx) string {
	if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
		return rid
	}
	if rid := c.Get("X-Request-ID"); rid != "" {
		return rid
	}
	return c.GetRespHeader("X-Request-ID")
}

// WithRequest trả về log entry gắn sẵn request_id, method, path và ip
// của request hiện tại
func WithRequest(c fiber.Ctx) *logrus.Entry {
	entry := GetAppLogger().WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	})
	if rid := requestID(c); rid != "" {
		entry = entry.WithField("request_id", rid)
	}
	return entry
}
