package middleware

import (
	"errors"
	"sales_ledger/internal/common"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả JSON kèm charset=utf-8 trong Content-Type.
// Bản riêng cho package middleware để tránh import cycle với handler.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleErrorResponse ghi envelope lỗi {code, message, details, status}
// cho middleware (auth, permission) khi chặn request.
func HandleErrorResponse(c fiber.Ctx, err error) {
	var customErr *common.Error
	if !errors.As(err, &customErr) {
		// Lỗi không phân loại được coi là lỗi hệ thống
		JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code":    common.ErrCodeDatabase.Code,
			"message": err.Error(),
			"status":  "error",
		})
		return
	}
	JSONResponse(c, customErr.StatusCode, fiber.Map{
		"code":    customErr.Code.Code,
		"message": customErr.Message,
		"details": customErr.Details,
		"status":  "error",
	})
}
