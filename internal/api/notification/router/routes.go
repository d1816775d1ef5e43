// Package router đăng ký các route thuộc domain notification.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	notihdl "sales_ledger/internal/api/notification/handler"
	apirouter "sales_ledger/internal/api/router"
)

// Register đăng ký route CRUD cho notifications lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	notificationHandler, err := notihdl.NewNotificationHandler()
	if err != nil {
		return fmt.Errorf("failed to create notification handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/notifications", notificationHandler, "Notification")
	return nil
}
