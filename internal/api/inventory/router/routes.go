// Package router đăng ký các route thuộc domain inventory.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	invhdl "sales_ledger/internal/api/inventory/handler"
	apirouter "sales_ledger/internal/api/router"
)

// Register đăng ký route CRUD cho items lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	itemHandler, err := invhdl.NewItemHandler()
	if err != nil {
		return fmt.Errorf("failed to create item handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/items", itemHandler, "Item")
	return nil
}
