// Package router đăng ký các route thuộc domain billing.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	billhdl "sales_ledger/internal/api/billing/handler"
	"sales_ledger/internal/api/middleware"
	apirouter "sales_ledger/internal/api/router"
)

// Register đăng ký route CRUD cho invoices và feed billing lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	invoiceHandler, err := billhdl.NewInvoiceHandler()
	if err != nil {
		return fmt.Errorf("failed to create invoice handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/invoices", invoiceHandler, "Invoice")

	// GET /billing — feed bản ghi billing cho customer engine, chỉ cần bearer token hợp lệ.
	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(v1, "/billing", "GET", "/", []fiber.Handler{authOnlyMiddleware}, invoiceHandler.HandleBillingFeed)

	return nil
}
