// Package router đăng ký các route thuộc customer engine.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	custhdl "sales_ledger/internal/api/customer/handler"
	"sales_ledger/internal/api/middleware"
	apirouter "sales_ledger/internal/api/router"
)

// Register đăng ký route danh bạ khách hàng lên v1. Tất cả route chỉ cần đăng nhập;
// scope dữ liệu (của mình / toàn bộ) quyết định theo role trong handler.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	customerHandler, err := custhdl.NewCustomerHandler()
	if err != nil {
		return fmt.Errorf("failed to create customer handler: %w", err)
	}

	authOnlyMiddleware := middleware.AuthMiddleware("")
	middlewares := []fiber.Handler{authOnlyMiddleware}

	// GET /customers/directory — trang danh bạ + stats. Query: query, status, sortField, sortAsc, page
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "GET", "/directory", middlewares, customerHandler.HandleDirectory)

	// POST /customers/view — thực thi lệnh view (search, filter, sort, pageNext, pagePrev, export, viewDetail)
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "POST", "/view", middlewares, customerHandler.HandleViewCommand)

	// GET /customers/detail/:id — chi tiết khách hàng
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "GET", "/detail/:id", middlewares, customerHandler.HandleDetail)

	// GET /customers/export.csv — xuất danh bạ đầy đủ ra CSV
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "GET", "/export.csv", middlewares, customerHandler.HandleExportCSV)

	return nil
}
