// Package router đăng ký các route thuộc domain auth: System, Auth, Admin, User.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "sales_ledger/internal/api/auth/handler"
	basehdl "sales_ledger/internal/api/base/handler"
	"sales_ledger/internal/api/middleware"
	apirouter "sales_ledger/internal/api/router"
)

// Register đăng ký tất cả route auth (system, auth, admin, user) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerAuthRoutes(v1); err != nil {
		return err
	}
	if err := registerAdminRoutes(v1); err != nil {
		return err
	}
	if err := registerUserRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerAuthRoutes(router fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}
	router.Post("/auth/register", userHandler.HandleRegister)
	router.Post("/auth/login", userHandler.HandleLogin)
	router.Post("/auth/login/firebase", userHandler.HandleLoginWithFirebase)
	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/logout", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleUpdateProfile)
	return nil
}

func registerAdminRoutes(router fiber.Router) error {
	adminHandler, err := authhdl.NewAdminHandler()
	if err != nil {
		return fmt.Errorf("failed to create admin handler: %w", err)
	}
	blockMiddleware := middleware.AuthMiddleware("User.Block")
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/block", []fiber.Handler{blockMiddleware}, adminHandler.HandleBlockUser)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/unblock", []fiber.Handler{blockMiddleware}, adminHandler.HandleUnBlockUser)
	setRoleMiddleware := middleware.AuthMiddleware("User.SetRole")
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/role", []fiber.Handler{setRoleMiddleware}, adminHandler.HandleSetRole)
	return nil
}

func registerUserRoutes(router fiber.Router, _ *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	// Chỉ mở các route đọc cho collection user. Tạo user đi qua /auth/register
	// (cần hash password), không qua insert-one generic.
	authReadMiddleware := middleware.AuthMiddleware("User.Read")
	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(router, "/user", "GET", "/find", []fiber.Handler{authReadMiddleware}, userHandler.Find)
	apirouter.RegisterRouteWithMiddleware(router, "/user", "GET", "/find-by-id/:id", []fiber.Handler{authReadMiddleware}, userHandler.FindOneById)
	apirouter.RegisterRouteWithMiddleware(router, "/user", "GET", "/find-with-pagination", []fiber.Handler{authReadMiddleware}, userHandler.FindWithPagination)
	apirouter.RegisterRouteWithMiddleware(router, "/user", "GET", "/count", []fiber.Handler{authOnlyMiddleware}, userHandler.CountDocuments)
	return nil
}
