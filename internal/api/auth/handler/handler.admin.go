// Package authhdl - handler admin (block user, set role).
package authhdl

import (
	"fmt"

	authdto "sales_ledger/internal/api/auth/dto"
	authmodels "sales_ledger/internal/api/auth/models"
	authsvc "sales_ledger/internal/api/auth/service"
	basehdl "sales_ledger/internal/api/base/handler"
	"sales_ledger/internal/common"
	"sales_ledger/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// AdminHandler xử lý các route liên quan đến quản trị viên
type AdminHandler struct {
	basehdl.BaseHandler[authmodels.User, authdto.UserCreateInput, authdto.UserChangeInfoInput]
	UserCRUD     *authsvc.UserService
	AdminService *authsvc.AdminService
}

// NewAdminHandler tạo một instance mới của AdminHandler
func NewAdminHandler() (*AdminHandler, error) {
	h := &AdminHandler{}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	h.UserCRUD = userService
	adminService, err := authsvc.NewAdminService()
	if err != nil {
		return nil, fmt.Errorf("failed to create admin service: %v", err)
	}
	h.AdminService = adminService
	h.BaseService = userService
	return h, nil
}

// HandleSetRole xử lý thiết lập role (admin | user) cho người dùng
func (h *AdminHandler) HandleSetRole(c fiber.Ctx) error {
	var input authdto.SetRoleInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil))
		return nil
	}
	result, err := h.AdminService.SetRole(c.Context(), input.Email, input.Role)
	if err == nil {
		logger.LogPermission("set_role", c, map[string]interface{}{"email": input.Email, "role": input.Role})
	}
	h.HandleResponse(c, result, err)
	return nil
}

// HandleBlockUser xử lý khóa người dùng
func (h *AdminHandler) HandleBlockUser(c fiber.Ctx) error {
	var input authdto.BlockUserInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil))
		return nil
	}
	result, err := h.AdminService.BlockUser(c.Context(), input.Email, true, input.Note)
	if err == nil {
		logger.LogPermission("block_user", c, map[string]interface{}{"email": input.Email})
	}
	h.HandleResponse(c, result, err)
	return nil
}

// HandleUnBlockUser xử lý mở khóa người dùng
func (h *AdminHandler) HandleUnBlockUser(c fiber.Ctx) error {
	var input authdto.UnBlockUserInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil))
		return nil
	}
	result, err := h.AdminService.BlockUser(c.Context(), input.Email, false, "")
	if err == nil {
		logger.LogPermission("unblock_user", c, map[string]interface{}{"email": input.Email})
	}
	h.HandleResponse(c, result, err)
	return nil
}
