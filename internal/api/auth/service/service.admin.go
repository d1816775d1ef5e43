// Package authsvc - service quản trị (Admin): block user, set role, v.v.
package authsvc

import (
	"context"
	"fmt"

	models "sales_ledger/internal/api/auth/models"
	basesvc "sales_ledger/internal/api/base/service"
	"sales_ledger/internal/common"

	"go.mongodb.org/mongo-driver/bson"
)

// AdminService là cấu trúc chứa các phương thức liên quan đến admin
type AdminService struct {
	userService *UserService
}

// NewAdminService tạo mới AdminService
func NewAdminService() (*AdminService, error) {
	userService, err := NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	return &AdminService{
		userService: userService,
	}, nil
}

// SetRole gán role (admin | user) cho User dựa trên Email
func (s *AdminService) SetRole(ctx context.Context, email string, role string) (*models.User, error) {
	if role != models.RoleAdmin && role != models.RoleUser {
		return nil, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Role '%s' không hợp lệ", role), common.StatusBadRequest, nil)
	}

	filter := bson.M{"email": email}
	user, err := s.userService.FindOne(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"role": role},
	}
	updatedUser, err := s.userService.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, err
	}
	s.userService.writeAuthLog(ctx, updatedUser.ID, models.AuthActionSetRole, "Gán role "+role, "")
	return &updatedUser, nil
}

// BlockUser chặn hoặc bỏ chặn User dựa trên Email và trạng thái Block
func (s *AdminService) BlockUser(ctx context.Context, email string, block bool, note string) (*models.User, error) {
	filter := bson.M{"email": email}
	user, err := s.userService.FindOne(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock":   block,
			"blockNote": note,
		},
	}
	updatedUser, err := s.userService.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, err
	}
	action := models.AuthActionBlock
	if !block {
		action = models.AuthActionUnblock
	}
	s.userService.writeAuthLog(ctx, updatedUser.ID, action, note, "")
	return &updatedUser, nil
}

// UnBlockUser mở khóa người dùng
func (s *AdminService) UnBlockUser(ctx context.Context, email string) (*models.User, error) {
	return s.BlockUser(ctx, email, false, "")
}
