// Package handler - handler HTTP cho domain notification.
package handler

import (
	"fmt"

	basehdl "sales_ledger/internal/api/base/handler"
	notidto "sales_ledger/internal/api/notification/dto"
	models "sales_ledger/internal/api/notification/models"
	notisvc "sales_ledger/internal/api/notification/service"
)

// NotificationHandler xử lý các request CRUD cho thông báo
type NotificationHandler struct {
	*basehdl.BaseHandler[models.Notification, notidto.NotificationCreateInput, notidto.NotificationChangeInput]
	NotificationService *notisvc.NotificationService
}

// NewNotificationHandler tạo instance mới của NotificationHandler
func NewNotificationHandler() (*NotificationHandler, error) {
	notificationService, err := notisvc.NewNotificationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Notification, notidto.NotificationCreateInput, notidto.NotificationChangeInput](notificationService)
	return &NotificationHandler{
		BaseHandler:         baseHandler,
		NotificationService: notificationService,
	}, nil
}
