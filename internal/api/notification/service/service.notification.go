// Package service - nghiệp vụ thông báo.
package service

import (
	"fmt"

	basesvc "sales_ledger/internal/api/base/service"
	models "sales_ledger/internal/api/notification/models"
	"sales_ledger/internal/common"
	"sales_ledger/internal/global"
)

// NotificationService cung cấp CRUD cho collection notifications.
type NotificationService struct {
	*basesvc.BaseServiceMongoImpl[models.Notification]
}

// NewNotificationService tạo mới NotificationService
func NewNotificationService() (*NotificationService, error) {
	notificationCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Notifications)
	if !exist {
		return nil, fmt.Errorf("failed to get notifications collection: %v", common.ErrNotFound)
	}
	return &NotificationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Notification](notificationCollection),
	}, nil
}
