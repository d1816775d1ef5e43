// Package service - nghiệp vụ vật phẩm kho.
package service

import (
	"fmt"

	basesvc "sales_ledger/internal/api/base/service"
	models "sales_ledger/internal/api/inventory/models"
	"sales_ledger/internal/common"
	"sales_ledger/internal/global"
)

// ItemService cung cấp CRUD cho collection items.
// Toàn bộ nghiệp vụ đi qua BaseServiceMongoImpl; ownership filter nằm ở tầng handler.
type ItemService struct {
	*basesvc.BaseServiceMongoImpl[models.Item]
}

// NewItemService tạo mới ItemService
func NewItemService() (*ItemService, error) {
	itemCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Items)
	if !exist {
		return nil, fmt.Errorf("failed to get items collection: %v", common.ErrNotFound)
	}
	return &ItemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Item](itemCollection),
	}, nil
}
