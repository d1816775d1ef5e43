// Package handler - handler HTTP cho domain inventory.
package handler

import (
	"fmt"

	basehdl "sales_ledger/internal/api/base/handler"
	invdto "sales_ledger/internal/api/inventory/dto"
	models "sales_ledger/internal/api/inventory/models"
	invsvc "sales_ledger/internal/api/inventory/service"
)

// ItemHandler xử lý các request CRUD cho vật phẩm kho
type ItemHandler struct {
	*basehdl.BaseHandler[models.Item, invdto.ItemCreateInput, invdto.ItemChangeInput]
	ItemService *invsvc.ItemService
}

// NewItemHandler tạo instance mới của ItemHandler
func NewItemHandler() (*ItemHandler, error) {
	itemService, err := invsvc.NewItemService()
	if err != nil {
		return nil, fmt.Errorf("failed to create item service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Item, invdto.ItemCreateInput, invdto.ItemChangeInput](itemService)
	return &ItemHandler{
		BaseHandler: baseHandler,
		ItemService: itemService,
	}, nil
}
