// Package handler - handler HTTP cho domain billing.
package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	authmodels "sales_ledger/internal/api/auth/models"
	basehdl "sales_ledger/internal/api/base/handler"
	billdto "sales_ledger/internal/api/billing/dto"
	models "sales_ledger/internal/api/billing/models"
	billsvc "sales_ledger/internal/api/billing/service"
	"sales_ledger/internal/common"
)

// InvoiceHandler xử lý các request CRUD cho hóa đơn và feed billing
type InvoiceHandler struct {
	*basehdl.BaseHandler[models.Invoice, billdto.InvoiceCreateInput, billdto.InvoiceChangeInput]
	InvoiceService *billsvc.InvoiceService
}

// NewInvoiceHandler tạo instance mới của InvoiceHandler
func NewInvoiceHandler() (*InvoiceHandler, error) {
	invoiceService, err := billsvc.NewInvoiceService()
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Invoice, billdto.InvoiceCreateInput, billdto.InvoiceChangeInput](invoiceService)
	return &InvoiceHandler{
		BaseHandler:    baseHandler,
		InvoiceService: invoiceService,
	}, nil
}

// HandleBillingFeed xử lý GET /billing — feed bản ghi billing cho customer engine.
// Trả về {records: [...]}; user thường chỉ thấy hóa đơn của mình, admin thấy tất cả.
func (h *InvoiceHandler) HandleBillingFeed(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter := bson.M{}
		if role, _ := c.Locals("user_role").(string); role != authmodels.RoleAdmin {
			authUserID := h.GetAuthUserID(c)
			if authUserID == nil {
				h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "Không có user context", common.StatusUnauthorized, nil))
				return nil
			}
			filter["ownerUserId"] = *authUserID
		}

		records, err := h.InvoiceService.BillingRecords(c.Context(), filter)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		return c.Status(common.StatusOK).JSON(fiber.Map{
			"records": records,
		})
	})
}
