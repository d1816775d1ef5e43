// Package handler - handler HTTP cho customer engine: danh bạ, lệnh view, chi tiết, export CSV.
package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "sales_ledger/internal/api/auth/models"
	basehdl "sales_ledger/internal/api/base/handler"
	custdto "sales_ledger/internal/api/customer/dto"
	custsvc "sales_ledger/internal/api/customer/service"
	"sales_ledger/internal/common"
	"sales_ledger/internal/global"
)

// CustomerHandler xử lý API danh bạ khách hàng.
type CustomerHandler struct {
	DirectoryService *custsvc.DirectoryService
}

// NewCustomerHandler tạo CustomerHandler mới.
func NewCustomerHandler() (*CustomerHandler, error) {
	directoryService, err := custsvc.GetDirectoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create directory service: %v", err)
	}
	return &CustomerHandler{DirectoryService: directoryService}, nil
}

// ownerScope xác định scope danh bạ từ context: admin thấy tất cả (nil), user thường thấy của mình.
func ownerScope(c fiber.Ctx) (*primitive.ObjectID, error) {
	if role, _ := c.Locals("user_role").(string); role == authmodels.RoleAdmin {
		return nil, nil
	}
	userIDStr, _ := c.Locals("user_id").(string)
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuth, "Không có user context", common.StatusUnauthorized, nil)
	}
	return &userID, nil
}

// respond trả về envelope chuẩn {code, message, data, status}.
func respond(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			return basehdl.JSONResponse(c, customErr.StatusCode, fiber.Map{
				"code": customErr.Code.Code, "message": customErr.Message, "details": customErr.Details, "status": "error",
			})
		}
		return basehdl.JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code": common.ErrCodeInternalServer.Code, "message": err.Error(), "status": "error",
		})
	}
	return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
		"code": common.StatusOK, "message": common.MsgSuccess, "data": data, "status": "success",
	})
}

// viewPayload dữ liệu trả về sau một thao tác view.
func viewPayload(state *custsvc.ViewState) fiber.Map {
	payload := fiber.Map{
		"state":     state,
		"page":      state.CurrentPage(),
		"pageCount": custsvc.PageCount(len(state.View)),
		"stats":     custsvc.Summarize(state.Directory),
	}
	if state.Detail != nil {
		payload["detail"] = state.Detail
	}
	if state.ExportData != "" {
		payload["export"] = state.ExportData
	}
	return payload
}

// HandleDirectory xử lý GET /customers/directory — trang đầu danh bạ + số liệu tổng hợp.
// Query: query, status, sortField, sortAsc, page.
func (h *CustomerHandler) HandleDirectory(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		owner, err := ownerScope(c)
		if err != nil {
			return respond(c, nil, err)
		}
		directory, err := h.DirectoryService.DirectoryFor(c.Context(), owner)
		if err != nil {
			return respond(c, nil, err)
		}

		page := 1
		if pageStr := c.Query("page"); pageStr != "" {
			if parsed, err := strconv.Atoi(pageStr); err == nil && parsed >= 1 {
				page = parsed
			}
		}
		sortAsc := c.Query("sortAsc", "true") != "false"
		state := custsvc.RestoreViewState(directory,
			c.Query("query"), c.Query("status"), c.Query("sortField"), sortAsc, page)
		return respond(c, viewPayload(state), nil)
	})
}

// HandleViewCommand xử lý POST /customers/view — thực thi một lệnh (search, filter, sort,
// pageNext, pagePrev, export, viewDetail) trên state client gửi lên.
func (h *CustomerHandler) HandleViewCommand(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input custdto.ViewInput
		if err := c.Bind().Body(&input); err != nil {
			return respond(c, nil, common.NewError(common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu không đúng định dạng JSON: %v", err), common.StatusBadRequest, nil))
		}
		if err := global.Validate.Struct(&input); err != nil {
			return respond(c, nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err))
		}

		owner, err := ownerScope(c)
		if err != nil {
			return respond(c, nil, err)
		}
		directory, err := h.DirectoryService.DirectoryFor(c.Context(), owner)
		if err != nil {
			return respond(c, nil, err)
		}

		state := custsvc.RestoreViewState(directory,
			input.Query, input.StatusFilter, input.SortField, input.SortAsc, input.Page)
		if err := state.Apply(input.Command); err != nil {
			return respond(c, nil, err)
		}
		return respond(c, viewPayload(state), nil)
	})
}

// HandleDetail xử lý GET /customers/detail/:id — chi tiết khách hàng từ danh bạ ĐẦY ĐỦ,
// đơn hàng sort ngày giảm dần.
func (h *CustomerHandler) HandleDetail(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		owner, err := ownerScope(c)
		if err != nil {
			return respond(c, nil, err)
		}
		directory, err := h.DirectoryService.DirectoryFor(c.Context(), owner)
		if err != nil {
			return respond(c, nil, err)
		}

		detail, err := custsvc.Detail(directory, c.Params("id"))
		if err != nil {
			return respond(c, nil, err)
		}
		return respond(c, fiber.Map{
			"customer":      detail,
			"avgOrderValue": detail.AvgOrderValue(),
		}, nil)
	})
}

// HandleExportCSV xử lý GET /customers/export.csv — xuất toàn bộ danh bạ ra CSV.
// Danh bạ rỗng: không có file, trả 204 (service đã log warning).
func (h *CustomerHandler) HandleExportCSV(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		owner, err := ownerScope(c)
		if err != nil {
			return respond(c, nil, err)
		}
		directory, err := h.DirectoryService.DirectoryFor(c.Context(), owner)
		if err != nil {
			return respond(c, nil, err)
		}

		csv := custsvc.ExportCSV(directory)
		if csv == "" {
			return c.SendStatus(common.StatusNoContent)
		}
		c.Set("Content-Type", "text/csv; charset=utf-8")
		c.Set("Content-Disposition", `attachment; filename="customers.csv"`)
		return c.SendString(csv)
	})
}
