package basehdl

// CRUD endpoint chung cho mọi model: route đăng ký qua RegisterCRUDRoutes,
// phân quyền dữ liệu theo ownerUserId áp dụng tự động khi model có field đó.

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	basesvc "sales_ledger/internal/api/base/service"
	"sales_ledger/internal/common"
	"sales_ledger/internal/logger"
	"sales_ledger/internal/utility"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// objectIDParam đọc và validate URI param :id, trả về lỗi 400 nếu thiếu
// hoặc không phải ObjectID hex 24 ký tự
func objectIDParam(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	if id == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"ID không được để trống trong URL params",
			common.StatusBadRequest,
			nil,
		)
	}
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(id), nil
}

// resolveOwner xử lý ownerUserId cho model sắp ghi:
// request chỉ định owner thì phải có quyền gán (admin hoặc chính mình),
// không chỉ định thì lấy user đã xác thực từ context
func (h *BaseHandler[T, CreateInput, UpdateInput]) resolveOwner(c fiber.Ctx, model *T) error {
	if ownerID := h.GetOwnerUserIDFromModel(model); ownerID != nil && !ownerID.IsZero() {
		return h.ValidateOwnerAssignment(c, *ownerID)
	}
	if authUserID := h.GetAuthUserID(c); authUserID != nil && !authUserID.IsZero() {
		h.SetOwnerUserID(model, *authUserID)
	}
	return nil
}

// InsertOne thêm mới một document.
// Body là DTO CreateInput, được validate và transform sang Model trước khi ghi.
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input CreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Lỗi transform dữ liệu: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.resolveOwner(c, model); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.InsertOne(c.Context(), *model)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindOneById tìm một document theo ID trong URI params
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := objectIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.ValidateOwnershipAccess(c, id.Hex()); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.FindOneById(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// paginationParams đọc page/limit từ query string với mặc định 1/10,
// giá trị không hợp lệ quy về mặc định
func paginationParams(c fiber.Ctx) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}
	return page, limit
}

// FindWithPagination tìm nhiều document với phân trang.
//
// Query params:
// - filter: Điều kiện tìm kiếm (JSON)
// - options: Tùy chọn tìm kiếm (JSON). Ví dụ: {"projection": {"field": 1}, "sort": {"field": 1}}
// - page: Số trang (mặc định: 1)
// - limit: Số lượng item trên một trang (mặc định: 10)
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindWithPagination(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		filter = h.applyOwnershipFilter(c, filter)

		options, err := h.processMongoOptions(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Service tự set skip/limit vào options theo page/limit
		page, limit := paginationParams(c)
		data, err := h.BaseService.FindWithPagination(c.Context(), filter, page, limit, options)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Find tìm nhiều document theo filter và options từ query string (JSON).
// Ví dụ options: {"projection": {"field": 1}, "sort": {"field": 1}, "limit": 10, "skip": 0}
func (h *BaseHandler[T, CreateInput, UpdateInput]) Find(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		filter = h.applyOwnershipFilter(c, filter)

		options, err := h.processMongoOptions(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.Find(c.Context(), filter, options)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Client luôn nhận mảng, không nhận null
		if data == nil {
			data = []T{}
		}
		h.HandleResponse(c, data, nil)
		return nil
	})
}

// UpdateById cập nhật một document theo ID (partial update).
// Chỉ các field non-zero trong body được đưa vào $set, field khác giữ nguyên.
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := objectIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Quyền trên document hiện tại, trước khi đụng vào dữ liệu
		if err := h.ValidateOwnershipAccess(c, id.Hex()); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input UpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu cập nhật không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.TransformUpdateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Lỗi transform dữ liệu: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.resolveOwner(c, model); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Flatten model sang map rồi chỉ giữ field non-zero cho $set
		updateData := &basesvc.UpdateData{Set: make(map[string]interface{})}
		modelMap, err := utility.ToMap(model)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi convert model sang map (extract): %v", err),
				common.StatusInternalServerError,
				err,
			))
			return nil
		}
		for k, v := range modelMap {
			if rv := reflect.ValueOf(v); rv.IsValid() && !rv.IsZero() {
				updateData.Set[k] = v
			}
		}

		data, err := h.BaseService.UpdateById(c.Context(), id, updateData)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DeleteById xóa một document theo ID trong URI params
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := objectIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.ValidateOwnershipAccess(c, id.Hex()); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.BaseService.DeleteById(c.Context(), id)
		if err == nil {
			logger.LogCRUD("delete", reflect.TypeOf(*new(T)).Name(), id.Hex(), c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// CountDocuments đếm document theo filter từ query string (JSON)
func (h *BaseHandler[T, CreateInput, UpdateInput]) CountDocuments(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var filter map[string]interface{}
		filterStr := c.Query("filter", "{}")
		if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
			logrus.WithFields(logrus.Fields{
				"filter_string": filterStr,
				"endpoint":      c.Path(),
				"error":         err,
			}).Debug("Lỗi khi parse filter")

			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"Filter không hợp lệ",
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		count, err := h.BaseService.CountDocuments(c.Context(), filter)
		h.HandleResponse(c, count, err)
		return nil
	})
}
