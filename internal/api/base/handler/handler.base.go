// Package basehdl chứa base handler HTTP cho các endpoint CRUD:
// parse/validate request, phân quyền dữ liệu theo ownerUserId,
// và chuyển DTO sang model.
package basehdl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	basesvc "sales_ledger/internal/api/base/service"
	"sales_ledger/internal/common"
	"sales_ledger/internal/global"
	"sales_ledger/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// Mặc định cho validate filter/options từ query string.
var (
	defaultDeniedFields = []string{"password", "token", "secret", "key", "hash"}
	defaultOperators    = []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"}
)

const defaultMaxFilterFields = 10

// FilterOptions cấu hình cho việc validate filter
type FilterOptions struct {
	DeniedFields     []string // Các trường bị cấm filter
	AllowedOperators []string // Các operator MongoDB được phép
	MaxFields        int      // Số lượng field tối đa trong một filter
}

// BaseHandler cung cấp các chức năng CRUD dùng chung cho mọi Fiber handler.
//
// Type parameters:
// - T: Kiểu dữ liệu của model
// - CreateInput: DTO khi tạo mới
// - UpdateInput: DTO khi cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService   basesvc.BaseServiceMongo[T]
	filterOptions FilterOptions
}

// NewBaseHandler tạo BaseHandler với cấu hình filter mặc định
func NewBaseHandler[T any, CreateInput any, UpdateInput any](baseService basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: baseService,
		filterOptions: FilterOptions{
			DeniedFields:     defaultDeniedFields,
			AllowedOperators: defaultOperators,
			MaxFields:        defaultMaxFilterFields,
		},
	}
}

// ====================================
// OWNERSHIP HELPER FUNCTIONS
// ====================================

// hasOwnerUserIDField kiểm tra model có field OwnerUserID không.
// Model có field này thì dữ liệu được phân quyền theo user sở hữu.
func (h *BaseHandler[T, CreateInput, UpdateInput]) hasOwnerUserIDField() bool {
	var zero T
	val := reflect.ValueOf(zero)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return false
	}
	return val.FieldByName("OwnerUserID").IsValid()
}

// GetAuthUserID lấy user ID đã xác thực từ context (AuthMiddleware set vào Locals)
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetAuthUserID(c fiber.Ctx) *primitive.ObjectID {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return nil
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return nil
	}
	return &userID
}

// isAdminRequest kiểm tra request đến từ user có role admin
func (h *BaseHandler[T, CreateInput, UpdateInput]) isAdminRequest(c fiber.Ctx) bool {
	role, ok := c.Locals("user_role").(string)
	return ok && role == "admin"
}

// SetOwnerUserID gán ownerUserId vào model qua reflection.
// Giá trị đã có trong request body được giữ nguyên, chỉ gán khi field còn zero.
func (h *BaseHandler[T, CreateInput, UpdateInput]) SetOwnerUserID(model interface{}, userID primitive.ObjectID) {
	if !h.hasOwnerUserIDField() || userID.IsZero() {
		return
	}

	val := reflect.ValueOf(model)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	field := val.FieldByName("OwnerUserID")
	if !field.IsValid() || !field.CanSet() {
		return
	}

	if field.Kind() == reflect.Ptr {
		if !field.IsNil() {
			if current := field.Interface().(*primitive.ObjectID); current != nil && !current.IsZero() {
				return
			}
		}
		field.Set(reflect.ValueOf(&userID))
		return
	}

	if current := field.Interface().(primitive.ObjectID); !current.IsZero() {
		return
	}
	field.Set(reflect.ValueOf(userID))
}

// GetOwnerUserIDFromModel đọc ownerUserId từ model, nil nếu không có hoặc zero.
// Hỗ trợ cả primitive.ObjectID và *primitive.ObjectID.
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetOwnerUserIDFromModel(model interface{}) *primitive.ObjectID {
	if !h.hasOwnerUserIDField() {
		return nil
	}

	val := reflect.ValueOf(model)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	field := val.FieldByName("OwnerUserID")
	if !field.IsValid() {
		return nil
	}

	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return nil
		}
		owner := field.Interface().(*primitive.ObjectID)
		if owner != nil && !owner.IsZero() {
			return owner
		}
		return nil
	}

	owner := field.Interface().(primitive.ObjectID)
	if owner.IsZero() {
		return nil
	}
	return &owner
}

// ValidateOwnerAssignment kiểm tra quyền gán owner cho document:
// admin gán được owner bất kỳ, user thường chỉ được gán chính mình.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateOwnerAssignment(c fiber.Ctx, ownerID primitive.ObjectID) error {
	if h.isAdminRequest(c) {
		return nil
	}

	authUserID := h.GetAuthUserID(c)
	if authUserID == nil {
		return common.NewError(common.ErrCodeAuth, "Không có user context", common.StatusUnauthorized, nil)
	}
	if *authUserID == ownerID {
		return nil
	}

	return common.NewError(
		common.ErrCodeAuthRole,
		"Không có quyền gán dữ liệu cho user khác",
		common.StatusForbidden,
		nil,
	)
}

// applyOwnershipFilter thu hẹp filter theo ownerUserId của user hiện tại.
// Model không có OwnerUserID, request admin, hoặc route public thì giữ nguyên filter.
func (h *BaseHandler[T, CreateInput, UpdateInput]) applyOwnershipFilter(c fiber.Ctx, baseFilter bson.M) bson.M {
	if !h.hasOwnerUserIDField() || h.isAdminRequest(c) {
		return baseFilter
	}

	authUserID := h.GetAuthUserID(c)
	if authUserID == nil {
		return baseFilter
	}

	ownerFilter := bson.M{"ownerUserId": *authUserID}
	if len(baseFilter) == 0 {
		return ownerFilter
	}
	return bson.M{"$and": []bson.M{baseFilter, ownerFilter}}
}

// ValidateOwnershipAccess kiểm tra user hiện tại có sở hữu document không.
// Model không phân quyền dữ liệu hoặc request admin thì luôn cho qua.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateOwnershipAccess(c fiber.Ctx, documentID string) error {
	if !h.hasOwnerUserIDField() || h.isAdminRequest(c) {
		return nil
	}

	id, err := primitive.ObjectIDFromHex(documentID)
	if err != nil {
		return common.NewError(common.ErrCodeValidationInput, "ID không hợp lệ", common.StatusBadRequest, err)
	}

	doc, err := h.BaseService.FindOneById(c.Context(), id)
	if err != nil {
		return err
	}

	docOwnerID := h.GetOwnerUserIDFromModel(doc)
	if docOwnerID == nil {
		// Document không mang ownerUserId thì không giới hạn truy cập
		return nil
	}

	authUserID := h.GetAuthUserID(c)
	if authUserID == nil {
		return common.NewError(common.ErrCodeAuth, "Không có user context", common.StatusUnauthorized, nil)
	}
	if *docOwnerID == *authUserID {
		return nil
	}

	return common.NewError(common.ErrCodeAuthRole, "Không có quyền truy cập", common.StatusForbidden, nil)
}

// ====================================
// PARSE VÀ VALIDATE INPUT
// ====================================

// ValidateInput validate input qua validator global rồi kiểm tra thêm
// các tag maxLength/min/max trên từng field
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}

	val := reflect.ValueOf(input)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		switch field.Kind() {
		case reflect.String:
			if maxTag := fieldType.Tag.Get("maxLength"); maxTag != "" {
				maxLen, err := strconv.Atoi(maxTag)
				if err == nil && len(field.String()) > maxLen {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Trường %s vượt quá độ dài cho phép (%d ký tự)", fieldType.Name, maxLen),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		case reflect.Int, reflect.Int64:
			if minTag := fieldType.Tag.Get("min"); minTag != "" {
				min, err := strconv.ParseInt(minTag, 10, 64)
				if err == nil && field.Int() < min {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Trường %s phải lớn hơn hoặc bằng %d", fieldType.Name, min),
						common.StatusBadRequest,
						nil,
					)
				}
			}
			if maxTag := fieldType.Tag.Get("max"); maxTag != "" {
				max, err := strconv.ParseInt(maxTag, 10, 64)
				if err == nil && field.Int() > max {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Trường %s phải nhỏ hơn hoặc bằng %d", fieldType.Name, max),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}

	return nil
}

// ParseRequestBody parse JSON body vào input rồi validate.
// Dùng json.Decoder với UseNumber() để không mất precision với số lớn.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return h.ValidateInput(input)
}

// ====================================
// FILTER TỪ QUERY STRING
// ====================================

// ProcessFilter đọc query param `filter` (JSON), normalize ObjectID và validate
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFilter(c fiber.Ctx) (map[string]interface{}, error) {
	var filter map[string]interface{}

	filterStr := c.Query("filter", "{}")
	if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter không đúng định dạng JSON. Chi tiết lỗi: %v. Giá trị filter nhận được: %s", err, filterStr),
			common.StatusBadRequest,
			err,
		)
	}

	filter = h.normalizeFilter(filter)
	if err := h.validateFilter(filter); err != nil {
		return nil, err
	}
	return filter, nil
}

// normalizeFilter chuyển các string dạng ObjectId trong filter thành
// primitive.ObjectID. Chỉ áp dụng cho field có tên kết thúc bằng Id/ID.
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilter(filter map[string]interface{}) map[string]interface{} {
	if filter == nil {
		return filter
	}

	normalized := make(map[string]interface{}, len(filter))
	for field, value := range filter {
		fieldLower := strings.ToLower(field)
		isIDField := strings.HasSuffix(fieldLower, "id") && len(fieldLower) > 2
		normalized[field] = h.normalizeFilterValue(value, isIDField)
	}
	return normalized
}

// toObjectID thử chuyển string hex thành ObjectID, trả về false nếu không hợp lệ
func toObjectID(hex string) (primitive.ObjectID, bool) {
	if !primitive.IsValidObjectID(hex) {
		return primitive.NilObjectID, false
	}
	objID, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return objID, true
}

// normalizeFilterValue normalize một giá trị trong filter, đệ quy với
// array và operator map
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilterValue(value interface{}, isIDField bool) interface{} {
	switch v := value.(type) {
	case nil:
		return value

	case string:
		if isIDField {
			if objID, ok := toObjectID(v); ok {
				return objID
			}
		}
		return v

	case []interface{}:
		normalized := make([]interface{}, len(v))
		for i, item := range v {
			normalized[i] = h.normalizeFilterValue(item, isIDField)
		}
		return normalized

	case map[string]interface{}:
		// MongoDB Extended JSON: {"$oid": "..."}
		if oidValue, hasOid := v["$oid"]; hasOid {
			if oidStr, ok := oidValue.(string); ok {
				if objID, ok := toObjectID(oidStr); ok {
					return objID
				}
			}
			return value
		}

		normalized := make(map[string]interface{}, len(v))
		for key, val := range v {
			// Phần tử trong $in/$nin của ID field cũng được chuyển thành ObjectID
			if (key == "$in" || key == "$nin") && isIDField {
				if arr, ok := val.([]interface{}); ok {
					normalizedArr := make([]interface{}, len(arr))
					for i, item := range arr {
						normalizedArr[i] = item
						if str, ok := item.(string); ok {
							if objID, ok := toObjectID(str); ok {
								normalizedArr[i] = objID
							}
						}
					}
					normalized[key] = normalizedArr
					continue
				}
			}
			normalized[key] = h.normalizeFilterValue(val, isIDField)
		}
		return normalized

	default:
		return value
	}
}

// validateFilter chặn field nhạy cảm, operator lạ và filter quá lớn
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateFilter(filter map[string]interface{}) error {
	deniedFields := h.filterOptions.DeniedFields
	if len(deniedFields) == 0 {
		deniedFields = defaultDeniedFields
	}
	allowedOperators := h.filterOptions.AllowedOperators
	if len(allowedOperators) == 0 {
		allowedOperators = defaultOperators
	}
	maxFields := h.filterOptions.MaxFields
	if maxFields == 0 {
		maxFields = defaultMaxFilterFields
	}

	if len(filter) > maxFields {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter vượt quá số lượng trường cho phép. Tối đa %d trường, hiện tại có %d trường. Vui lòng giảm số lượng trường trong filter.", maxFields, len(filter)),
			common.StatusBadRequest,
			nil,
		)
	}

	for field, value := range filter {
		if utility.Contains(deniedFields, field) {
			return common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Trường '%s' không được phép sử dụng trong filter vì lý do bảo mật. Vui lòng sử dụng các trường khác.", field),
				common.StatusBadRequest,
				nil,
			)
		}

		mapValue, ok := value.(map[string]interface{})
		if !ok {
			continue
		}
		for op := range mapValue {
			if strings.HasPrefix(op, "$") && !utility.Contains(allowedOperators, op) {
				return common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Toán tử MongoDB '%s' không được phép sử dụng. Các toán tử được phép: %v", op, allowedOperators),
					common.StatusBadRequest,
					nil,
				)
			}
		}
	}

	return nil
}

// ====================================
// MONGODB OPTIONS TỪ QUERY STRING
// ====================================

// processMongoOptions đọc query param `options` (JSON) và dựng FindOptions
// với projection/sort/limit/skip
func (h *BaseHandler[T, CreateInput, UpdateInput]) processMongoOptions(c fiber.Ctx) (*mongoopts.FindOptions, error) {
	var rawOptions map[string]interface{}

	optionsStr := c.Query("options", "{}")
	if err := json.Unmarshal([]byte(optionsStr), &rawOptions); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Options không đúng định dạng JSON. Chi tiết lỗi: %v. Giá trị options nhận được: %s", err, optionsStr),
			common.StatusBadRequest,
			err,
		)
	}

	if err := h.validateMongoOptions(rawOptions); err != nil {
		return nil, err
	}

	opts := mongoopts.Find()
	if projection, ok := rawOptions["projection"].(map[string]interface{}); ok {
		opts.SetProjection(projection)
	}
	if sortMap, ok := rawOptions["sort"].(map[string]interface{}); ok {
		opts.SetSort(parseSortPreservingOrder(sortMap, optionsStr))
	}
	if limit, ok := rawOptions["limit"].(float64); ok {
		opts.SetLimit(int64(limit))
	}
	if skip, ok := rawOptions["skip"].(float64); ok {
		opts.SetSkip(int64(skip))
	}
	return opts, nil
}

// parseSortPreservingOrder dựng bson.D sort theo đúng thứ tự key trong JSON gốc.
// Unmarshal vào map làm mất thứ tự key, nên phải đọc lại bằng json.Decoder
// token-by-token; không đọc được thì fallback sang map (thứ tự bất định).
func parseSortPreservingOrder(sortMap map[string]interface{}, optionsJSON string) bson.D {
	var rawByKey map[string]json.RawMessage
	if err := json.Unmarshal([]byte(optionsJSON), &rawByKey); err != nil {
		return sortFromMap(sortMap)
	}
	sortRaw, ok := rawByKey["sort"]
	if !ok {
		return bson.D{}
	}

	decoder := json.NewDecoder(bytes.NewReader(sortRaw))
	decoder.UseNumber()

	token, err := decoder.Token()
	if err != nil || token != json.Delim('{') {
		return sortFromMap(sortMap)
	}

	sortBson := bson.D{}
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			break
		}
		field, ok := keyToken.(string)
		if !ok {
			continue
		}

		valueToken, err := decoder.Token()
		if err != nil {
			break
		}
		order, ok := sortOrderFromToken(valueToken)
		if !ok {
			continue
		}
		sortBson = append(sortBson, bson.E{Key: field, Value: order})
	}

	if len(sortBson) == 0 {
		return sortFromMap(sortMap)
	}
	return sortBson
}

// sortOrderFromToken đọc giá trị sort từ JSON token, chỉ chấp nhận 1 hoặc -1
func sortOrderFromToken(token json.Token) (int, bool) {
	var order int
	switch v := token.(type) {
	case json.Number:
		intVal, err := v.Int64()
		if err != nil {
			floatVal, err := v.Float64()
			if err != nil {
				return 0, false
			}
			intVal = int64(floatVal)
		}
		order = int(intVal)
	case float64:
		order = int(v)
	case int:
		order = v
	default:
		return 0, false
	}

	if order != 1 && order != -1 {
		return 0, false
	}
	return order, true
}

// sortFromMap dựng sort từ map, thứ tự key không đảm bảo
func sortFromMap(sortMap map[string]interface{}) bson.D {
	sortBson := bson.D{}
	for field, value := range sortMap {
		var order int
		switch v := value.(type) {
		case float64:
			order = int(v)
		case int:
			order = v
		default:
			continue
		}
		if order != 1 && order != -1 {
			continue
		}
		sortBson = append(sortBson, bson.E{Key: field, Value: order})
	}
	return sortBson
}

// validateMongoOptions kiểm tra options chỉ chứa key được hỗ trợ,
// không lộ field nhạy cảm qua projection/sort, limit/skip hợp lý
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateMongoOptions(options map[string]interface{}) error {
	deniedFields := h.filterOptions.DeniedFields
	if len(deniedFields) == 0 {
		deniedFields = defaultDeniedFields
	}

	allowedOptions := map[string]bool{
		"projection": true,
		"sort":       true,
		"limit":      true,
		"skip":       true,
	}
	for key := range options {
		if !allowedOptions[key] {
			return common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Option '%s' không được hỗ trợ. Các options được phép: projection, sort, limit, skip", key),
				common.StatusBadRequest,
				nil,
			)
		}
	}

	if projection, ok := options["projection"].(map[string]interface{}); ok {
		for field := range projection {
			if utility.Contains(deniedFields, field) {
				return common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Trường '%s' không được phép sử dụng trong projection vì lý do bảo mật", field),
					common.StatusBadRequest,
					nil,
				)
			}
		}
	}

	if sort, ok := options["sort"].(map[string]interface{}); ok {
		for field, value := range sort {
			if utility.Contains(deniedFields, field) {
				return common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Trường '%s' không được phép sử dụng trong sort vì lý do bảo mật", field),
					common.StatusBadRequest,
					nil,
				)
			}
			if v, ok := value.(float64); !ok || (v != 1 && v != -1) {
				return common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Giá trị sort cho trường '%s' phải là 1 (tăng dần) hoặc -1 (giảm dần), giá trị hiện tại: %v", field, value),
					common.StatusBadRequest,
					nil,
				)
			}
		}
	}

	if limit, ok := options["limit"].(float64); ok {
		if limit <= 0 {
			return common.NewError(
				common.ErrCodeValidationFormat,
				"Giá trị limit phải lớn hơn 0",
				common.StatusBadRequest,
				nil,
			)
		}
		if limit > 1000 {
			return common.NewError(
				common.ErrCodeValidationFormat,
				"Giá trị limit không được vượt quá 1000 để đảm bảo hiệu năng hệ thống",
				common.StatusBadRequest,
				nil,
			)
		}
	}

	if skip, ok := options["skip"].(float64); ok && skip < 0 {
		return common.NewError(
			common.ErrCodeValidationFormat,
			"Giá trị skip không được âm",
			common.StatusBadRequest,
			nil,
		)
	}

	return nil
}

// ====================================
// TRANSFORM DTO SANG MODEL
// ====================================

// TransformCreateInputToModel transform CreateInput (DTO) sang Model (T).
// Copy các field cùng tên từ DTO sang Model; field con trỏ trong DTO được
// dereference trước khi gán (DTO dùng con trỏ để phân biệt "không gửi" với zero value).
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformCreateInputToModel(input *CreateInput) (*T, error) {
	return transformInputToModel[T](input)
}

// TransformUpdateInputToModel transform UpdateInput (DTO) sang Model (T).
// Cùng cơ chế copy theo tên field với TransformCreateInputToModel.
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformUpdateInputToModel(input *UpdateInput) (*T, error) {
	return transformInputToModel[T](input)
}

// transformInputToModel transform DTO sang Model dùng chung cho create và update
func transformInputToModel[T any](input interface{}) (*T, error) {
	model := new(T)

	inputVal := reflect.ValueOf(input)
	if inputVal.Kind() == reflect.Ptr {
		inputVal = inputVal.Elem()
	}
	if inputVal.Kind() != reflect.Struct {
		return nil, fmt.Errorf("input phải là struct hoặc pointer đến struct")
	}

	modelVal := reflect.ValueOf(model).Elem()
	if modelVal.Kind() != reflect.Struct {
		return nil, fmt.Errorf("Model phải là struct hoặc pointer đến struct")
	}

	inputType := inputVal.Type()
	modelType := modelVal.Type()

	for i := 0; i < inputVal.NumField(); i++ {
		inputField := inputVal.Field(i)
		if !inputField.CanInterface() {
			continue
		}

		name := inputType.Field(i).Name
		if _, found := modelType.FieldByName(name); !found {
			continue
		}

		modelFieldVal := modelVal.FieldByName(name)
		if !modelFieldVal.IsValid() || !modelFieldVal.CanSet() {
			continue
		}

		// DTO update dùng con trỏ cho field tùy chọn (*int64, *bool, ...):
		// nil nghĩa là client không gửi field, bỏ qua; non-nil thì dereference
		// trước khi gán nếu Model giữ kiểu giá trị
		sourceVal := inputField
		if sourceVal.Kind() == reflect.Ptr && modelFieldVal.Kind() != reflect.Ptr {
			if sourceVal.IsNil() {
				continue
			}
			sourceVal = sourceVal.Elem()
		}

		if sourceVal.Type().AssignableTo(modelFieldVal.Type()) {
			modelFieldVal.Set(sourceVal)
		} else if sourceVal.Type().ConvertibleTo(modelFieldVal.Type()) {
			modelFieldVal.Set(sourceVal.Convert(modelFieldVal.Type()))
		}
	}

	return model, nil
}
