// package basesvc cung cấp lớp service chung cho mọi collection MongoDB
package basesvc

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "sales_ledger/internal/api/base/models"
	"sales_ledger/internal/api/events"
	"sales_ledger/internal/common"
	"sales_ledger/internal/utility"
)

// UpdateData gom các operator MongoDB dùng cho partial update.
// Service nhận map/struct thường sẽ được wrap vào Set qua ToUpdateData.
type UpdateData struct {
	Set         map[string]interface{} `bson:"$set,omitempty"`
	SetOnInsert map[string]interface{} `bson:"$setOnInsert,omitempty"` // chỉ áp dụng khi upsert tạo document mới
	Unset       map[string]interface{} `bson:"$unset,omitempty"`
	Push        map[string]interface{} `bson:"$push,omitempty"`
	AddToSet    map[string]interface{} `bson:"$addToSet,omitempty"`
}

// ToUpdateData chuẩn hóa data bất kỳ thành *UpdateData:
//   - *UpdateData / UpdateData: dùng trực tiếp
//   - []byte: unmarshal BSON raw
//   - map/struct đã chứa operator ($set...): tách từng operator
//   - map/struct thường: wrap toàn bộ vào $set
func ToUpdateData(data interface{}) (*UpdateData, error) {
	switch v := data.(type) {
	case *UpdateData:
		return v, nil
	case UpdateData:
		return &v, nil
	case []byte:
		update := &UpdateData{}
		if err := bson.Unmarshal(bson.Raw(v), update); err != nil {
			return nil, err
		}
		return update, nil
	}

	dataMap, err := utility.ToMap(data)
	if err != nil {
		return nil, err
	}

	if _, hasSet := dataMap["$set"]; hasSet {
		return updateDataFromOperatorMap(dataMap), nil
	}

	return &UpdateData{Set: dataMap}, nil
}

// updateDataFromOperatorMap tách các operator đã có sẵn trong map
func updateDataFromOperatorMap(dataMap map[string]interface{}) *UpdateData {
	update := &UpdateData{}
	pick := func(key string) map[string]interface{} {
		if m, ok := dataMap[key].(map[string]interface{}); ok {
			return m
		}
		return nil
	}
	update.Set = pick("$set")
	update.Unset = pick("$unset")
	update.SetOnInsert = pick("$setOnInsert")
	update.Push = pick("$push")
	update.AddToSet = pick("$addToSet")
	return update
}

// ====================================
// INTERFACE VÀ STRUCT
// ====================================

// BaseServiceMongo định nghĩa interface các phương thức CRUD mà base handler cần.
// Domain service (ví dụ InvoiceService) embed BaseServiceMongoImpl và override
// từng phương thức; handler gọi qua interface nên bản override luôn được chạy.
type BaseServiceMongo[Model any] interface {
	InsertOne(ctx context.Context, data Model) (Model, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]Model, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (Model, error)
	FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[Model], error)
	UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (Model, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
}

// BaseServiceMongoImpl là bản triển khai mặc định của BaseServiceMongo
// trên một collection cụ thể.
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection
}

// NewBaseServiceMongo tạo service CRUD cho collection truyền vào
func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{collection: collection}
}

// ====================================
// NHÓM 1: CÁC HÀM CHUẨN MONGODB DRIVER
// ====================================

// stripEmptyStrings xóa các field có giá trị chuỗi rỗng khỏi document.
// Sparse unique index chỉ bỏ qua field null/vắng mặt, không bỏ qua empty
// string, nên giữ empty string sẽ gây duplicate key khi có nhiều document.
func stripEmptyStrings(doc map[string]interface{}) {
	for key, value := range doc {
		if str, ok := value.(string); ok && str == "" {
			delete(doc, key)
		}
	}
}

// InsertOne tạo mới một bản ghi, tự gắn createdAt/updatedAt,
// và trả về document đã được ghi vào database.
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	doc, err := utility.ToMap(data)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}

	stripEmptyStrings(doc)

	now := time.Now().UnixMilli()
	doc["createdAt"] = now
	doc["updatedAt"] = now

	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	// Đọc lại để lấy bản ghi đúng như database đang lưu
	var created T
	if err := s.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		return zero, common.ConvertMongoError(err)
	}

	events.EmitDataChanged(ctx, events.DataChangeEvent{
		CollectionName: s.collection.Name(),
		Operation:      events.OpInsert,
		Document:       created,
	})
	return created, nil
}

// FindOne tìm một document theo điều kiện lọc
func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var zero T
	var result T

	if filter == nil {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.FindOne()
	}

	found := s.collection.FindOne(ctx, filter, opts)
	if err := found.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}

	if err := found.Decode(&result); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		// Decode hỏng là do dữ liệu/model lệch schema, không phải lỗi
		// MongoDB command, nên trả mã lỗi format thay vì mã database
		return zero, common.NewError(
			common.ErrCodeValidationFormat,
			"Lỗi định dạng dữ liệu khi decode từ MongoDB",
			common.StatusBadRequest,
			err,
		)
	}

	return result, nil
}

// Find tìm tất cả bản ghi theo điều kiện lọc, luôn trả về slice khác nil
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	// Driver không nhận map rỗng làm filter "match all", quy về bson.D{}
	if filter == nil {
		filter = bson.D{}
	} else if m, ok := filter.(map[string]interface{}); ok && len(m) == 0 {
		filter = bson.D{}
	}

	if opts == nil {
		opts = options.Find()
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return results, nil
}

// CountDocuments đếm số lượng document theo filter
func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}

	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// ====================================
// NHÓM 2: CÁC HÀM TIỆN ÍCH MỞ RỘNG
// ====================================

// FindOneById tìm một document theo ObjectId
func (s *BaseServiceMongoImpl[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	var result T
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&result); err != nil {
		var zero T
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}
	return result, nil
}

// FindWithPagination trả về một trang dữ liệu kèm tổng số bản ghi và tổng số trang.
// page < 1 quy về 1, limit <= 0 quy về 10.
func (s *BaseServiceMongoImpl[T]) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error) {
	if filter == nil {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.Find()
	}

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	opts.SetSkip((page - 1) * limit)
	opts.SetLimit(limit)

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	// Làm tròn lên, 0 bản ghi thì 0 trang
	var totalPage int64
	if total > 0 {
		totalPage = (total + limit - 1) / limit
	}

	return &basemodels.PaginateResult[T]{
		Items:     items,
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Total:     total,
		TotalPage: totalPage,
	}, nil
}

// UpdateById cập nhật một document theo ObjectId và trả về bản ghi sau cập nhật.
// data nhận UpdateData, map hoặc struct — xem ToUpdateData.
func (s *BaseServiceMongoImpl[T]) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (T, error) {
	var zero T
	filter := bson.M{"_id": id}

	updateData, err := ToUpdateData(data)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}

	if updateData.Set == nil {
		updateData.Set = make(map[string]interface{})
	}
	updateData.Set["updatedAt"] = time.Now().UnixMilli()

	result, err := s.collection.UpdateOne(ctx, filter, updateData, options.Update().SetUpsert(false))
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	// MatchedCount thay vì ModifiedCount: update không đổi giá trị vẫn là thành công
	if result.MatchedCount == 0 {
		return zero, common.ErrNotFound
	}

	var updated T
	if err := s.collection.FindOne(ctx, filter).Decode(&updated); err != nil {
		return zero, common.ConvertMongoError(err)
	}

	events.EmitDataChanged(ctx, events.DataChangeEvent{
		CollectionName: s.collection.Name(),
		Operation:      events.OpUpdate,
		Document:       updated,
	})
	return updated, nil
}

// DeleteById xóa một document theo ObjectId.
// Từ chối xóa khi còn document ở collection khác tham chiếu tới nó
// (theo struct tag `relationship` trên model).
func (s *BaseServiceMongoImpl[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	// Đọc trước để kiểm tra quan hệ và có document cho event sau khi xóa
	var existing T
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&existing); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return common.ErrNotFound
		}
		return common.ConvertMongoError(err)
	}

	if err := validateRelationshipsDelete(ctx, existing); err != nil {
		return err
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}

	events.EmitDataChanged(ctx, events.DataChangeEvent{
		CollectionName: s.collection.Name(),
		Operation:      events.OpDelete,
		Document:       existing,
	})
	return nil
}

// Upsert update document match filter, insert nếu chưa có.
func (s *BaseServiceMongoImpl[T]) Upsert(ctx context.Context, filter interface{}, data interface{}) (T, error) {
	var zero T

	updateData, err := ToUpdateData(data)
	if err != nil {
		logrus.WithError(err).Error("Upsert: Lỗi chuyển đổi data thành UpdateData")
		return zero, common.ErrInvalidFormat
	}

	// updatedAt mỗi lần ghi, createdAt chỉ khi upsert tạo document mới
	now := time.Now().UnixMilli()
	if updateData.Set == nil {
		updateData.Set = make(map[string]interface{})
	}
	updateData.Set["updatedAt"] = now
	if updateData.SetOnInsert == nil {
		updateData.SetOnInsert = make(map[string]interface{})
	}
	if _, inSet := updateData.Set["createdAt"]; !inSet {
		updateData.SetOnInsert["createdAt"] = now
	}

	s.unsetEmptySparseFields(updateData)

	// Sort theo _id để nhiều document match filter vẫn update nhất quán
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	var upserted T
	if err := s.collection.FindOneAndUpdate(ctx, filter, updateData, opts).Decode(&upserted); err != nil {
		logrus.WithFields(logrus.Fields{
			"collection": s.collection.Name(),
			"filter":     filter,
			"error":      err.Error(),
		}).Error("Upsert: Lỗi khi thực hiện FindOneAndUpdate")
		return zero, common.ConvertMongoError(err)
	}

	events.EmitDataChanged(ctx, events.DataChangeEvent{
		CollectionName: s.collection.Name(),
		Operation:      events.OpUpsert,
		Document:       upserted,
	})
	return upserted, nil
}

// unsetEmptySparseFields chuyển các field có sparse unique index (email/phone)
// từ empty string hoặc vắng mặt trong $set sang $unset, để document tạo mới
// qua upsert không mang field rỗng gây duplicate key.
func (s *BaseServiceMongoImpl[T]) unsetEmptySparseFields(updateData *UpdateData) {
	if updateData.Unset == nil {
		updateData.Unset = make(map[string]interface{})
	}
	for _, field := range []string{"email", "phone"} {
		value, exists := updateData.Set[field]
		if !exists {
			updateData.Unset[field] = ""
			continue
		}
		if str, ok := value.(string); ok && str == "" {
			delete(updateData.Set, field)
			updateData.Unset[field] = ""
		}
	}
}

// getIDFromModel lấy field ID kiểu ObjectID từ model bằng reflection
func getIDFromModel(data interface{}) (primitive.ObjectID, bool) {
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return primitive.NilObjectID, false
	}

	field := v.FieldByName("ID")
	if !field.IsValid() || !field.CanInterface() {
		return primitive.NilObjectID, false
	}

	id, ok := field.Interface().(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, false
	}
	return id, true
}

// validateRelationshipsDelete đọc struct tag `relationship` của model và chặn
// xóa khi còn document ở collection khác tham chiếu tới record này
func validateRelationshipsDelete(ctx context.Context, data interface{}) error {
	modelType := reflect.TypeOf(data)
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}

	relationships := ParseRelationshipTag(modelType)
	if len(relationships) == 0 {
		return nil
	}

	recordID, ok := getIDFromModel(data)
	if !ok {
		// Model không có ID thì không kiểm tra được, bỏ qua
		return nil
	}

	checks := make([]RelationshipCheck, 0, len(relationships))
	for _, rel := range relationships {
		// Quan hệ cascade không chặn xóa
		if rel.Cascade {
			continue
		}
		checks = append(checks, RelationshipCheck{
			CollectionName: rel.CollectionName,
			FieldName:      rel.FieldName,
			ErrorMessage:   rel.ErrorMessage,
			Optional:       rel.Optional,
		})
	}

	if len(checks) == 0 {
		return nil
	}
	return CheckRelationshipExists(ctx, recordID, checks)
}
