// Package events là event bus nội bộ cho thay đổi dữ liệu qua CRUD.
// BaseServiceMongoImpl phát event sau mỗi thao tác ghi thành công;
// logic phản ứng (refresh danh bạ khách hàng, cache invalidation, ...)
// đăng ký qua OnDataChanged lúc init.
package events

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loại thao tác CRUD trong DataChangeEvent.Operation.
const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpUpsert = "upsert"
	OpDelete = "delete"
)

// DataChangeEvent mô tả một thay đổi dữ liệu.
// Document là bản ghi sau khi thay đổi; với delete là bản ghi trước khi xóa.
type DataChangeEvent struct {
	CollectionName string
	Operation      string
	Document       interface{}
}

// DataChangeHandler xử lý sự kiện thay đổi dữ liệu.
type DataChangeHandler func(ctx context.Context, e DataChangeEvent)

var (
	handlersMu sync.RWMutex
	handlers   []DataChangeHandler
)

// OnDataChanged đăng ký handler nhận mọi event thay đổi dữ liệu
func OnDataChanged(h DataChangeHandler) {
	handlersMu.Lock()
	handlers = append(handlers, h)
	handlersMu.Unlock()
}

// EmitDataChanged phát event tới mọi handler đã đăng ký.
// Mỗi handler chạy trong goroutine riêng; panic của một handler
// không ảnh hưởng handler khác và không làm sập request.
func EmitDataChanged(ctx context.Context, e DataChangeEvent) {
	handlersMu.RLock()
	list := make([]DataChangeHandler, len(handlers))
	copy(list, handlers)
	handlersMu.RUnlock()

	for _, h := range list {
		go func(fn DataChangeHandler) {
			defer func() {
				// Nuốt panic: logger có thể chưa init khi event chạy sớm
				recover()
			}()
			fn(ctx, e)
		}(h)
	}
}

// structValue trả về reflect.Value struct của doc (dereference con trỏ),
// false nếu doc không phải struct
func structValue(doc interface{}) (reflect.Value, bool) {
	if doc == nil {
		return reflect.Value{}, false
	}
	val := reflect.ValueOf(doc)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return reflect.Value{}, false
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	return val, true
}

// GetOwnerUserIDFromDocument đọc field OwnerUserID từ document của event.
// Trả về zero ObjectID khi document không có field hoặc field nil.
func GetOwnerUserIDFromDocument(doc interface{}) primitive.ObjectID {
	val, ok := structValue(doc)
	if !ok {
		return primitive.NilObjectID
	}

	f := val.FieldByName("OwnerUserID")
	if !f.IsValid() {
		return primitive.NilObjectID
	}

	switch f.Kind() {
	case reflect.Array, reflect.Struct:
		// primitive.ObjectID là [12]byte
		if obj, ok := f.Interface().(primitive.ObjectID); ok {
			return obj
		}
	case reflect.Ptr:
		if f.IsNil() {
			return primitive.NilObjectID
		}
		if ptr, ok := f.Interface().(*primitive.ObjectID); ok && ptr != nil {
			return *ptr
		}
		if obj, ok := f.Elem().Interface().(primitive.ObjectID); ok {
			return obj
		}
	}
	return primitive.NilObjectID
}
