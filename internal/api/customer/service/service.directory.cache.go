package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	billmodels "sales_ledger/internal/api/billing/models"
	billsvc "sales_ledger/internal/api/billing/service"
	custclient "sales_ledger/internal/api/customer/client"
	models "sales_ledger/internal/api/customer/models"
	"sales_ledger/internal/global"
)

// directoryCacheKeyAll là key cache cho danh bạ toàn hệ thống (scope admin).
const directoryCacheKeyAll = "all"

// directoryEntry một bản cache danh bạ đã build.
type directoryEntry struct {
	directory []models.CustomerProfile
	builtAt   time.Time
}

// DirectoryService build và cache danh bạ khách hàng theo scope user.
// Cache được DirectoryRefreshWorker rebuild định kỳ; TTL lấy theo chu kỳ refresh.
//
// Nguồn dữ liệu: mặc định đọc thẳng collection invoices; khi BILLING_FEED_EXTERNAL=true
// thì build từ feed HTTP ngoài (feedClient), lúc đó feed là dữ liệu chung cho mọi scope
// vì bản ghi trên wire không mang ownerUserId.
type DirectoryService struct {
	invoiceService *billsvc.InvoiceService
	feedClient     *custclient.BillingClient
	ttl            time.Duration

	mu    sync.RWMutex
	cache map[string]*directoryEntry
}

var (
	directoryServiceInstance *DirectoryService
	directoryServiceOnce     sync.Once
)

// GetDirectoryService trả về singleton DirectoryService (handler và worker dùng chung cache).
func GetDirectoryService() (*DirectoryService, error) {
	var initErr error
	directoryServiceOnce.Do(func() {
		invoiceService, err := billsvc.NewInvoiceService()
		if err != nil {
			initErr = fmt.Errorf("failed to create invoice service: %v", err)
			return
		}
		ttlSec := global.MongoDB_ServerConfig.DirectoryRefreshSec
		if ttlSec <= 0 {
			ttlSec = 300
		}
		var feedClient *custclient.BillingClient
		if global.MongoDB_ServerConfig.BillingFeedExternal {
			feedClient = custclient.NewBillingClient()
		}
		directoryServiceInstance = &DirectoryService{
			invoiceService: invoiceService,
			feedClient:     feedClient,
			ttl:            time.Duration(ttlSec) * time.Second,
			cache:          make(map[string]*directoryEntry),
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return directoryServiceInstance, nil
}

// toCustomerRecord chiếu bản ghi billing của store sang wire model của customer engine.
func toCustomerRecord(record billmodels.BillingRecord) models.BillingRecord {
	items := make([]models.BillingLineItem, 0, len(record.Items))
	for _, item := range record.Items {
		items = append(items, models.BillingLineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}
	return models.BillingRecord{
		Id:              record.Id,
		CustomerId:      record.CustomerId,
		CustomerName:    record.CustomerName,
		CustomerPhone:   record.CustomerPhone,
		CustomerEmail:   record.CustomerEmail,
		CustomerAddress: record.CustomerAddress,
		Items:           items,
		Status:          record.Status,
		OrderDate:       record.OrderDate,
		Total:           record.Total,
	}
}

// cacheKey key cache theo scope: nil = toàn hệ thống, khác nil = theo user.
func cacheKey(ownerUserID *primitive.ObjectID) string {
	if ownerUserID == nil {
		return directoryCacheKeyAll
	}
	return ownerUserID.Hex()
}

// fetchRecords lấy bản ghi billing cho một scope: từ feed HTTP ngoài khi được cấu hình,
// mặc định từ collection invoices với filter ownership.
func (s *DirectoryService) fetchRecords(ctx context.Context, ownerUserID *primitive.ObjectID) ([]models.BillingRecord, error) {
	if s.feedClient != nil {
		return s.feedClient.FetchBillingRecords(ctx)
	}

	filter := bson.M{}
	if ownerUserID != nil {
		filter["ownerUserId"] = *ownerUserID
	}
	billingRecords, err := s.invoiceService.BillingRecords(ctx, filter)
	if err != nil {
		return nil, err
	}
	records := make([]models.BillingRecord, 0, len(billingRecords))
	for _, record := range billingRecords {
		records = append(records, toCustomerRecord(record))
	}
	return records, nil
}

// build dựng danh bạ cho scope và ghi vào cache.
func (s *DirectoryService) build(ctx context.Context, key string, ownerUserID *primitive.ObjectID) ([]models.CustomerProfile, error) {
	records, err := s.fetchRecords(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}
	directory := BuildDirectory(records)

	s.mu.Lock()
	s.cache[key] = &directoryEntry{directory: directory, builtAt: time.Now()}
	s.mu.Unlock()
	return directory, nil
}

// DirectoryFor trả về danh bạ của scope, ưu tiên cache còn hạn.
// ownerUserID nil = scope admin (toàn bộ hóa đơn).
func (s *DirectoryService) DirectoryFor(ctx context.Context, ownerUserID *primitive.ObjectID) ([]models.CustomerProfile, error) {
	key := cacheKey(ownerUserID)

	s.mu.RLock()
	entry, exists := s.cache[key]
	s.mu.RUnlock()
	if exists && time.Since(entry.builtAt) < s.ttl {
		return entry.directory, nil
	}
	return s.build(ctx, key, ownerUserID)
}

// RefreshAll rebuild lại mọi scope đang có trong cache. Worker gọi định kỳ.
// Trả về số scope đã refresh thành công và lỗi cuối cùng nếu có.
func (s *DirectoryService) RefreshAll(ctx context.Context) (int, error) {
	s.mu.RLock()
	keys := make([]string, 0, len(s.cache))
	for key := range s.cache {
		keys = append(keys, key)
	}
	s.mu.RUnlock()

	refreshed := 0
	var lastErr error
	for _, key := range keys {
		var ownerUserID *primitive.ObjectID
		if key != directoryCacheKeyAll {
			parsed, err := primitive.ObjectIDFromHex(key)
			if err != nil {
				continue
			}
			ownerUserID = &parsed
		}
		if _, err := s.build(ctx, key, ownerUserID); err != nil {
			lastErr = err
			continue
		}
		refreshed++
	}
	return refreshed, lastErr
}

// Invalidate xóa cache của một scope (gọi khi dữ liệu hóa đơn của scope thay đổi).
// Cache scope admin cũng bị xóa vì nó chứa hóa đơn của mọi user.
func (s *DirectoryService) Invalidate(ownerUserID *primitive.ObjectID) {
	s.mu.Lock()
	delete(s.cache, cacheKey(ownerUserID))
	delete(s.cache, directoryCacheKeyAll)
	s.mu.Unlock()
}

// InvalidateAll xóa toàn bộ cache (khi không xác định được scope bị ảnh hưởng).
func (s *DirectoryService) InvalidateAll() {
	s.mu.Lock()
	s.cache = make(map[string]*directoryEntry)
	s.mu.Unlock()
}
