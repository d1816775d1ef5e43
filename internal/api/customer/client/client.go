// Package client - HTTP client tiêu thụ feed billing (GET /billing) cho customer engine.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	models "sales_ledger/internal/api/customer/models"
	"sales_ledger/internal/common"
	"sales_ledger/internal/global"
	"sales_ledger/internal/logger"
)

// BillingClient gọi feed billing với bearer token và chuẩn hóa response về []BillingRecord.
type BillingClient struct {
	httpClient *http.Client
	feedURL    string
	token      string
}

// NewBillingClient tạo client từ config (BILLING_FEED_URL, BILLING_FEED_TOKEN).
func NewBillingClient() *BillingClient {
	return NewBillingClientWith(
		global.MongoDB_ServerConfig.BillingFeedURL,
		global.MongoDB_ServerConfig.BillingFeedToken,
		&http.Client{Timeout: 30 * time.Second},
	)
}

// NewBillingClientWith tạo client với URL, token và http.Client tùy ý (dùng cho test).
func NewBillingClientWith(feedURL, token string, httpClient *http.Client) *BillingClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &BillingClient{
		httpClient: httpClient,
		feedURL:    feedURL,
		token:      token,
	}
}

// recordsEnvelope hình dạng chuẩn của feed: object bọc records.
type recordsEnvelope struct {
	Records []models.BillingRecord `json:"records"`
}

// decodeRecords chấp nhận cả hai hình dạng wire: {records:[...]} (chuẩn) và mảng trần [...]
// (chỉ chấp nhận khi ingest, contract chuẩn vẫn là object bọc records).
func decodeRecords(body []byte) ([]models.BillingRecord, error) {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var records []models.BillingRecord
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, fmt.Errorf("parse mảng billing records: %w", err)
		}
		return records, nil
	}
	var envelope recordsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("parse envelope billing records: %w", err)
	}
	return envelope.Records, nil
}

// validateRecords loại bản ghi thiếu customerPhone: log warning và xử lý tiếp,
// không bao giờ fail cả batch vì một bản ghi hỏng.
func validateRecords(records []models.BillingRecord) []models.BillingRecord {
	valid := make([]models.BillingRecord, 0, len(records))
	for _, record := range records {
		if strings.TrimSpace(record.CustomerPhone) == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"record_id": record.Id,
				"customer":  record.CustomerName,
			}).Warn("⚠️ [BILLING FEED] Bản ghi thiếu customerPhone, bỏ qua")
			continue
		}
		valid = append(valid, record)
	}
	return valid
}

// FetchBillingRecords gọi feed billing và trả về danh sách bản ghi hợp lệ.
func (c *BillingClient) FetchBillingRecords(ctx context.Context) ([]models.BillingRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("tạo request billing feed: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gọi billing feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, common.NewError(common.ErrCodeBillingFeed,
			fmt.Sprintf("Billing feed trả về status %d", resp.StatusCode), common.StatusInternalServerError, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("đọc response billing feed: %w", err)
	}

	records, err := decodeRecords(body)
	if err != nil {
		return nil, err
	}
	return validateRecords(records), nil
}
