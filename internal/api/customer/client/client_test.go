// Package client - test client tiêu thụ feed billing với httptest server.
package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedEnvelope = `{
	"records": [
		{
			"id": "INV-000001",
			"customerId": "C1",
			"customerName": "Nguyễn An",
			"customerPhone": "555",
			"items": [{"description": "Hàng A", "quantity": 1, "unitPrice": 100}],
			"status": "paid",
			"orderDate": "2024-01-15"
		},
		{
			"id": "INV-000002",
			"customerId": "C1",
			"customerName": "Nguyễn An",
			"customerPhone": "555",
			"items": [{"description": "Hàng B", "quantity": 1, "unitPrice": 50}],
			"status": "pending",
			"orderDate": "2024-02-01"
		}
	]
}`

const feedBareArray = `[
	{
		"id": "INV-000003",
		"customerId": "C2",
		"customerName": "Trần Bình",
		"customerPhone": "777",
		"items": [{"description": "Hàng C", "quantity": 2, "unitPrice": 30}],
		"status": "overdue",
		"orderDate": "2024-03-01"
	}
]`

func newFeedServer(t *testing.T, status int, body string, wantAuth string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wantAuth != "" {
			assert.Equal(t, wantAuth, r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestFetchBillingRecords_EnvelopeRecords(t *testing.T) {
	server := newFeedServer(t, http.StatusOK, feedEnvelope, "Bearer token-test")
	defer server.Close()

	c := NewBillingClientWith(server.URL, "token-test", server.Client())
	records, err := c.FetchBillingRecords(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "555", records[0].CustomerPhone)
	assert.Equal(t, 100.0, records[0].OrderTotal())
	assert.Equal(t, 50.0, records[1].OrderTotal())
}

func TestFetchBillingRecords_MangTran(t *testing.T) {
	server := newFeedServer(t, http.StatusOK, feedBareArray, "")
	defer server.Close()

	c := NewBillingClientWith(server.URL, "", server.Client())
	records, err := c.FetchBillingRecords(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "777", records[0].CustomerPhone)
	assert.Equal(t, 60.0, records[0].OrderTotal())
}

func TestFetchBillingRecords_LoaiBanGhiThieuPhone(t *testing.T) {
	// Bản ghi giữa thiếu customerPhone: bị loại, hai bản ghi còn lại vẫn qua
	body := `{"records": [
		{"id": "INV-01", "customerPhone": "111", "items": [], "status": "paid", "orderDate": "2024-01-01"},
		{"id": "INV-02", "customerPhone": "  ", "customerName": "Thiếu phone", "items": [], "status": "paid", "orderDate": "2024-01-02"},
		{"id": "INV-03", "customerPhone": "333", "items": [], "status": "paid", "orderDate": "2024-01-03"}
	]}`
	server := newFeedServer(t, http.StatusOK, body, "")
	defer server.Close()

	c := NewBillingClientWith(server.URL, "", server.Client())
	records, err := c.FetchBillingRecords(context.Background())

	require.NoError(t, err, "Một bản ghi hỏng không được fail cả batch")
	require.Len(t, records, 2)
	assert.Equal(t, "INV-01", records[0].Id)
	assert.Equal(t, "INV-03", records[1].Id)
}

func TestFetchBillingRecords_StatusKhacOK(t *testing.T) {
	server := newFeedServer(t, http.StatusBadGateway, `{"error": "upstream"}`, "")
	defer server.Close()

	c := NewBillingClientWith(server.URL, "", server.Client())
	records, err := c.FetchBillingRecords(context.Background())

	require.Error(t, err)
	assert.Nil(t, records)
}

func TestFetchBillingRecords_BodyKhongPhaiJSON(t *testing.T) {
	server := newFeedServer(t, http.StatusOK, `khong phai json`, "")
	defer server.Close()

	c := NewBillingClientWith(server.URL, "", server.Client())
	_, err := c.FetchBillingRecords(context.Background())

	require.Error(t, err)
}

func TestFetchBillingRecords_RecordsRong(t *testing.T) {
	server := newFeedServer(t, http.StatusOK, `{"records": []}`, "")
	defer server.Close()

	c := NewBillingClientWith(server.URL, "", server.Client())
	records, err := c.FetchBillingRecords(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
}
