// Package service - test gom nhóm bản ghi billing thành danh bạ khách hàng.
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "sales_ledger/internal/api/customer/models"
)

// makeRecord tạo bản ghi billing một dòng hàng cho test.
func makeRecord(id, phone, name, date, status string, quantity, unitPrice float64) models.BillingRecord {
	return models.BillingRecord{
		Id:            id,
		CustomerId:    "CUST-" + id,
		CustomerName:  name,
		CustomerPhone: phone,
		OrderDate:     date,
		Status:        status,
		Items: []models.BillingLineItem{
			{Description: "Hàng test", Quantity: quantity, UnitPrice: unitPrice},
		},
	}
}

func TestBuildDirectory_GomNhomTheoPhone(t *testing.T) {
	// Hai bản ghi cùng số "555": một đơn 100 (2024-01-15, paid), một đơn 50 (2024-02-01, pending)
	records := []models.BillingRecord{
		makeRecord("INV-000001", "555", "Nguyễn Văn A", "2024-01-15", "paid", 1, 100),
		makeRecord("INV-000002", "555", "Nguyễn Văn B", "2024-02-01", "pending", 1, 50),
	}

	directory := BuildDirectory(records)

	require.Len(t, directory, 1, "Hai bản ghi cùng phone phải gom thành một hồ sơ")
	profile := directory[0]
	assert.Equal(t, "555", profile.Phone)
	assert.Len(t, profile.Orders, 2)
	assert.Equal(t, 2, profile.OrdersCount)
	assert.Equal(t, 150.0, profile.TotalSpent)
	assert.Equal(t, "2024-02-01", profile.LastOrderDate)
	// Id hồ sơ = phone, không phải surrogate key
	assert.Equal(t, "555", profile.Id)
	// Định danh còn lại lấy từ bản ghi ĐẦU TIÊN, không bị bản ghi sau ghi đè
	assert.Equal(t, "Nguyễn Văn A", profile.Name)
	assert.Equal(t, "CUST-INV-000001", profile.CustomerId)
}

func TestBuildDirectory_CustomerIdRongVanCoIdDuyNhat(t *testing.T) {
	// customerId trên wire là optional: rỗng hoặc trùng nhau không được làm hỏng id hồ sơ
	recordA := makeRecord("INV-01", "111", "Khách A", "2024-01-01", "paid", 1, 10)
	recordA.CustomerId = ""
	recordB := makeRecord("INV-02", "222", "Khách B", "2024-02-01", "paid", 1, 20)
	recordB.CustomerId = ""

	directory := BuildDirectory([]models.BillingRecord{recordA, recordB})

	require.Len(t, directory, 2)
	assert.Equal(t, "222", directory[0].Id)
	assert.Equal(t, "111", directory[1].Id)

	// Detail phải phân giải đúng hồ sơ theo id = phone
	profile, err := Detail(directory, "111")
	require.NoError(t, err)
	assert.Equal(t, "Khách A", profile.Name)

	// Id rỗng không còn tồn tại trong danh bạ nên phải trả về not found
	_, err = Detail(directory, "")
	assert.Error(t, err)
}

func TestBuildDirectory_EmailAddressRongThanhNA(t *testing.T) {
	records := []models.BillingRecord{
		makeRecord("INV-000001", "111", "Trần Thị C", "2024-03-01", "paid", 2, 25),
	}

	directory := BuildDirectory(records)

	require.Len(t, directory, 1)
	assert.Equal(t, "N/A", directory[0].Email, "Email rỗng phải hiển thị N/A")
	assert.Equal(t, "N/A", directory[0].Address, "Address rỗng phải hiển thị N/A")
}

func TestBuildDirectory_TotalTinhLaiTuDongHang(t *testing.T) {
	// Total trên wire sai (999) nhưng dòng hàng là 3 × 40 = 120: phải tin dòng hàng
	record := makeRecord("INV-000003", "222", "Lê D", "2024-04-01", "paid", 3, 40)
	record.Total = 999

	directory := BuildDirectory([]models.BillingRecord{record})

	require.Len(t, directory, 1)
	assert.Equal(t, 120.0, directory[0].TotalSpent)
	assert.Equal(t, 120.0, directory[0].Orders[0].Total)
}

func TestBuildDirectory_SapXepLastOrderDateGiamDan(t *testing.T) {
	records := []models.BillingRecord{
		makeRecord("INV-01", "100", "Khách cũ", "2024-01-01", "paid", 1, 10),
		makeRecord("INV-02", "200", "Khách mới", "2024-06-01", "paid", 1, 10),
		makeRecord("INV-03", "300", "Khách giữa", "2024-03-01", "paid", 1, 10),
	}

	directory := BuildDirectory(records)

	require.Len(t, directory, 3)
	assert.Equal(t, "200", directory[0].Phone)
	assert.Equal(t, "300", directory[1].Phone)
	assert.Equal(t, "100", directory[2].Phone)
}

func TestBuildDirectory_CungNgayGiuThuTuGapDauTien(t *testing.T) {
	// Hai khách cùng lastOrderDate: stable sort giữ thứ tự xuất hiện trong input
	records := []models.BillingRecord{
		makeRecord("INV-01", "100", "Khách trước", "2024-05-01", "paid", 1, 10),
		makeRecord("INV-02", "200", "Khách sau", "2024-05-01", "paid", 1, 10),
	}

	directory := BuildDirectory(records)

	require.Len(t, directory, 2)
	assert.Equal(t, "100", directory[0].Phone)
	assert.Equal(t, "200", directory[1].Phone)
}

func TestBuildDirectory_Idempotent(t *testing.T) {
	records := []models.BillingRecord{
		makeRecord("INV-01", "555", "A", "2024-01-15", "paid", 1, 100),
		makeRecord("INV-02", "555", "B", "2024-02-01", "pending", 1, 50),
		makeRecord("INV-03", "777", "C", "2024-03-01", "overdue", 2, 30),
	}

	first := BuildDirectory(records)
	second := BuildDirectory(records)

	assert.Equal(t, first, second, "Cùng input phải cho cùng output")
}

func TestBuildDirectory_InputRong(t *testing.T) {
	assert.Empty(t, BuildDirectory(nil))
	assert.Empty(t, BuildDirectory([]models.BillingRecord{}))
}

func TestSummarize_BaoToanTongChiTieu(t *testing.T) {
	records := []models.BillingRecord{
		makeRecord("INV-01", "555", "A", "2024-01-15", "paid", 1, 100),
		makeRecord("INV-02", "555", "A", "2024-02-01", "pending", 1, 50),
		makeRecord("INV-03", "777", "C", "2024-03-01", "paid", 2, 30),
	}
	directory := BuildDirectory(records)

	stats := Summarize(directory)

	assert.Equal(t, 2, stats.TotalCustomers)
	assert.Equal(t, 3, stats.TotalOrders)
	// Σ totalSpent của các hồ sơ = Σ total của mọi bản ghi input
	assert.Equal(t, 210.0, stats.TotalRevenue)
	assert.Equal(t, 70.0, stats.AvgOrderValue)
}

func TestSummarize_DanhBaRongKhongChiaChoKhong(t *testing.T) {
	stats := Summarize(nil)

	assert.Equal(t, 0, stats.TotalCustomers)
	assert.Equal(t, 0, stats.TotalOrders)
	assert.Equal(t, 0.0, stats.TotalRevenue)
	assert.Equal(t, 0.0, stats.AvgOrderValue, "avgOrderValue phải là 0 khi không có đơn nào")
}
