package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "sales_ledger/internal/api/customer/models"
)

func TestSortDirectory_TheoTenTangDan(t *testing.T) {
	directory := []models.CustomerProfile{
		{Id: "C1", Name: "Châu"},
		{Id: "C2", Name: "An"},
		{Id: "C3", Name: "Bình"},
	}

	sorted := SortDirectory(directory, SortFieldName, true)

	require.Len(t, sorted, 3)
	assert.Equal(t, "An", sorted[0].Name)
	assert.Equal(t, "Bình", sorted[1].Name)
	assert.Equal(t, "Châu", sorted[2].Name)
	// Slice gốc không bị sort tại chỗ
	assert.Equal(t, "Châu", directory[0].Name)
}

func TestSortDirectory_TheoTongChiTieuGiamDan(t *testing.T) {
	directory := []models.CustomerProfile{
		{Id: "C1", TotalSpent: 50},
		{Id: "C2", TotalSpent: 150},
		{Id: "C3", TotalSpent: 100},
	}

	sorted := SortDirectory(directory, SortFieldTotalSpent, false)

	assert.Equal(t, []string{"C2", "C3", "C1"}, []string{sorted[0].Id, sorted[1].Id, sorted[2].Id})
}

func TestSortDirectory_TheoSoDonHang(t *testing.T) {
	directory := []models.CustomerProfile{
		{Id: "C1", OrdersCount: 3},
		{Id: "C2", OrdersCount: 1},
	}

	sorted := SortDirectory(directory, SortFieldOrdersCount, true)

	assert.Equal(t, "C2", sorted[0].Id)
	assert.Equal(t, "C1", sorted[1].Id)
}

func TestSortDirectory_TheoNgayDonCuoi(t *testing.T) {
	// YYYY-MM-DD: so chuỗi trùng so thời gian
	directory := []models.CustomerProfile{
		{Id: "C1", LastOrderDate: "2024-02-01"},
		{Id: "C2", LastOrderDate: "2023-12-31"},
		{Id: "C3", LastOrderDate: "2024-01-15"},
	}

	sorted := SortDirectory(directory, SortFieldLastOrderDate, false)

	assert.Equal(t, "C1", sorted[0].Id)
	assert.Equal(t, "C3", sorted[1].Id)
	assert.Equal(t, "C2", sorted[2].Id)
}

func TestSortDirectory_StableKhiGiaTriBangNhau(t *testing.T) {
	directory := []models.CustomerProfile{
		{Id: "C1", TotalSpent: 100},
		{Id: "C2", TotalSpent: 100},
		{Id: "C3", TotalSpent: 100},
	}

	sorted := SortDirectory(directory, SortFieldTotalSpent, true)

	// Bằng nhau: giữ nguyên thứ tự ban đầu
	assert.Equal(t, []string{"C1", "C2", "C3"}, []string{sorted[0].Id, sorted[1].Id, sorted[2].Id})
}

func TestSortDirectory_FieldKhongHopLeGiuNguyen(t *testing.T) {
	directory := []models.CustomerProfile{
		{Id: "C2"},
		{Id: "C1"},
	}

	sorted := SortDirectory(directory, "khongTonTai", true)

	assert.Equal(t, "C2", sorted[0].Id)
	assert.Equal(t, "C1", sorted[1].Id)
}

func TestIsValidSortField(t *testing.T) {
	for _, field := range []string{
		SortFieldId, SortFieldName, SortFieldPhone, SortFieldEmail,
		SortFieldOrdersCount, SortFieldTotalSpent, SortFieldLastOrderDate,
	} {
		assert.True(t, IsValidSortField(field), "Field %s phải hợp lệ", field)
	}
	assert.False(t, IsValidSortField(""))
	assert.False(t, IsValidSortField("status"))
}
