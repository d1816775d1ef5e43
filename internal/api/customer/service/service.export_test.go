package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "sales_ledger/internal/api/customer/models"
)

func TestExportCSV_DongTieuDe(t *testing.T) {
	directory := []models.CustomerProfile{
		{Id: "C1", Name: "An", Phone: "555", Email: "an@x.com", OrdersCount: 1, TotalSpent: 100, LastOrderDate: "2024-01-15"},
	}

	csv := ExportCSV(directory)

	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Customer ID,Name,Phone,Email,Orders,Total Spent,Last Order", lines[0])
}

func TestExportCSV_NameEmailLuonQuote(t *testing.T) {
	directory := []models.CustomerProfile{
		{Id: "C1", Name: "An", Phone: "555", Email: "an@x.com", OrdersCount: 2, TotalSpent: 150, LastOrderDate: "2024-02-01"},
	}

	csv := ExportCSV(directory)

	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	assert.Equal(t, `C1,"An",555,"an@x.com",2,150.00,2024-02-01`, lines[1])
}

func TestExportCSV_NhanDoiNhayKepTrongTen(t *testing.T) {
	directory := []models.CustomerProfile{
		{Id: "C1", Name: `O"Brien`, Phone: "555", Email: "ob@x.com", OrdersCount: 1, TotalSpent: 10, LastOrderDate: "2024-01-01"},
	}

	csv := ExportCSV(directory)

	assert.Contains(t, csv, `"O""Brien"`, `Nháy kép trong tên phải nhân đôi: O"Brien -> "O""Brien"`)
}

func TestExportCSV_TotalSpentHaiChuSoThapPhan(t *testing.T) {
	directory := []models.CustomerProfile{
		{Id: "C1", Name: "An", Phone: "555", Email: "a@x.com", OrdersCount: 1, TotalSpent: 99.5, LastOrderDate: "2024-01-01"},
		{Id: "C2", Name: "Bình", Phone: "777", Email: "b@x.com", OrdersCount: 1, TotalSpent: 1234.567, LastOrderDate: "2024-01-02"},
	}

	csv := ExportCSV(directory)

	assert.Contains(t, csv, ",99.50,")
	assert.Contains(t, csv, ",1234.57,", "Làm tròn 2 chữ số thập phân, không ký hiệu tiền tệ")
}

func TestExportCSV_DanhBaRongTraVeChuoiRong(t *testing.T) {
	assert.Equal(t, "", ExportCSV(nil))
	assert.Equal(t, "", ExportCSV([]models.CustomerProfile{}))
}
