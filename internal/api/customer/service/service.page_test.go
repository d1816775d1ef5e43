package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "sales_ledger/internal/api/customer/models"
	"sales_ledger/internal/common"
)

// makeDirectory tạo danh bạ n khách với id C001..Cnnn.
func makeDirectory(n int) []models.CustomerProfile {
	directory := make([]models.CustomerProfile, 0, n)
	for i := 1; i <= n; i++ {
		directory = append(directory, models.CustomerProfile{Id: fmt.Sprintf("C%03d", i)})
	}
	return directory
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 1, PageCount(0), "Danh bạ rỗng vẫn có 1 trang để render empty-state")
	assert.Equal(t, 1, PageCount(1))
	assert.Equal(t, 1, PageCount(10))
	assert.Equal(t, 2, PageCount(11))
	assert.Equal(t, 3, PageCount(25))
}

func TestPage_PhanHoachKhongTrungKhongSot(t *testing.T) {
	// 25 khách → 3 trang (10, 10, 5); mọi khách xuất hiện đúng một lần
	directory := makeDirectory(25)

	seen := make(map[string]int)
	total := 0
	for page := 1; page <= PageCount(len(directory)); page++ {
		items := Page(directory, page)
		total += len(items)
		for _, p := range items {
			seen[p.Id]++
		}
	}

	assert.Equal(t, 25, total)
	assert.Len(t, seen, 25)
	for id, count := range seen {
		assert.Equal(t, 1, count, "Khách %s xuất hiện %d lần", id, count)
	}
}

func TestPage_TrangCuoiNganHon(t *testing.T) {
	directory := makeDirectory(25)

	assert.Len(t, Page(directory, 1), 10)
	assert.Len(t, Page(directory, 2), 10)
	assert.Len(t, Page(directory, 3), 5)
}

func TestPage_NgoaiKhoangTraVeRong(t *testing.T) {
	directory := makeDirectory(5)

	assert.Empty(t, Page(directory, 0))
	assert.Empty(t, Page(directory, 2))
	assert.Empty(t, Page(directory, -1))
	assert.Empty(t, Page(nil, 1))
}

func TestDetail_TimThayVaSortDonGiamDan(t *testing.T) {
	directory := []models.CustomerProfile{
		{
			Id: "C1",
			Orders: []models.CustomerOrder{
				{InvoiceId: "INV-01", Date: "2024-01-15", Status: "paid", Total: 100},
				{InvoiceId: "INV-03", Date: "2024-03-01", Status: "pending", Total: 30},
				{InvoiceId: "INV-02", Date: "2024-02-01", Status: "paid", Total: 50},
			},
		},
	}

	detail, err := Detail(directory, "C1")

	require.NoError(t, err)
	require.NotNil(t, detail)
	require.Len(t, detail.Orders, 3)
	assert.Equal(t, "INV-03", detail.Orders[0].InvoiceId)
	assert.Equal(t, "INV-02", detail.Orders[1].InvoiceId)
	assert.Equal(t, "INV-01", detail.Orders[2].InvoiceId)
	// Danh bạ gốc không bị sort lây
	assert.Equal(t, "INV-01", directory[0].Orders[0].InvoiceId)
}

func TestDetail_KhongTimThay(t *testing.T) {
	directory := makeDirectory(3)

	detail, err := Detail(directory, "C999")

	require.Error(t, err)
	assert.Nil(t, detail)
	var appErr *common.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.StatusNotFound, appErr.StatusCode)
}
