package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "sales_ledger/internal/api/customer/models"
)

func makeProfile(id, name, phone, email string, orders ...models.CustomerOrder) models.CustomerProfile {
	p := models.CustomerProfile{
		Id:     id,
		Name:   name,
		Phone:  phone,
		Email:  email,
		Orders: orders,
	}
	p.OrdersCount = len(orders)
	for _, o := range orders {
		p.TotalSpent += o.Total
		if o.Date > p.LastOrderDate {
			p.LastOrderDate = o.Date
		}
	}
	return p
}

func TestFilterDirectory_QueryKhongPhanBietHoaThuong(t *testing.T) {
	directory := []models.CustomerProfile{
		makeProfile("C1", "Nguyễn An", "555", "an@example.com"),
		makeProfile("C2", "Trần Bình", "777", "binh@example.com"),
	}

	t.Run("Khớp name viết hoa", func(t *testing.T) {
		result := FilterDirectory(directory, "AN", "all")
		require.Len(t, result, 1)
		assert.Equal(t, "C1", result[0].Id)
	})

	t.Run("Khớp phone", func(t *testing.T) {
		result := FilterDirectory(directory, "77", "all")
		require.Len(t, result, 1)
		assert.Equal(t, "C2", result[0].Id)
	})

	t.Run("Khớp email", func(t *testing.T) {
		result := FilterDirectory(directory, "BINH@", "all")
		require.Len(t, result, 1)
		assert.Equal(t, "C2", result[0].Id)
	})

	t.Run("Không khớp gì", func(t *testing.T) {
		assert.Empty(t, FilterDirectory(directory, "zzz", "all"))
	})
}

func TestFilterDirectory_QueryToanWhitespaceTraVeTatCa(t *testing.T) {
	directory := []models.CustomerProfile{
		makeProfile("C1", "Nguyễn An", "555", "an@example.com"),
		makeProfile("C2", "Trần Bình", "777", "binh@example.com"),
	}

	// Query toàn khoảng trắng sau khi trim là rỗng: trả về toàn bộ danh bạ,
	// không được so khớp literal "   " rồi ra kết quả rỗng
	assert.Len(t, FilterDirectory(directory, "   ", "all"), 2)
	assert.Len(t, FilterDirectory(directory, "\t \n", "all"), 2)

	// Query có whitespace bao quanh vẫn khớp phần ruột
	result := FilterDirectory(directory, "  bình  ", "all")
	require.Len(t, result, 1)
	assert.Equal(t, "C2", result[0].Id)
}

func TestFilterDirectory_StatusTheoDonGanNhat(t *testing.T) {
	// Khách có đơn paid cũ và đơn pending mới: trạng thái hiệu lực là pending
	profile := makeProfile("C1", "An", "555", "an@example.com",
		models.CustomerOrder{InvoiceId: "INV-01", Date: "2024-01-15", Status: "paid", Total: 100},
		models.CustomerOrder{InvoiceId: "INV-02", Date: "2024-02-01", Status: "pending", Total: 50},
	)
	directory := []models.CustomerProfile{profile}

	assert.Len(t, FilterDirectory(directory, "", "pending"), 1, "Đơn gần nhất pending phải khớp filter pending")
	assert.Empty(t, FilterDirectory(directory, "", "paid"), "Đơn paid cũ hơn không được tính")
}

func TestFilterDirectory_SentinelAll(t *testing.T) {
	directory := []models.CustomerProfile{
		makeProfile("C1", "An", "555", "a@x.com",
			models.CustomerOrder{Date: "2024-01-01", Status: "paid", Total: 10}),
		makeProfile("C2", "Bình", "777", "b@x.com",
			models.CustomerOrder{Date: "2024-01-02", Status: "overdue", Total: 20}),
	}

	assert.Len(t, FilterDirectory(directory, "", "all"), 2, "Status 'all' phải bỏ qua lọc trạng thái")
	assert.Len(t, FilterDirectory(directory, "", ""), 2, "Status rỗng cũng bỏ qua lọc trạng thái")
}

func TestFilterDirectory_KetHopAND(t *testing.T) {
	directory := []models.CustomerProfile{
		makeProfile("C1", "An", "555", "a@x.com",
			models.CustomerOrder{Date: "2024-01-01", Status: "paid", Total: 10}),
		makeProfile("C2", "An Khang", "777", "b@x.com",
			models.CustomerOrder{Date: "2024-01-02", Status: "pending", Total: 20}),
	}

	// Query "an" khớp cả hai, status "paid" chỉ khớp C1: AND phải ra đúng C1
	result := FilterDirectory(directory, "an", "paid")
	require.Len(t, result, 1)
	assert.Equal(t, "C1", result[0].Id)
}
