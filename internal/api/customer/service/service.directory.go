// Package service - customer engine: gom nhóm bản ghi billing thành danh bạ khách hàng,
// thống kê, lọc, sắp xếp, phân trang và xuất CSV.
package service

import (
	"sort"

	models "sales_ledger/internal/api/customer/models"
)

// fieldOrDefault trả về "N/A" khi giá trị rỗng.
func fieldOrDefault(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

// BuildDirectory gom nhóm bản ghi billing theo customerPhone thành danh bạ khách hàng.
// Hàm thuần: cùng input luôn cho cùng output, không đụng state ngoài.
//
// Quy tắc:
//   - id hồ sơ = customerPhone (khóa gom nhóm, không phải surrogate key).
//   - Bản ghi ĐẦU TIÊN của mỗi số điện thoại quyết định các trường định danh còn lại
//     (customerId, name, email, address); email/address rỗng mặc định "N/A".
//   - Mỗi bản ghi đóng góp một đơn hàng; total đơn = Σ (quantity × unitPrice) từng dòng.
//   - totalSpent = Σ total các đơn; lastOrderDate = ngày đơn lớn nhất.
//   - Kết quả sắp xếp lastOrderDate giảm dần; bằng nhau giữ thứ tự gặp đầu tiên (stable).
func BuildDirectory(records []models.BillingRecord) []models.CustomerProfile {
	profileByPhone := make(map[string]*models.CustomerProfile)
	order := make([]string, 0)

	for _, record := range records {
		phone := record.CustomerPhone
		profile, exists := profileByPhone[phone]
		if !exists {
			profile = &models.CustomerProfile{
				Id:         phone,
				CustomerId: record.CustomerId,
				Name:       record.CustomerName,
				Phone:      phone,
				Email:      fieldOrDefault(record.CustomerEmail),
				Address:    fieldOrDefault(record.CustomerAddress),
			}
			profileByPhone[phone] = profile
			order = append(order, phone)
		}

		orderTotal := record.OrderTotal()
		profile.Orders = append(profile.Orders, models.CustomerOrder{
			InvoiceId: record.Id,
			Date:      record.OrderDate,
			Status:    record.Status,
			Total:     orderTotal,
		})
		profile.OrdersCount++
		profile.TotalSpent += orderTotal
		if record.OrderDate > profile.LastOrderDate {
			profile.LastOrderDate = record.OrderDate
		}
	}

	directory := make([]models.CustomerProfile, 0, len(order))
	for _, phone := range order {
		directory = append(directory, *profileByPhone[phone])
	}

	// Sort lastOrderDate giảm dần, stable để giữ thứ tự gặp đầu tiên khi bằng nhau.
	sort.SliceStable(directory, func(i, j int) bool {
		return directory[i].LastOrderDate > directory[j].LastOrderDate
	})
	return directory
}

// Summarize tính số liệu tổng hợp của danh bạ. avgOrderValue = 0 khi chưa có đơn nào.
func Summarize(directory []models.CustomerProfile) models.DirectoryStats {
	stats := models.DirectoryStats{
		TotalCustomers: len(directory),
	}
	for _, profile := range directory {
		stats.TotalOrders += profile.OrdersCount
		stats.TotalRevenue += profile.TotalSpent
	}
	if stats.TotalOrders > 0 {
		stats.AvgOrderValue = stats.TotalRevenue / float64(stats.TotalOrders)
	}
	return stats
}
