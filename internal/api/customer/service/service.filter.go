package service

import (
	"strings"

	models "sales_ledger/internal/api/customer/models"
)

// StatusFilterAll là sentinel bỏ qua lọc trạng thái.
const StatusFilterAll = "all"

// matchesQuery kiểm tra query (không phân biệt hoa thường) là chuỗi con của name, phone hoặc email.
// Query toàn whitespace coi như rỗng: trả về toàn bộ danh bạ, không phải kết quả rỗng.
func matchesQuery(profile models.CustomerProfile, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(profile.Name), q) ||
		strings.Contains(strings.ToLower(profile.Phone), q) ||
		strings.Contains(strings.ToLower(profile.Email), q)
}

// matchesStatus so trạng thái của ĐƠN GẦN NHẤT với status; "all" hoặc rỗng thì luôn đúng.
func matchesStatus(profile models.CustomerProfile, status string) bool {
	if status == "" || status == StatusFilterAll {
		return true
	}
	return profile.LatestOrderStatus() == status
}

// FilterDirectory lọc danh bạ theo query tìm kiếm và trạng thái đơn gần nhất.
// Hai điều kiện kết hợp AND; query rỗng bỏ qua tìm kiếm, status "all" bỏ qua lọc trạng thái.
func FilterDirectory(directory []models.CustomerProfile, query string, status string) []models.CustomerProfile {
	filtered := make([]models.CustomerProfile, 0, len(directory))
	for _, profile := range directory {
		if matchesQuery(profile, query) && matchesStatus(profile, status) {
			filtered = append(filtered, profile)
		}
	}
	return filtered
}
