package service

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	models "sales_ledger/internal/api/customer/models"
)

// Các cột sort hợp lệ của danh bạ.
const (
	SortFieldId            = "id"
	SortFieldName          = "name"
	SortFieldPhone         = "phone"
	SortFieldEmail         = "email"
	SortFieldOrdersCount   = "ordersCount"
	SortFieldTotalSpent    = "totalSpent"
	SortFieldLastOrderDate = "lastOrderDate"
)

// collator so chuỗi theo locale tiếng Việt (dấu, đ/d được xếp đúng thứ tự bảng chữ cái).
var collator = collate.New(language.Vietnamese)

// IsValidSortField kiểm tra field có phải cột sort hợp lệ.
func IsValidSortField(field string) bool {
	switch field {
	case SortFieldId, SortFieldName, SortFieldPhone, SortFieldEmail,
		SortFieldOrdersCount, SortFieldTotalSpent, SortFieldLastOrderDate:
		return true
	}
	return false
}

// compareProfiles so hai hồ sơ theo field: chuỗi dùng collate, số/ngày so trực tiếp.
// Trả về <0, 0, >0 theo thứ tự tăng dần.
func compareProfiles(a, b models.CustomerProfile, field string) int {
	switch field {
	case SortFieldId:
		return collator.CompareString(a.Id, b.Id)
	case SortFieldName:
		return collator.CompareString(a.Name, b.Name)
	case SortFieldPhone:
		return collator.CompareString(a.Phone, b.Phone)
	case SortFieldEmail:
		return collator.CompareString(a.Email, b.Email)
	case SortFieldOrdersCount:
		return a.OrdersCount - b.OrdersCount
	case SortFieldTotalSpent:
		switch {
		case a.TotalSpent < b.TotalSpent:
			return -1
		case a.TotalSpent > b.TotalSpent:
			return 1
		}
		return 0
	case SortFieldLastOrderDate:
		// YYYY-MM-DD: thứ tự chuỗi trùng thứ tự thời gian
		switch {
		case a.LastOrderDate < b.LastOrderDate:
			return -1
		case a.LastOrderDate > b.LastOrderDate:
			return 1
		}
		return 0
	}
	return 0
}

// SortDirectory sắp xếp danh bạ theo một cột, stable. asc=false đảo chiều.
// Field không hợp lệ thì giữ nguyên thứ tự.
func SortDirectory(directory []models.CustomerProfile, field string, asc bool) []models.CustomerProfile {
	if !IsValidSortField(field) {
		return directory
	}
	sorted := make([]models.CustomerProfile, len(directory))
	copy(sorted, directory)
	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := compareProfiles(sorted[i], sorted[j], field)
		if asc {
			return cmp < 0
		}
		return cmp > 0
	})
	return sorted
}
