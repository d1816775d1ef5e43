package service

import (
	"fmt"
	"strings"

	models "sales_ledger/internal/api/customer/models"
	"sales_ledger/internal/logger"
)

// ExportHeader dòng tiêu đề CSV của file export danh bạ.
const ExportHeader = "Customer ID,Name,Phone,Email,Orders,Total Spent,Last Order"

// quoteField bọc giá trị trong dấu nháy kép, nháy kép bên trong nhân đôi (O"Brien -> "O""Brien").
func quoteField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// ExportCSV xuất toàn bộ danh bạ (không qua filter) ra CSV.
// Name và Email luôn được quote; totalSpent 2 chữ số thập phân, không ký hiệu tiền tệ.
// Danh bạ rỗng: log warning và trả về chuỗi rỗng, không tạo file.
func ExportCSV(directory []models.CustomerProfile) string {
	if len(directory) == 0 {
		logger.GetAppLogger().Warn("ExportCSV: Danh bạ rỗng, bỏ qua export")
		return ""
	}

	var b strings.Builder
	b.WriteString(ExportHeader)
	b.WriteString("\n")
	for _, profile := range directory {
		b.WriteString(fmt.Sprintf("%s,%s,%s,%s,%d,%.2f,%s\n",
			profile.Id,
			quoteField(profile.Name),
			profile.Phone,
			quoteField(profile.Email),
			profile.OrdersCount,
			profile.TotalSpent,
			profile.LastOrderDate,
		))
	}
	return b.String()
}
