package service

import (
	"sort"

	models "sales_ledger/internal/api/customer/models"
	"sales_ledger/internal/common"
)

// PageSize số khách hàng trên một trang danh bạ.
const PageSize = 10

// PageCount số trang của view hiện tại (tối thiểu 1 để luôn render được empty-state).
func PageCount(viewLen int) int {
	if viewLen == 0 {
		return 1
	}
	return (viewLen + PageSize - 1) / PageSize
}

// Page cắt trang thứ page (đánh số từ 1) từ view đã lọc/sort.
// Trang ngoài khoảng trả về slice rỗng (render empty-state).
func Page(view []models.CustomerProfile, page int) []models.CustomerProfile {
	if page < 1 {
		return []models.CustomerProfile{}
	}
	start := (page - 1) * PageSize
	if start >= len(view) {
		return []models.CustomerProfile{}
	}
	end := start + PageSize
	if end > len(view) {
		end = len(view)
	}
	return view[start:end]
}

// Detail tìm khách hàng theo id trong danh bạ ĐẦY ĐỦ (không qua filter).
// Đơn hàng trong kết quả được sort ngày giảm dần.
func Detail(directory []models.CustomerProfile, id string) (*models.CustomerProfile, error) {
	for _, profile := range directory {
		if profile.Id == id {
			detail := profile
			detail.Orders = make([]models.CustomerOrder, len(profile.Orders))
			copy(detail.Orders, profile.Orders)
			sort.SliceStable(detail.Orders, func(i, j int) bool {
				return detail.Orders[i].Date > detail.Orders[j].Date
			})
			return &detail, nil
		}
	}
	return nil, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy khách hàng", common.StatusNotFound, nil)
}
