// Package dto - input cho các API customer engine.
package dto

import (
	custsvc "sales_ledger/internal/api/customer/service"
)

// ViewInput trạng thái view hiện tại của client + lệnh cần thực thi.
// Flow stateless: client giữ state và gửi kèm trong mỗi lệnh POST /customers/view.
type ViewInput struct {
	Query        string          `json:"query,omitempty" validate:"omitempty,no_xss" maxLength:"200"`
	StatusFilter string          `json:"statusFilter,omitempty" validate:"omitempty,oneof=all paid pending overdue cancelled"`
	SortField    string          `json:"sortField,omitempty" validate:"omitempty,oneof=id name phone email ordersCount totalSpent lastOrderDate"`
	SortAsc      bool            `json:"sortAsc,omitempty"`
	Page         int             `json:"page,omitempty" validate:"omitempty,min=1"`
	Command      custsvc.Command `json:"command" validate:"required"`
}
