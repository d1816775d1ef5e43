package service

import (
	"fmt"
	"strings"

	models "sales_ledger/internal/api/customer/models"
	"sales_ledger/internal/common"
)

// CommandType các lệnh thao tác lên view danh bạ.
type CommandType string

const (
	CommandSearch     CommandType = "search"
	CommandFilter     CommandType = "filter"
	CommandSort       CommandType = "sort"
	CommandPageNext   CommandType = "pageNext"
	CommandPagePrev   CommandType = "pagePrev"
	CommandExport     CommandType = "export"
	CommandViewDetail CommandType = "viewDetail"
)

// Command một lệnh với tham số kèm theo (tùy loại lệnh dùng field nào).
type Command struct {
	Type   CommandType `json:"type" validate:"required,oneof=search filter sort pageNext pagePrev export viewDetail"`
	Query  string      `json:"query,omitempty"`  // cho search
	Status string      `json:"status,omitempty"` // cho filter
	Field  string      `json:"field,omitempty"`  // cho sort
	ID     string      `json:"id,omitempty"`     // cho viewDetail
}

// ViewState toàn bộ trạng thái view danh bạ — không có state mutable mức package,
// mỗi phiên thao tác giữ một ViewState riêng.
type ViewState struct {
	Directory    []models.CustomerProfile `json:"-"` // danh bạ đầy đủ
	View         []models.CustomerProfile `json:"-"` // view sau filter + sort
	Query        string                   `json:"query"`
	StatusFilter string                   `json:"statusFilter"`
	SortField    string                   `json:"sortField"`
	SortAsc      bool                     `json:"sortAsc"`
	PageNum      int                      `json:"page"`

	// Kết quả phụ của lệnh vừa apply (export / viewDetail)
	ExportData string                  `json:"-"`
	Detail     *models.CustomerProfile `json:"-"`
}

// NewViewState tạo view mới trên danh bạ: chưa lọc, chưa sort, trang 1.
func NewViewState(directory []models.CustomerProfile) *ViewState {
	return &ViewState{
		Directory:    directory,
		View:         directory,
		StatusFilter: StatusFilterAll,
		PageNum:      1,
	}
}

// RestoreViewState dựng lại ViewState từ tham số client gửi lên (flow HTTP stateless:
// client giữ state, gửi kèm mỗi lệnh).
func RestoreViewState(directory []models.CustomerProfile, query, status, field string, asc bool, page int) *ViewState {
	s := NewViewState(directory)
	s.Query = strings.TrimSpace(query)
	if status != "" {
		s.StatusFilter = status
	}
	if IsValidSortField(field) {
		s.SortField = field
		s.SortAsc = asc
	}
	if page >= 1 {
		s.PageNum = page
	}
	s.rebuildView()
	return s
}

// rebuildView dựng lại view từ danh bạ đầy đủ theo query/status/sort hiện tại.
func (s *ViewState) rebuildView() {
	view := FilterDirectory(s.Directory, s.Query, s.StatusFilter)
	if s.SortField != "" {
		view = SortDirectory(view, s.SortField, s.SortAsc)
	}
	s.View = view
}

// Apply thực thi một lệnh lên view. Đổi search/filter/sort luôn reset trang về 1.
func (s *ViewState) Apply(cmd Command) error {
	s.ExportData = ""
	s.Detail = nil

	switch cmd.Type {
	case CommandSearch:
		// Query toàn whitespace coi như rỗng: reset về danh bạ đầy đủ
		s.Query = strings.TrimSpace(cmd.Query)
		s.PageNum = 1
		s.rebuildView()

	case CommandFilter:
		s.StatusFilter = cmd.Status
		if s.StatusFilter == "" {
			s.StatusFilter = StatusFilterAll
		}
		s.PageNum = 1
		s.rebuildView()

	case CommandSort:
		if !IsValidSortField(cmd.Field) {
			return common.NewError(common.ErrCodeValidationInput,
				fmt.Sprintf("Cột sort không hợp lệ: %s", cmd.Field), common.StatusBadRequest, nil)
		}
		if s.SortField == cmd.Field {
			// Chọn lại cột đang active: đảo chiều
			s.SortAsc = !s.SortAsc
		} else {
			// Cột mới: bắt đầu tăng dần
			s.SortField = cmd.Field
			s.SortAsc = true
		}
		s.PageNum = 1
		s.rebuildView()

	case CommandPageNext:
		if s.PageNum < PageCount(len(s.View)) {
			s.PageNum++
		}

	case CommandPagePrev:
		if s.PageNum > 1 {
			s.PageNum--
		}

	case CommandExport:
		// Export luôn trên danh bạ đầy đủ, bỏ qua filter đang active
		s.ExportData = ExportCSV(s.Directory)

	case CommandViewDetail:
		detail, err := Detail(s.Directory, cmd.ID)
		if err != nil {
			return err
		}
		s.Detail = detail

	default:
		return common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Lệnh không hợp lệ: %s", cmd.Type), common.StatusBadRequest, nil)
	}
	return nil
}

// CurrentPage trả về trang hiện tại của view.
func (s *ViewState) CurrentPage() []models.CustomerProfile {
	return Page(s.View, s.PageNum)
}
