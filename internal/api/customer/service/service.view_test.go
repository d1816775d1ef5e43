package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "sales_ledger/internal/api/customer/models"
)

// viewFixture dựng danh bạ 25 khách từ bản ghi billing thật (qua BuildDirectory).
func viewFixture(t *testing.T) []models.CustomerProfile {
	t.Helper()
	records := make([]models.BillingRecord, 0, 25)
	for i := 1; i <= 25; i++ {
		status := "paid"
		if i%2 == 0 {
			status = "pending"
		}
		records = append(records, makeRecord(
			// Ngày tăng theo i để thứ tự mặc định (lastOrderDate desc) xác định
			idOf(i), phoneOf(i), nameOf(i), dateOf(i), status, float64(i), 10,
		))
	}
	directory := BuildDirectory(records)
	require.Len(t, directory, 25)
	return directory
}

func idOf(i int) string      { return "INV-" + dateOf(i) }
func phoneOf(i int) string   { return "09000000" + string(rune('a'+i)) }
func nameOf(i int) string    { return "Khách " + dateOf(i) }
func dateOf(i int) string    { return "2024-01-" + twoDigits(i) }
func twoDigits(i int) string { return string(rune('0'+i/10)) + string(rune('0'+i%10)) }

func TestNewViewState_MacDinh(t *testing.T) {
	directory := viewFixture(t)
	s := NewViewState(directory)

	assert.Equal(t, StatusFilterAll, s.StatusFilter)
	assert.Equal(t, 1, s.PageNum)
	assert.Empty(t, s.Query)
	assert.Len(t, s.View, 25)
	assert.Len(t, s.CurrentPage(), PageSize)
}

func TestApply_SortCungCotDaoChieu(t *testing.T) {
	s := NewViewState(viewFixture(t))

	// Cột mới: bắt đầu tăng dần
	require.NoError(t, s.Apply(Command{Type: CommandSort, Field: SortFieldName}))
	assert.Equal(t, SortFieldName, s.SortField)
	assert.True(t, s.SortAsc)

	// Chọn lại cùng cột: đảo chiều
	require.NoError(t, s.Apply(Command{Type: CommandSort, Field: SortFieldName}))
	assert.True(t, !s.SortAsc)

	// Đảo thêm lần nữa: về tăng dần
	require.NoError(t, s.Apply(Command{Type: CommandSort, Field: SortFieldName}))
	assert.True(t, s.SortAsc)

	// Chuyển sang cột khác: reset về tăng dần dù cột cũ đang giảm dần
	require.NoError(t, s.Apply(Command{Type: CommandSort, Field: SortFieldName}))
	require.NoError(t, s.Apply(Command{Type: CommandSort, Field: SortFieldTotalSpent}))
	assert.Equal(t, SortFieldTotalSpent, s.SortField)
	assert.True(t, s.SortAsc)
}

func TestApply_SortFieldKhongHopLe(t *testing.T) {
	s := NewViewState(viewFixture(t))

	err := s.Apply(Command{Type: CommandSort, Field: "khongTonTai"})

	require.Error(t, err)
	assert.Empty(t, s.SortField, "Sort lỗi không được đổi state")
}

func TestApply_SearchFilterSortResetTrang(t *testing.T) {
	s := NewViewState(viewFixture(t))
	require.NoError(t, s.Apply(Command{Type: CommandPageNext}))
	require.Equal(t, 2, s.PageNum)

	t.Run("Search reset trang", func(t *testing.T) {
		require.NoError(t, s.Apply(Command{Type: CommandSearch, Query: "Khách"}))
		assert.Equal(t, 1, s.PageNum)
	})

	t.Run("Filter reset trang", func(t *testing.T) {
		require.NoError(t, s.Apply(Command{Type: CommandPageNext}))
		require.NoError(t, s.Apply(Command{Type: CommandFilter, Status: "pending"}))
		assert.Equal(t, 1, s.PageNum)
	})

	t.Run("Sort reset trang", func(t *testing.T) {
		require.NoError(t, s.Apply(Command{Type: CommandFilter, Status: StatusFilterAll}))
		require.NoError(t, s.Apply(Command{Type: CommandPageNext}))
		require.NoError(t, s.Apply(Command{Type: CommandSort, Field: SortFieldName}))
		assert.Equal(t, 1, s.PageNum)
	})
}

func TestApply_SearchToanWhitespaceResetVeDanhBaDayDu(t *testing.T) {
	s := NewViewState(viewFixture(t))

	// Thu hẹp view trước để chắc chắn search sau đó thực sự reset
	require.NoError(t, s.Apply(Command{Type: CommandSearch, Query: "Khách 2024-01-05"}))
	require.Len(t, s.View, 1)

	// Query toàn khoảng trắng: sau trim là rỗng, view phải về toàn bộ danh bạ
	require.NoError(t, s.Apply(Command{Type: CommandSearch, Query: "   "}))
	assert.Empty(t, s.Query, "Query lưu trong state phải là chuỗi đã trim")
	assert.Len(t, s.View, 25)

	// RestoreViewState cũng phải trim query từ client
	restored := RestoreViewState(viewFixture(t), " \t ", "", "", false, 1)
	assert.Empty(t, restored.Query)
	assert.Len(t, restored.View, 25)
}

func TestApply_PhanTrangBiChan(t *testing.T) {
	s := NewViewState(viewFixture(t)) // 25 khách → 3 trang

	// pagePrev ở trang 1: đứng yên
	require.NoError(t, s.Apply(Command{Type: CommandPagePrev}))
	assert.Equal(t, 1, s.PageNum)

	// pageNext qua 2, 3 rồi bị chặn ở trang cuối
	require.NoError(t, s.Apply(Command{Type: CommandPageNext}))
	require.NoError(t, s.Apply(Command{Type: CommandPageNext}))
	assert.Equal(t, 3, s.PageNum)
	require.NoError(t, s.Apply(Command{Type: CommandPageNext}))
	assert.Equal(t, 3, s.PageNum)
	assert.Len(t, s.CurrentPage(), 5, "Trang cuối chỉ có 5 khách")
}

func TestApply_FilterThuHepViewVaPhanTrang(t *testing.T) {
	s := NewViewState(viewFixture(t))

	// 12 khách pending (i chẵn) → 2 trang
	require.NoError(t, s.Apply(Command{Type: CommandFilter, Status: "pending"}))
	assert.Len(t, s.View, 12)
	assert.Equal(t, 2, PageCount(len(s.View)))
	for _, p := range s.View {
		assert.Equal(t, "pending", p.LatestOrderStatus())
	}
}

func TestApply_ExportTrenDanhBaDayDu(t *testing.T) {
	s := NewViewState(viewFixture(t))

	// Filter đang thu hẹp view nhưng export vẫn phải ra toàn bộ danh bạ
	require.NoError(t, s.Apply(Command{Type: CommandFilter, Status: "pending"}))
	require.NoError(t, s.Apply(Command{Type: CommandExport}))

	require.NotEmpty(t, s.ExportData)
	lines := 0
	for _, c := range s.ExportData {
		if c == '\n' {
			lines++
		}
	}
	assert.Equal(t, 26, lines, "Header + 25 khách, bỏ qua filter đang active")
}

func TestApply_ViewDetail(t *testing.T) {
	directory := viewFixture(t)
	s := NewViewState(directory)

	require.NoError(t, s.Apply(Command{Type: CommandViewDetail, ID: directory[0].Id}))
	require.NotNil(t, s.Detail)
	assert.Equal(t, directory[0].Id, s.Detail.Id)

	// Lệnh tiếp theo phải xóa kết quả phụ của lệnh trước
	require.NoError(t, s.Apply(Command{Type: CommandPageNext}))
	assert.Nil(t, s.Detail)

	err := s.Apply(Command{Type: CommandViewDetail, ID: "khong-ton-tai"})
	require.Error(t, err)
}

func TestRestoreViewState(t *testing.T) {
	directory := viewFixture(t)

	s := RestoreViewState(directory, "Khách", "pending", SortFieldTotalSpent, false, 2)

	assert.Equal(t, "Khách", s.Query)
	assert.Equal(t, "pending", s.StatusFilter)
	assert.Equal(t, SortFieldTotalSpent, s.SortField)
	assert.True(t, !s.SortAsc)
	assert.Equal(t, 2, s.PageNum)
	assert.Len(t, s.View, 12)

	t.Run("Field sort không hợp lệ bị bỏ qua", func(t *testing.T) {
		s := RestoreViewState(directory, "", "", "bogus", false, 0)
		assert.Empty(t, s.SortField)
		assert.Equal(t, 1, s.PageNum)
		assert.Equal(t, StatusFilterAll, s.StatusFilter)
	})
}
