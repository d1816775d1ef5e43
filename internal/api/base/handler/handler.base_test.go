package basehdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Struct giả lập Model và DTO để test transformInputToModel
type hangHoaModel struct {
	Name      string
	Quantity  int64
	UnitPrice float64
	IsRead    bool
	Note      *string
}

type hangHoaCreateInput struct {
	Name      string
	Quantity  int64
	UnitPrice float64
}

type hangHoaChangeInput struct {
	Name      string
	Quantity  *int64
	UnitPrice *float64
	IsRead    *bool
	Extra     string // không có field tương ứng trong Model
}

func TestTransformInputToModel_CopyFieldCungTen(t *testing.T) {
	input := &hangHoaCreateInput{
		Name:      "Áo thun",
		Quantity:  10,
		UnitPrice: 150000,
	}

	model, err := transformInputToModel[hangHoaModel](input)
	require.NoError(t, err)
	assert.Equal(t, "Áo thun", model.Name)
	assert.Equal(t, int64(10), model.Quantity)
	assert.Equal(t, float64(150000), model.UnitPrice)
}

func TestTransformInputToModel_DereferenceConTro(t *testing.T) {
	quantity := int64(7)
	unitPrice := 99000.0
	isRead := true
	input := &hangHoaChangeInput{
		Quantity:  &quantity,
		UnitPrice: &unitPrice,
		IsRead:    &isRead,
	}

	model, err := transformInputToModel[hangHoaModel](input)
	require.NoError(t, err)

	// Field con trỏ trong DTO phải được dereference và gán vào field giá trị của Model
	assert.Equal(t, int64(7), model.Quantity)
	assert.Equal(t, 99000.0, model.UnitPrice)
	assert.True(t, model.IsRead)
}

func TestTransformInputToModel_ConTroNil_BoQua(t *testing.T) {
	input := &hangHoaChangeInput{
		Name: "Chỉ đổi tên",
	}

	model, err := transformInputToModel[hangHoaModel](input)
	require.NoError(t, err)

	// Con trỏ nil nghĩa là client không gửi field → giữ nguyên zero value
	assert.Equal(t, "Chỉ đổi tên", model.Name)
	assert.Equal(t, int64(0), model.Quantity)
	assert.Equal(t, float64(0), model.UnitPrice)
	assert.False(t, model.IsRead)
}

func TestTransformInputToModel_FieldThuaTrongDTO_BoQua(t *testing.T) {
	input := &hangHoaChangeInput{
		Name:  "Có field thừa",
		Extra: "model không có field này",
	}

	model, err := transformInputToModel[hangHoaModel](input)
	require.NoError(t, err)
	assert.Equal(t, "Có field thừa", model.Name)
}

func TestTransformInputToModel_InputKhongPhaiStruct(t *testing.T) {
	_, err := transformInputToModel[hangHoaModel]("khong phai struct")
	require.Error(t, err)
}
