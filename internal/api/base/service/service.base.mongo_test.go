package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToUpdateData_MapThuong_WrapTrongSet(t *testing.T) {
	update, err := ToUpdateData(map[string]interface{}{
		"name":     "Áo khoác",
		"quantity": int64(3),
	})
	require.NoError(t, err)
	require.NotNil(t, update.Set)
	assert.Equal(t, "Áo khoác", update.Set["name"])
	assert.Nil(t, update.Unset)
}

func TestToUpdateData_CoSanOperator(t *testing.T) {
	update, err := ToUpdateData(map[string]interface{}{
		"$set":   map[string]interface{}{"name": "Mới"},
		"$unset": map[string]interface{}{"email": 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "Mới", update.Set["name"])
	require.NotNil(t, update.Unset)
	assert.Contains(t, update.Unset, "email")
}

func TestToUpdateData_DaLaUpdateData(t *testing.T) {
	original := &UpdateData{Set: map[string]interface{}{"a": 1}}
	update, err := ToUpdateData(original)
	require.NoError(t, err)
	assert.Same(t, original, update)
}

type banGhiCoID struct {
	ID   primitive.ObjectID `bson:"_id"`
	Name string             `bson:"name"`
}

type banGhiKhongID struct {
	Name string `bson:"name"`
}

func TestGetIDFromModel_CoObjectID(t *testing.T) {
	oid := primitive.NewObjectID()
	got, ok := getIDFromModel(banGhiCoID{ID: oid, Name: "x"})
	require.True(t, ok)
	assert.Equal(t, oid, got)

	// Cũng hoạt động với pointer đến struct
	got, ok = getIDFromModel(&banGhiCoID{ID: oid})
	require.True(t, ok)
	assert.Equal(t, oid, got)
}

func TestGetIDFromModel_KhongCoFieldID(t *testing.T) {
	_, ok := getIDFromModel(banGhiKhongID{Name: "x"})
	assert.False(t, ok)

	_, ok = getIDFromModel("khong phai struct")
	assert.False(t, ok)
}
