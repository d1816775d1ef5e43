package basesvc

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chuSoHuu struct {
	_Relationships struct{} `relationship:"collection:items,field:ownerUserId,message:Còn %d vật phẩm tham chiếu.|collection:invoices,field:ownerUserId"`
	Name           string
}

func TestParseRelationshipTag_NhieuRangBuoc(t *testing.T) {
	rels := ParseRelationshipTag(reflect.TypeOf(chuSoHuu{}))
	require.Len(t, rels, 2)

	assert.Equal(t, "items", rels[0].CollectionName)
	assert.Equal(t, "ownerUserId", rels[0].FieldName)
	assert.Equal(t, "Còn %d vật phẩm tham chiếu.", rels[0].ErrorMessage)

	// Thiếu message thì dùng message mặc định
	assert.Equal(t, "invoices", rels[1].CollectionName)
	assert.Contains(t, rels[1].ErrorMessage, "invoices")
}

func TestParseRelationshipTag_BoQuaRangBuocThieuField(t *testing.T) {
	type thieuField struct {
		_Relationships struct{} `relationship:"collection:items"`
	}
	rels := ParseRelationshipTag(reflect.TypeOf(thieuField{}))
	assert.Empty(t, rels)
}

func TestParseRelationshipTag_KhongCoTag(t *testing.T) {
	type khongTag struct{ Name string }
	rels := ParseRelationshipTag(reflect.TypeOf(khongTag{}))
	assert.Empty(t, rels)
}
