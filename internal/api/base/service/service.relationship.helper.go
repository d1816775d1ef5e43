package basesvc

import (
	"context"
	"fmt"
	"sales_ledger/internal/common"
	"sales_ledger/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RelationshipCheck mo ta mot collection can kiem tra truoc khi xoa record:
// neu con document nao co FieldName tro toi record thi chan viec xoa.
type RelationshipCheck struct {
	CollectionName string
	FieldName      string
	ErrorMessage   string // format string nhan so luong record (%d), rong thi dung message mac dinh
	Optional       bool   // true: bo qua neu collection chua duoc dang ky
}

// CheckRelationshipExists chan viec xoa record khi van con document o
// collection khac tham chieu toi no. Tra ve StatusConflict kem message
// cua check dau tien tim thay tham chieu.
func CheckRelationshipExists(ctx context.Context, recordID primitive.ObjectID, checks []RelationshipCheck) error {
	for _, check := range checks {
		if err := runRelationshipCheck(ctx, recordID, check); err != nil {
			return err
		}
	}
	return nil
}

// runRelationshipCheck dem document tham chieu cua mot check
func runRelationshipCheck(ctx context.Context, recordID primitive.ObjectID, check RelationshipCheck) error {
	collection, exists := global.RegistryCollections.Get(check.CollectionName)
	if !exists {
		if check.Optional {
			return nil
		}
		return common.NewError(
			common.ErrCodeInternalServer,
			fmt.Sprintf("Khong tim thay collection '%s' de kiem tra quan he", check.CollectionName),
			common.StatusInternalServerError,
			nil,
		)
	}

	count, err := collection.CountDocuments(ctx, bson.M{check.FieldName: recordID})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if count == 0 {
		return nil
	}

	message := check.ErrorMessage
	if message == "" {
		message = fmt.Sprintf("Khong the xoa record vi co %d record trong collection '%s' dang tham chieu toi record nay", count, check.CollectionName)
	} else {
		message = fmt.Sprintf(check.ErrorMessage, count)
	}
	return common.NewError(common.ErrCodeBusinessOperation, message, common.StatusConflict, nil)
}
