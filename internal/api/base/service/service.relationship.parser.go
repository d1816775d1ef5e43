package basesvc

import (
	"fmt"
	"reflect"
	"strings"
)

// RelationshipDefinition là một ràng buộc tham chiếu khai báo qua struct tag
// `relationship` trên model. Nhiều ràng buộc cách nhau bởi '|', mỗi ràng buộc
// gồm các cặp key:value cách nhau bởi ','.
//
// Ví dụ trên model User:
//
//	_Relationships struct{} `relationship:"collection:items,field:ownerUserId,message:..."`
type RelationshipDefinition struct {
	CollectionName string
	FieldName      string
	ErrorMessage   string
	Optional       bool
	Cascade        bool
}

// ParseRelationshipTag đọc tất cả tag relationship trên struct (field đánh dấu
// _Relationships và mọi field khác mang tag).
func ParseRelationshipTag(structType reflect.Type) []RelationshipDefinition {
	var relationships []RelationshipDefinition
	for i := 0; i < structType.NumField(); i++ {
		tag := structType.Field(i).Tag.Get("relationship")
		if tag == "" {
			continue
		}
		relationships = append(relationships, parseRelationshipTagValue(tag)...)
	}
	return relationships
}

func parseRelationshipTagValue(tagValue string) []RelationshipDefinition {
	var relationships []RelationshipDefinition
	for _, part := range strings.Split(tagValue, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		rel := RelationshipDefinition{}
		for _, pair := range strings.Split(part, ",") {
			kv := strings.SplitN(strings.TrimSpace(pair), ":", 2)
			if len(kv) != 2 {
				continue
			}
			key := strings.TrimSpace(kv[0])
			value := strings.TrimSpace(kv[1])
			switch key {
			case "collection":
				rel.CollectionName = value
			case "field":
				rel.FieldName = value
			case "message", "msg":
				rel.ErrorMessage = value
			case "optional":
				rel.Optional = value == "true" || value == "1"
			case "cascade":
				rel.Cascade = value == "true" || value == "1"
			}
		}
		// collection và field là bắt buộc, message có default
		if rel.CollectionName == "" || rel.FieldName == "" {
			continue
		}
		if rel.ErrorMessage == "" {
			rel.ErrorMessage = fmt.Sprintf("Khong the xoa record vi co %%d record trong collection '%s' dang tham chieu toi.", rel.CollectionName)
		}
		relationships = append(relationships, rel)
	}
	return relationships
}
