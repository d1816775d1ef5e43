// Package common chứa hệ thống mã lỗi, thông báo và chuyển đổi lỗi dùng chung cho toàn bộ API.
package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP status code dùng trong response
const (
	StatusOK        = 200
	StatusNoContent = 204

	StatusBadRequest   = 400
	StatusUnauthorized = 401
	StatusForbidden    = 403
	StatusNotFound     = 404
	StatusConflict     = 409

	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
)

// Thông báo chung trong response
const (
	MsgSuccess         = "Thao tác thành công"
	MsgValidationError = "Dữ liệu không hợp lệ"
	MsgDatabaseError   = "Lỗi tương tác với cơ sở dữ liệu"
)

// ErrorCode định danh một loại lỗi: mã (AUTH_001), phân loại và mô tả
type ErrorCode struct {
	Code        string
	Category    string
	SubCategory string
	Description string
}

func newCode(code, category, subCategory, description string) ErrorCode {
	return ErrorCode{Code: code, Category: category, SubCategory: subCategory, Description: description}
}

// Bảng mã lỗi phân cấp theo nhóm: SYS, AUTH, VAL, DB, BIZ
var (
	ErrCodeInternalServer = newCode("SYS_001", "System", "Internal", "Lỗi hệ thống nội bộ")

	ErrCodeAuth            = newCode("AUTH", "Authentication", "General", "Lỗi xác thực chung")
	ErrCodeAuthToken       = newCode("AUTH_001", "Authentication", "Token", "Lỗi liên quan đến token")
	ErrCodeAuthCredentials = newCode("AUTH_002", "Authentication", "Credentials", "Lỗi thông tin đăng nhập")
	ErrCodeAuthRole        = newCode("AUTH_003", "Authentication", "Role", "Lỗi liên quan đến vai trò người dùng")

	ErrCodeValidation       = newCode("VAL", "Validation", "General", "Lỗi xác thực dữ liệu chung")
	ErrCodeValidationInput  = newCode("VAL_001", "Validation", "Input", "Lỗi dữ liệu đầu vào")
	ErrCodeValidationFormat = newCode("VAL_002", "Validation", "Format", "Lỗi định dạng dữ liệu")

	ErrCodeDatabase           = newCode("DB", "Database", "General", "Lỗi cơ sở dữ liệu chung")
	ErrCodeDatabaseConnection = newCode("DB_001", "Database", "Connection", "Lỗi kết nối cơ sở dữ liệu")
	ErrCodeDatabaseQuery      = newCode("DB_002", "Database", "Query", "Lỗi truy vấn dữ liệu")

	ErrCodeBusinessOperation = newCode("BIZ_002", "Business", "Operation", "Lỗi thao tác nghiệp vụ")
	ErrCodeBillingFeed       = newCode("BIZ_003", "Business", "BillingFeed", "Lỗi nguồn dữ liệu hóa đơn")
)

// Error là lỗi có mã, message và HTTP status đi kèm
type Error struct {
	Code       ErrorCode
	Message    string
	StatusCode int
	Details    any // thông tin chi tiết thêm, trả về trong response
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	return e.Message
}

// Is hỗ trợ errors.Is: hai *Error bằng nhau khi cùng mã và message
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	// Wrapped error khác loại, so sánh qua message
	return target.Error() == e.Message
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Các lỗi sentinel dùng xuyên suốt service layer
var (
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Thông tin đăng nhập không chính xác", StatusUnauthorized, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, "Token không hợp lệ", StatusUnauthorized, nil)
	ErrTokenMissing       = NewError(ErrCodeAuthToken, "Thiếu token xác thực", StatusUnauthorized, nil)
	ErrEmailTaken         = NewError(ErrCodeAuthCredentials, "Email đã được đăng ký", StatusConflict, nil)

	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Định dạng dữ liệu không hợp lệ", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Thiếu thông tin bắt buộc", StatusBadRequest, nil)

	ErrNotFound   = NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, nil)
	ErrDuplicate  = NewError(ErrCodeDatabaseQuery, "Dữ liệu đã tồn tại", StatusConflict, nil)
	ErrConnection = NewError(ErrCodeDatabaseConnection, "Lỗi kết nối cơ sở dữ liệu", StatusServiceUnavailable, nil)
)

// isNotFoundError nhận diện lỗi not-found dù đã bị wrap hay chỉ trùng message
func isNotFoundError(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	if customErr, ok := err.(*Error); ok {
		return customErr.Code.Code == ErrCodeDatabaseQuery.Code && customErr.Message == ErrNotFound.Error()
	}
	return err.Error() == ErrNotFound.Error()
}

// ConvertMongoError chuyển lỗi từ MongoDB driver sang lỗi hệ thống có mã
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	if isNotFoundError(err) {
		if _, ok := err.(*Error); ok {
			return err
		}
		return ErrNotFound
	}

	// Phân loại CommandError theo dải mã lệnh của MongoDB
	var mongoErr mongo.CommandError
	if errors.As(err, &mongoErr) {
		switch {
		case mongoErr.Code >= 100 && mongoErr.Code < 200:
			return ErrConnection
		case mongoErr.Code >= 200 && mongoErr.Code < 300:
			return NewError(ErrCodeAuth, "Lỗi xác thực MongoDB", StatusUnauthorized, err)
		case mongoErr.Code >= 300 && mongoErr.Code < 400:
			return NewError(ErrCodeDatabaseQuery, "Lỗi truy vấn MongoDB", StatusInternalServerError, err)
		case mongoErr.Code >= 400 && mongoErr.Code < 500:
			return NewError(ErrCodeDatabaseQuery, "Lỗi ghi dữ liệu MongoDB", StatusInternalServerError, err)
		case mongoErr.Code >= 500:
			return NewError(ErrCodeDatabase, "Lỗi hệ thống MongoDB", StatusInternalServerError, err)
		}
	}

	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if mongo.IsNetworkError(err) {
		return ErrConnection
	}
	if mongo.IsTimeout(err) {
		return NewError(ErrCodeDatabaseConnection, "Kết nối MongoDB bị timeout", StatusServiceUnavailable, nil)
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
