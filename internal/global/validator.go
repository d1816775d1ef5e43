package global

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// xssPatterns là các chuỗi bị cấm trong input text (tag no_xss)
var xssPatterns = []string{
	"<script",
	"javascript:",
	"onerror=",
	"onload=",
	"onclick=",
	"onmouseover=",
	"eval(",
	"document.cookie",
	"document.write",
	"innerHTML",
	"fromCharCode",
	"window.location",
	"<iframe",
	"<object",
	"<embed",
}

// InitValidator khởi tạo validator global và đăng ký các custom tag
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("strong_password", validateStrongPassword)
}

// validateNoXSS từ chối giá trị chứa pattern XSS phổ biến
func validateNoXSS(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	for _, pattern := range xssPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateStrongPassword yêu cầu mật khẩu tối thiểu 8 ký tự và đạt
// ít nhất 3 trong 4 nhóm: chữ hoa, chữ thường, chữ số, ký tự đặc biệt.
// Dùng cho đăng ký tài khoản local.
func validateStrongPassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) < 8 {
		return false
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, char := range value {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	groups := 0
	for _, ok := range []bool{hasUpper, hasLower, hasNumber, hasSpecial} {
		if ok {
			groups++
		}
	}
	return groups >= 3
}
