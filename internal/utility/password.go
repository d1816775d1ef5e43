package utility

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/argon2"
)

// Tham số argon2id dùng chung cho toàn hệ thống.
// Thay đổi các giá trị này sẽ làm hash cũ không so sánh được, chỉ đổi khi có migration.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16
)

// GenerateSalt sinh salt ngẫu nhiên cho việc hash mật khẩu.
func GenerateSalt() (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	return base64.RawStdEncoding.EncodeToString(salt), nil
}

// HashPassword hash mật khẩu với argon2id và salt cho trước.
//
// Parameters:
//   - password: Mật khẩu gốc
//   - salt: Salt đã sinh bằng GenerateSalt
//
// Returns:
//   - string: Hash dạng base64
func HashPassword(password string, salt string) string {
	saltBytes, err := base64.RawStdEncoding.DecodeString(salt)
	if err != nil {
		saltBytes = []byte(salt)
	}
	hash := argon2.IDKey([]byte(password), saltBytes, argonTime, argonMemory, argonThreads, argonKeyLen)
	return base64.RawStdEncoding.EncodeToString(hash)
}

// ComparePassword so sánh mật khẩu gốc với hash đã lưu (constant time).
func ComparePassword(password string, salt string, storedHash string) bool {
	computed := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
