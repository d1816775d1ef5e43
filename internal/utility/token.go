package utility

import (
	"github.com/dgrijalva/jwt-go"

	"sales_ledger/internal/common"
)

// jwtClaims chứa data được mã hóa trong JWT token.
// Cấu trúc này phải khớp với models.JwtToken (tránh import cycle utility -> models).
type jwtClaims struct {
	UserID       string `json:"userId"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.StandardClaims
}

// CreateToken tạo JWT token từ thông tin người dùng.
//
// Parameters:
//   - secret: JWT secret của server
//   - userID: ID của người dùng (hex)
//   - timeHex: Thời điểm tạo token (hex của unix time)
//   - randomNumber: Số ngẫu nhiên để token mỗi lần đăng nhập là duy nhất
//
// Returns:
//   - map[string]string: Map chứa key "token" với giá trị JWT token
//   - error: Lỗi nếu có
func CreateToken(secret string, userID string, timeHex string, randomNumber string) (map[string]string, error) {
	claims := jwtClaims{
		UserID:       userID,
		Time:         timeHex,
		RandomNumber: randomNumber,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuthToken, "Không tạo được token", common.StatusInternalServerError, err)
	}

	return map[string]string{"token": signed}, nil
}

// ParseToken giải mã JWT token và trả về userID bên trong.
func ParseToken(secret string, tokenString string) (string, error) {
	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", common.ErrTokenInvalid
	}
	return claims.UserID, nil
}
