package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	authmodels "sales_ledger/internal/api/auth/models"
	authsvc "sales_ledger/internal/api/auth/service"
	"sales_ledger/internal/common"
	"sales_ledger/internal/logger"
	"sales_ledger/internal/utility"
)

// AuthManager quản lý xác thực và phân quyền người dùng
type AuthManager struct {
	UserCRUD *authsvc.UserService
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	newManager := new(AuthManager)

	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	newManager.UserCRUD = userService

	// Khởi tạo cache với thời gian sống 5 phút và thời gian dọn dẹp 10 phút
	newManager.Cache = utility.NewCache(5*time.Minute, 10*time.Minute)

	return newManager, nil
}

// findUserByToken tìm user theo JWT token, có cache để tối ưu hiệu suất
func (am *AuthManager) findUserByToken(ctx context.Context, token string) (authmodels.User, error) {
	cacheKey := "user_by_token:" + token
	if cached, found := am.Cache.Get(cacheKey); found {
		return cached.(authmodels.User), nil
	}

	// Ưu tiên query field "token" (token mới nhất) trước vì nó được cập nhật mỗi lần login
	// Nếu không tìm thấy, query trong array "tokens" (tokens theo hwid)
	var user authmodels.User
	var err error

	// Cách 1: Query field "token" (token mới nhất) - ĐÂY LÀ CÁCH CHÍNH
	user, err = am.UserCRUD.FindOne(ctx, bson.M{"token": token}, nil)
	if err != nil {
		// Cách 2: Query trong array "tokens" với dot notation
		user, err = am.UserCRUD.FindOne(ctx, bson.M{"tokens.jwtToken": token}, nil)
		if err != nil {
			// Cách 3: Query với $elemMatch
			user, err = am.UserCRUD.FindOne(ctx, bson.M{
				"tokens": bson.M{
					"$elemMatch": bson.M{
						"jwtToken": token,
					},
				},
			}, nil)
		}
	}
	if err != nil {
		return user, err
	}

	am.Cache.Set(cacheKey, user)
	return user, nil
}

// requiresAdmin kiểm tra permission có yêu cầu role admin không.
// Quy ước: các permission trong nhóm quản trị có prefix "Admin." hoặc "User." (quản lý user khác).
func requiresAdmin(permission string) bool {
	return strings.HasPrefix(permission, "Admin.") || strings.HasPrefix(permission, "User.")
}

// AuthMiddleware middleware xác thực cho Fiber
func AuthMiddleware(requirePermission string) fiber.Handler {
	// Sử dụng singleton instance của AuthManager
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		user, err := authManager.findUserByToken(context.Background(), token)
		if err != nil {
			// Chỉ log khi không tìm thấy token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token not found in database")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra user có bị block không
		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)
		c.Locals("user_role", user.Role)

		// Nếu không yêu cầu permission cụ thể, chỉ cần xác thực
		if requirePermission == "" {
			return c.Next()
		}

		// Admin có toàn bộ quyền
		if user.Role == authmodels.RoleAdmin {
			c.Locals("permission_name", requirePermission)
			return c.Next()
		}

		// Permission thuộc nhóm quản trị yêu cầu role admin
		if requiresAdmin(requirePermission) {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id":             user.ID.Hex(),
				"user_email":          user.Email,
				"user_role":           user.Role,
				"required_permission": requirePermission,
				"path":                c.Path(),
			}).Warn("❌ [AUTH] User does not have required permission")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				"Không có quyền truy cập. Chức năng này yêu cầu quyền quản trị viên.",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu permission name vào context để handler sử dụng
		c.Locals("permission_name", requirePermission)
		return c.Next()
	}
}
