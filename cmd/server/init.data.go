package main

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	authmodels "sales_ledger/internal/api/auth/models"
	authsvc "sales_ledger/internal/api/auth/service"
	basesvc "sales_ledger/internal/api/base/service"
	"sales_ledger/internal/global"
	"sales_ledger/internal/logger"
)

func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	// Thăng cấp admin từ Firebase UID (tùy chọn).
	// User phải đã login Firebase ít nhất một lần (đã có document trong auth_users).
	// Không có FIREBASE_ADMIN_UID: user đăng ký/login đầu tiên tự động trở thành admin.
	if global.MongoDB_ServerConfig.FirebaseAdminUID != "" {
		if err := promoteAdminByFirebaseUID(global.MongoDB_ServerConfig.FirebaseAdminUID); err != nil {
			log.Warnf("Failed to promote admin user from Firebase UID: %v", err)
			log.Info("User đầu tiên đăng ký sẽ tự động trở thành admin")
		} else {
			log.Info("✅ [INIT] Admin user promoted from Firebase UID")
		}
	} else {
		log.Info("FIREBASE_ADMIN_UID not set")
		log.Info("User đầu tiên đăng ký sẽ tự động trở thành admin (First user becomes admin)")
	}

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}

// promoteAdminByFirebaseUID set role admin cho user có firebaseUid tương ứng.
func promoteAdminByFirebaseUID(firebaseUID string) error {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return err
	}
	ctx := context.TODO()
	user, err := userService.FindOne(ctx, bson.M{"firebaseUid": firebaseUID}, nil)
	if err != nil {
		return err
	}
	if user.Role == authmodels.RoleAdmin {
		return nil
	}
	_, err = userService.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"role": authmodels.RoleAdmin},
	})
	return err
}
