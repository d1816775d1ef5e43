// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	authdto "sales_ledger/internal/api/auth/dto"
	models "sales_ledger/internal/api/auth/models"
	basesvc "sales_ledger/internal/api/base/service"
	"sales_ledger/internal/common"
	"sales_ledger/internal/global"
	"sales_ledger/internal/logger"
	"sales_ledger/internal/utility"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
	authLogService *basesvc.BaseServiceMongoImpl[models.AuthLog]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	authLogCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AuthLogs)
	if !exist {
		return nil, fmt.Errorf("failed to get auth_logs collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
		authLogService:       basesvc.NewBaseServiceMongo[models.AuthLog](authLogCollection),
	}, nil
}

// writeAuthLog ghi một dòng audit log cho hành động auth. Lỗi ghi log không làm fail request.
func (s *UserService) writeAuthLog(ctx context.Context, userID primitive.ObjectID, action, describe, hwid string) {
	entry := models.AuthLog{
		UserID:   userID,
		Action:   action,
		Describe: describe,
		Hwid:     hwid,
	}
	if _, err := s.authLogService.InsertOne(ctx, entry); err != nil {
		logger.GetAuditLogger().WithFields(logrus.Fields{
			"user_id": userID.Hex(),
			"action":  action,
			"error":   err.Error(),
		}).Warn("Không ghi được auth log")
		return
	}
	logger.GetAuditLogger().WithFields(logrus.Fields{
		"user_id": userID.Hex(),
		"action":  action,
	}).Info(describe)
}

// firstUserRole trả về role cho user mới: user đầu tiên của hệ thống là admin.
func (s *UserService) firstUserRole(ctx context.Context) string {
	count, err := s.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{})
	if err != nil || count > 0 {
		return models.RoleUser
	}
	return models.RoleAdmin
}

// issueToken tạo JWT mới cho user và lưu vào field token + tokens (theo hwid).
func (s *UserService) issueToken(ctx context.Context, user models.User, hwid string) (*models.User, error) {
	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()
	tokenMap, err := utility.CreateToken(global.MongoDB_ServerConfig.JwtSecret, user.ID.Hex(), strconv.FormatInt(currentTime, 16), strconv.Itoa(rdNumber))
	if err != nil {
		return nil, err
	}

	user.Token = tokenMap["token"]
	idTokenExist := -1
	for i, t := range user.Tokens {
		if t.Hwid == hwid {
			idTokenExist = i
			break
		}
	}
	if idTokenExist == -1 {
		user.Tokens = append(user.Tokens, models.Token{Hwid: hwid, JwtToken: tokenMap["token"]})
	} else {
		user.Tokens[idTokenExist].JwtToken = tokenMap["token"]
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token":  user.Token,
			"tokens": user.Tokens,
		},
	}
	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, err
	}
	return &updatedUser, nil
}

// Register đăng ký tài khoản local bằng email + mật khẩu.
// User đầu tiên của hệ thống được gán role admin.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (*models.User, error) {
	// Kiểm tra email đã được đăng ký chưa
	_, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err == nil {
		return nil, common.ErrEmailTaken
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	salt, err := utility.GenerateSalt()
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không tạo được salt cho mật khẩu", common.StatusInternalServerError, err)
	}

	newUser := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: utility.HashPassword(input.Password, salt),
		Salt:     salt,
		Role:     s.firstUserRole(ctx),
		Tokens:   []models.Token{},
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, newUser)
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return nil, common.ErrEmailTaken
		}
		return nil, err
	}

	withToken, err := s.issueToken(ctx, created, input.Hwid)
	if err != nil {
		return nil, err
	}

	s.writeAuthLog(ctx, withToken.ID, models.AuthActionRegister, "Đăng ký tài khoản local", input.Hwid)
	return withToken, nil
}

// Login đăng nhập bằng tài khoản local (email + mật khẩu).
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	// Tài khoản tạo qua Firebase không có mật khẩu local
	if user.Password == "" || user.Salt == "" {
		return nil, common.ErrInvalidCredentials
	}

	if !utility.ComparePassword(input.Password, user.Salt, user.Password) {
		return nil, common.ErrInvalidCredentials
	}

	if user.IsBlock {
		return nil, common.NewError(common.ErrCodeAuth, "Tài khoản đã bị khóa: "+user.BlockNote, common.StatusForbidden, nil)
	}

	withToken, err := s.issueToken(ctx, user, input.Hwid)
	if err != nil {
		return nil, err
	}

	s.writeAuthLog(ctx, withToken.ID, models.AuthActionLogin, "Đăng nhập bằng tài khoản local", input.Hwid)
	return withToken, nil
}

// Logout đăng xuất người dùng (xóa token theo hwid)
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID, input *authdto.UserLogoutInput) error {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return err
	}
	newTokens := make([]models.Token, 0)
	for _, t := range user.Tokens {
		if t.Hwid != input.Hwid {
			newTokens = append(newTokens, t)
		}
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"tokens": newTokens,
			"token":  "",
		},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	if err != nil {
		return err
	}
	s.writeAuthLog(ctx, userID, models.AuthActionLogout, "Đăng xuất", input.Hwid)
	return nil
}

// LoginWithFirebase đăng nhập bằng Firebase ID token
func (s *UserService) LoginWithFirebase(ctx context.Context, input *authdto.FirebaseLoginInput) (*models.User, error) {
	token, err := utility.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		logrus.WithError(err).Error("LoginWithFirebase: Lỗi verify Firebase ID token")
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Token không hợp lệ", common.StatusUnauthorized, err)
	}

	firebaseUser, err := utility.GetUserByUID(ctx, token.UID)
	if err != nil {
		logrus.WithFields(logrus.Fields{"firebase_uid": token.UID, "error": err.Error()}).Error("LoginWithFirebase: Lỗi lấy thông tin user từ Firebase")
		return nil, err
	}

	var existingUser *models.User
	var foundBy string
	if firebaseUser.Email != "" {
		emailFilter := bson.M{"email": firebaseUser.Email}
		if emailUser, emailErr := s.BaseServiceMongoImpl.FindOne(ctx, emailFilter, nil); emailErr == nil {
			existingUser = &emailUser
			foundBy = "email"
		} else if !errors.Is(emailErr, common.ErrNotFound) {
			logrus.WithError(emailErr).Error("LoginWithFirebase: Lỗi khi tìm user theo email")
			return nil, emailErr
		}
	}
	if existingUser == nil && firebaseUser.PhoneNumber != "" {
		phoneFilter := bson.M{"phone": firebaseUser.PhoneNumber}
		if phoneUser, phoneErr := s.BaseServiceMongoImpl.FindOne(ctx, phoneFilter, nil); phoneErr == nil {
			existingUser = &phoneUser
			foundBy = "phone"
		} else if !errors.Is(phoneErr, common.ErrNotFound) {
			logrus.WithError(phoneErr).Error("LoginWithFirebase: Lỗi khi tìm user theo phone")
			return nil, phoneErr
		}
	}

	if existingUser != nil {
		if existingUser.FirebaseUID != "" && existingUser.FirebaseUID != token.UID {
			var conflictField string
			if foundBy == "email" {
				conflictField = fmt.Sprintf("Email '%s'", firebaseUser.Email)
			} else {
				conflictField = fmt.Sprintf("Số điện thoại '%s'", firebaseUser.PhoneNumber)
			}
			logrus.WithFields(logrus.Fields{"existing_firebase_uid": existingUser.FirebaseUID, "new_firebase_uid": token.UID, "found_by": foundBy}).Warn("LoginWithFirebase: Conflict")
			return nil, common.NewError(common.ErrCodeAuthCredentials, conflictField+" đã được sử dụng bởi tài khoản khác. Vui lòng sử dụng "+foundBy+" khác hoặc đăng nhập bằng tài khoản cũ.", common.StatusConflict, nil)
		}
	}

	updateData := &basesvc.UpdateData{Set: make(map[string]interface{})}
	updateData.Set["firebaseUid"] = token.UID
	updateData.Set["emailVerified"] = firebaseUser.EmailVerified
	updateData.Set["phoneVerified"] = firebaseUser.PhoneNumber != ""
	updateData.Set["isBlock"] = false
	updateData.Set["tokens"] = []models.Token{}
	updateData.Set["token"] = ""

	if firebaseUser.DisplayName != "" {
		updateData.Set["name"] = firebaseUser.DisplayName
	}
	if firebaseUser.PhotoURL != "" {
		updateData.Set["avatarUrl"] = firebaseUser.PhotoURL
	}
	if firebaseUser.Email != "" {
		updateData.Set["email"] = firebaseUser.Email
	}
	if firebaseUser.PhoneNumber != "" {
		updateData.Set["phone"] = firebaseUser.PhoneNumber
	}

	var filter bson.M
	var user models.User
	if existingUser != nil {
		filter = bson.M{"_id": existingUser.ID}
	} else {
		filter = bson.M{"firebaseUid": token.UID}
		// Tạo mới qua Firebase: user đầu tiên của hệ thống là admin
		updateData.SetOnInsert = map[string]interface{}{"role": s.firstUserRole(ctx)}
	}

	user, err = s.BaseServiceMongoImpl.Upsert(ctx, filter, updateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{"filter": filter, "error": err.Error()}).Error("LoginWithFirebase: Lỗi khi gọi Upsert")
		if errors.Is(err, common.ErrDuplicate) {
			logrus.Warn("LoginWithFirebase: Lỗi duplicate, thử tìm lại user theo firebaseUid")
			firebaseFilter := bson.M{"firebaseUid": token.UID}
			if found, findErr := s.BaseServiceMongoImpl.FindOne(ctx, firebaseFilter, nil); findErr == nil {
				user = found
			} else {
				logrus.WithError(findErr).Error("LoginWithFirebase: Không tìm thấy user sau lỗi duplicate")
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if user.IsBlock {
		return nil, common.NewError(common.ErrCodeAuth, "Tài khoản đã bị khóa", common.StatusForbidden, nil)
	}

	updatedUser, err := s.issueToken(ctx, user, input.Hwid)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "error": err.Error()}).Error("LoginWithFirebase: Lỗi khi cập nhật token vào user")
		return nil, err
	}

	s.writeAuthLog(ctx, updatedUser.ID, models.AuthActionLoginFirebase, "Đăng nhập bằng Firebase", input.Hwid)
	logrus.WithFields(logrus.Fields{"user_id": updatedUser.ID.Hex(), "email": updatedUser.Email}).Info("LoginWithFirebase: Đăng nhập thành công")
	return updatedUser, nil
}
