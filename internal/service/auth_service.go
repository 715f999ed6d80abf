package service

import (
	"errors"

	"anime-gallery-server/internal/model"
	"anime-gallery-server/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	userStore repository.UserStore
}

func NewAuthService(userStore repository.UserStore) *AuthService {
	return &AuthService{userStore: userStore}
}

// Register 创建新用户。
// 两次密码不一致时直接拒绝，不会写入任何数据。
// 邮箱冲突与其他写入失败返回同一条提示，调用方无法区分。
func (s *AuthService) Register(username, email, password, confirmPassword string) (*model.User, error) {
	if password != confirmPassword {
		return nil, NewValidationError("两次输入的密码不一致")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewInternalError("密码加密失败")
	}

	user := model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := s.userStore.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, NewConflictError("邮箱已被注册或注册失败")
		}
		return nil, NewInternalError("邮箱已被注册或注册失败")
	}

	return &user, nil
}

// Login 校验邮箱与密码。
// 邮箱不存在与密码错误返回同一个错误，对调用方不可区分。
func (s *AuthService) Login(email, password string) (*model.User, error) {
	user, err := s.userStore.FindByEmail(email)
	if err != nil {
		return nil, NewUnauthorizedError("邮箱或密码错误")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, NewUnauthorizedError("邮箱或密码错误")
	}

	return user, nil
}
