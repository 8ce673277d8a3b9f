package service

import (
	"Notely/config"
	"Notely/dao"
	"Notely/models"
	"Notely/pkg/jwt"
	"Notely/pkg/response"
	"Notely/pkg/snowflake"
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const TokenTypeAccess = "access"

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, username, password string) (*models.Users, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetUser(ctx context.Context, userID int64) (*models.Users, error)
}

type AuthService struct {
	Config *config.Config
	Users  *dao.Users
}

// Register 注册账号，只存 bcrypt 摘要，用户名区分大小写精确匹配
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.Users, error) {
	if username == "" || password == "" {
		return nil, response.NewError(http.StatusBadRequest, "Username and password are required")
	}
	if s.Users.IsUsernameExist(ctx, username) {
		return nil, response.NewError(http.StatusBadRequest, "Username already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.Users{
		ID:        snowflake.GenUserID(),
		Username:  username,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 校验口令并签发 access token。
// 用户不存在和密码错误返回同一个错误，不泄露账号是否存在。
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	invalid := response.NewError(http.StatusUnauthorized, "Incorrect username or password")

	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", invalid
		}
		return "", err
	}
	// 库的排序规则可能不区分大小写，这里再做一次字节级比对
	if user.Username != username {
		return "", invalid
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", invalid
	}

	return jwt.GenerateToken(
		[]byte(s.Config.Jwt.Secret),
		user.ID,
		user.Username,
		TokenTypeAccess,
		s.Config.Jwt.Expire(),
	)
}

func (s *AuthService) GetUser(ctx context.Context, userID int64) (*models.Users, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusUnauthorized, "Not authenticated")
		}
		return nil, err
	}
	return user, nil
}
