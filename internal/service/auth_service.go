package service

import (
	"time"

	"github.com/storelink/storelink/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// StoreClaims 店主令牌声明，store_id 为权威店铺标识
type StoreClaims struct {
	StoreID uint `json:"store_id"`
	jwt.RegisteredClaims
}

// AuthService 店主令牌签发与校验
type AuthService struct {
	cfg *config.Config
}

// NewAuthService 创建认证服务实例
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// Enabled 是否启用令牌校验（未配置 secret 时禁用）
func (s *AuthService) Enabled() bool {
	return s.cfg.JWT.SecretKey != ""
}

// GenerateToken 为店铺签发 HS256 令牌
func (s *AuthService) GenerateToken(storeID uint) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(s.cfg.JWT.ExpireHours) * time.Hour)

	claims := StoreClaims{
		StoreID: storeID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ParseToken 解析并校验店主令牌
func (s *AuthService) ParseToken(tokenString string) (*StoreClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &StoreClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*StoreClaims); ok && token.Valid && claims.StoreID != 0 {
		return claims, nil
	}
	return nil, ErrTokenInvalid
}
