package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config JWT 签发配置
// 由调用方显式传入，Issuer 不读取任何全局状态
type Config struct {
	Secret             string
	Algorithm          string        // 签名算法: HS256 / HS384 / HS512，留空默认 HS256
	AccessTokenExpiry  time.Duration // Access Token 有效期
	RefreshTokenExpiry time.Duration // Refresh Token 有效期
}

// Issuer 负责签发和校验 Token 对
type Issuer struct {
	cfg    Config
	method jwt.SigningMethod
}

// Token 主体类型，存入 RegisteredClaims.Subject 用于区分两类 Token
const (
	SubjectAccess  = "access_token"
	SubjectRefresh = "refresh_token"
)

var ErrUnexpectedMethod = errors.New("unexpected signing method")

// NewIssuer 创建 Issuer
// 不认识的算法名按 HS256 处理
func NewIssuer(cfg Config) *Issuer {
	var method jwt.SigningMethod
	switch cfg.Algorithm {
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		method = jwt.SigningMethodHS256
	}
	return &Issuer{cfg: cfg, method: method}
}

// Claims 自定义 JWT 声明
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenPair 登录/注册时下发的 (access, refresh) 凭证对
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// GenerateAccessToken 生成 Access Token (短期，用于接口认证)
func (i *Issuer) GenerateAccessToken(userID string) (string, error) {
	return i.generate(userID, SubjectAccess, i.cfg.AccessTokenExpiry)
}

// GenerateRefreshToken 生成 Refresh Token (长期，用于刷新 Access Token)
func (i *Issuer) GenerateRefreshToken(userID string) (string, error) {
	return i.generate(userID, SubjectRefresh, i.cfg.RefreshTokenExpiry)
}

// IssuePair 一次性签发 Token 对
func (i *Issuer) IssuePair(userID string) (*TokenPair, error) {
	access, err := i.GenerateAccessToken(userID)
	if err != nil {
		return nil, err
	}
	refresh, err := i.GenerateRefreshToken(userID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (i *Issuer) generate(userID, subject string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "bookswap",
			Subject:   subject,
		},
	}
	token := jwt.NewWithClaims(i.method, claims)
	return token.SignedString([]byte(i.cfg.Secret))
}

// ParseToken 解析并验证 Token
// 签名不合法、已过期、算法不匹配均返回错误，由调用方按"未认证"处理
func (i *Issuer) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != i.method.Alg() {
			return nil, ErrUnexpectedMethod
		}
		return []byte(i.cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
