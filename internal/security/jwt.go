package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jobboard/internal/common"
	"jobboard/internal/domain/user"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type Claims struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username,omitempty"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

type JWTProvider struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewJWTProvider(secret string, accessTTL, refreshTTL time.Duration) *JWTProvider {
	return &JWTProvider{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// GeneratePair issues an access and a refresh token for the given user.
func (p *JWTProvider) GeneratePair(u *user.User) (*TokenPair, error) {
	expiresAt := time.Now().UTC().Add(p.accessTTL)
	access, err := p.sign(u, tokenTypeAccess, p.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := p.sign(u, tokenTypeRefresh, p.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresAt: expiresAt}, nil
}

func (p *JWTProvider) sign(u *user.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		UserID:    u.ID.String(),
		Username:  u.Username,
		Role:      string(u.Role),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", common.NewError(common.CodeInternal, "failed to sign token", err)
	}
	return signed, nil
}

// ParseAccess validates an access token and returns its claims.
func (p *JWTProvider) ParseAccess(tokenString string) (*Claims, error) {
	return p.parse(tokenString, tokenTypeAccess)
}

// ParseRefresh validates a refresh token and returns its claims.
func (p *JWTProvider) ParseRefresh(tokenString string) (*Claims, error) {
	return p.parse(tokenString, tokenTypeRefresh)
}

func (p *JWTProvider) parse(tokenString, wantType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.NewError(common.CodeUnauthorized, "unexpected signing method", nil)
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, common.NewError(common.CodeUnauthorized, "invalid token", err)
	}
	if claims.TokenType != wantType {
		return nil, common.NewError(common.CodeUnauthorized, "invalid token type", nil)
	}
	return claims, nil
}
