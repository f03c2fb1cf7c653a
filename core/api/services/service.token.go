package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/arjunsharma6622/galaxygrow-server/core/common"
	"github.com/arjunsharma6622/galaxygrow-server/core/global"
)

// TokenClaims is the payload carried inside an access token. Kind records
// which principal namespace the id belongs to, user or vendor, so a token
// can never be replayed against the other collection.
type TokenClaims struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed access tokens.
type TokenService struct {
	secret []byte
	expire time.Duration
}

// NewTokenService creates a token service from the server configuration.
func NewTokenService() *TokenService {
	return &TokenService{
		secret: []byte(global.ServerConfig.JwtSecret),
		expire: time.Duration(global.ServerConfig.JwtExpireHours) * time.Hour,
	}
}

// Issue signs a token for the given principal id and kind.
func (s *TokenService) Issue(id string, kind string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		ID:   id,
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expire)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", common.NewError(common.ErrCodeAuth, "Cannot sign token", common.StatusInternalServerError, err)
	}

	return signed, nil
}

// Verify parses and validates a token string and returns its claims.
func (s *TokenService) Verify(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}

	if !token.Valid || claims.ID == "" || claims.Kind == "" {
		return nil, common.ErrTokenInvalid
	}

	return claims, nil
}
