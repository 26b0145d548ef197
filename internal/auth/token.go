/* 관리자 API용 JWT 토큰 생성 및 검증 */

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	issuer       = "wellsure-api"
	AdminSubject = "admin"
)

var ErrNoSecret = errors.New("admin token secret is not configured")

// Claims 구조체, 토큰을 발급받은 운영자 이름 포함
type Claims struct {
	Operator string `json:"operator"`
	jwt.RegisteredClaims
}

type Signer struct {
	key []byte
}

func NewSigner(secret string) (*Signer, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &Signer{key: []byte(secret)}, nil
}

// JWT 토큰 생성
func (s *Signer) GenerateToken(operator string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Operator: operator,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   AdminSubject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tokenString, nil
}

// JWT 토큰 검증
func (s *Signer) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject != AdminSubject || claims.Issuer != issuer {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
