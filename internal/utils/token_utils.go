package utils

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/SscSPs/news_management_app/internal/core/domain"
)

// AccessClaims are the claims of an access token. Subject carries the account id.
type AccessClaims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// AccountID parses the subject as an account id.
func (c *AccessClaims) AccountID() (int, error) {
	return strconv.Atoi(c.Subject)
}

// GenerateJWT generates a new JWT token for the account id and role.
func GenerateJWT(accountID int, role domain.Role, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.Itoa(accountID),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a JWT token string, validates its signature and standard claims.
func ParseAndValidateJWT(tokenString string, secretKey string) (*AccessClaims, error) {
	claims := &AccessClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
