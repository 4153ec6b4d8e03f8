package utils

import (
	"errors"
	"registration-service/internal/pkg/constvars"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

type AccountJWTClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), constvars.AppBcryptCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

var (
	dummyPasswordHash     []byte
	onceDummyPasswordHash sync.Once
)

func getDummyPasswordHash() []byte {
	onceDummyPasswordHash.Do(func() {
		dummyPasswordHash, _ = bcrypt.GenerateFromPassword([]byte(constvars.AppDummyPassword), constvars.AppBcryptCost)
	})
	return dummyPasswordHash
}

// CheckPasswordAgainstDummy spends the same bcrypt work as CheckPasswordHash
// for logins whose account does not exist. It always reports false.
func CheckPasswordAgainstDummy(password string) bool {
	_ = bcrypt.CompareHashAndPassword(getDummyPasswordHash(), []byte(password))
	return false
}

func GenerateAccountJWT(accountID, role, secret string, issuedAt time.Time, jwtExpiryTimeInHour int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AccountJWTClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Duration(jwtExpiryTimeInHour) * time.Hour)),
		},
	})

	return token.SignedString([]byte(secret))
}

// ParseAccountJWT verifies signature and expiry, accepting HMAC signed tokens only.
func ParseAccountJWT(tokenString, secret string) (*AccountJWTClaims, error) {
	claims := &AccountJWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid || claims.Subject == "" {
		return nil, errors.New(constvars.ErrDevAuthTokenInvalidOrExpired)
	}

	return claims, nil
}
