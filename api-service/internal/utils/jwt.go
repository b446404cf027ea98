package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const tokenLifetime = 72 * time.Hour

type JWTUtil struct {
	secret string
}

func NewJWTUtil(secret string) *JWTUtil {
	return &JWTUtil{secret: secret}
}

// Identity is the token subject: enough to resolve the acting user without a
// second lookup on every request.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

func (j *JWTUtil) GenerateToken(identity Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"_id":   identity.UserID,
		"email": identity.Email,
		"name":  identity.Name,
		"exp":   now.Add(tokenLifetime).Unix(),
		"iat":   now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secret))
}

// ParseToken verifies signature and expiry and returns the embedded identity.
func (j *JWTUtil) ParseToken(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	identity := &Identity{}
	identity.UserID, _ = claims["_id"].(string)
	identity.Email, _ = claims["email"].(string)
	identity.Name, _ = claims["name"].(string)
	if identity.Email == "" {
		return nil, errors.New("token missing subject")
	}

	return identity, nil
}
