package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenManager issues and verifies signed session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// TTL is the lifetime of tokens issued by this manager.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

func (m *TokenManager) Generate(id Identity) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  strconv.FormatUint(uint64(id.UserID), 10),
		"username": id.Username,
		"exp":      time.Now().Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenManager) Parse(tokenStr string) (Identity, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Identity{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid claims")
	}
	rawID, ok := claims["user_id"].(string)
	if !ok {
		return Identity{}, errors.New("invalid claims")
	}
	userID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || userID == 0 {
		return Identity{}, errors.New("invalid claims")
	}
	username, _ := claims["username"].(string)

	return Identity{UserID: uint(userID), Username: username}, nil
}
