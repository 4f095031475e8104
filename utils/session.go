package utils

import (
	"errors"
	"time"

	"sweeply/config"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// Browser session tokens key booking drafts. They are anonymous: the token
// carries only a random session id, never customer identity.

const sessionTokenTTL = 30 * 24 * time.Hour

func sessionSecret() []byte {
	secret := config.AppConfig.SessionJWTSecret
	if secret == "" {
		secret = "sweeply-dev"
	}
	return []byte(secret)
}

// MintSessionToken creates a signed session token with a fresh session id.
func MintSessionToken() (token string, sessionID string, err error) {
	sessionID = uuid.New().String()
	claims := jwt.MapClaims{
		"jti": sessionID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(sessionTokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = t.SignedString(sessionSecret())
	return token, sessionID, err
}

// SessionIDFromToken validates a session token and returns its session id.
func SessionIDFromToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return sessionSecret(), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid session token")
	}

	jti, ok := claims["jti"].(string)
	if !ok || jti == "" {
		return "", errors.New("session token does not contain a valid 'jti' claim")
	}
	return jti, nil
}
