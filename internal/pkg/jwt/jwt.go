package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// DefaultExpiration applies when the configured expiration does not parse.
const DefaultExpiration = 12 * time.Hour

type Service interface {
	// GenerateSessionToken signs a token carrying the session role and,
	// for the employee role, the employee it acts as.
	GenerateSessionToken(role string, employeeID string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	expiration time.Duration
	tokenAuth  *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, expiration string) Service {
	exp, err := time.ParseDuration(expiration)
	if err != nil || exp <= 0 {
		exp = DefaultExpiration
	}
	return &JWTService{
		expiration: exp,
		tokenAuth:  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateSessionToken(role string, employeeID string) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.expiration).Unix()

	claims := map[string]interface{}{
		"role": role,
		"type": "session",
		"exp":  expiresAt,
	}
	if employeeID != "" {
		claims["employee_id"] = employeeID
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}
