// Package token encodes and decodes the scannable check-in token. The payload
// carries the event, the principal, and the role context under which the
// check-in happens; an HMAC signature keeps the token from being forged by
// anyone who can guess identifiers.
package token

import (
	"errors"
	"time"

	"agroexpo/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// ErrDecode covers every malformed-input case: garbage payload, missing
// fields, and bad or absent signature.
var ErrDecode = errors.New("malformed or unverifiable token")

// Token is the decoded check-in payload.
type Token struct {
	EventID     string
	PrincipalID string
	RoleContext models.RoleContext
	IssuedAt    time.Time
}

type claims struct {
	EventID     string `json:"event_id"`
	PrincipalID string `json:"principal_id"`
	RoleContext string `json:"role_context"`
	jwt.RegisteredClaims
}

type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

func (c *Codec) Encode(t Token) (string, error) {
	issuedAt := t.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		EventID:     t.EventID,
		PrincipalID: t.PrincipalID,
		RoleContext: string(t.RoleContext),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
	})

	return jwtToken.SignedString(c.secret)
}

func (c *Codec) Decode(raw string) (*Token, error) {
	var cl claims

	parsed, err := jwt.ParseWithClaims(raw, &cl, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrDecode
		}
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrDecode
	}

	roleContext, err := models.ParseRoleContext(cl.RoleContext)
	if err != nil {
		return nil, ErrDecode
	}

	if cl.EventID == "" || cl.PrincipalID == "" || cl.IssuedAt == nil {
		return nil, ErrDecode
	}

	return &Token{
		EventID:     cl.EventID,
		PrincipalID: cl.PrincipalID,
		RoleContext: roleContext,
		IssuedAt:    cl.IssuedAt.Time,
	}, nil
}
