// Package identity implements credential verification against the identity
// provider. The core only consumes the claims record it produces.
package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/indocart/pos-payments/internal/core/domain"
)

// JWTVerifier validates HS256 bearer tokens signed with the shared secret.
// Expiry and signature checks are handled by the jwt library; the alg is
// pinned to HS256 to block alg-substitution tokens.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// Verify implements ports.TokenVerifier.
func (v *JWTVerifier) Verify(_ context.Context, credential string) (domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(credential, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.Identity{}, fmt.Errorf("%w: invalid token", domain.ErrUnauthenticated)
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return domain.Identity{}, fmt.Errorf("%w: token missing subject", domain.ErrUnauthenticated)
	}
	email, _ := claims["email"].(string)

	var issuedAt time.Time
	if iat, ok := claims["iat"].(float64); ok {
		issuedAt = time.Unix(int64(iat), 0).UTC()
	}

	return domain.Identity{SubjectID: sub, Email: email, IssuedAt: issuedAt}, nil
}
