package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"

	"github.com/akhmetov-d/presentio/internal/domain"
)

const identityKey = "identity"

// Identity extracts the externally-issued bearer token and attaches the
// authenticated identity to the request. Token issuance is not this
// service's concern; only HMAC verification and claim extraction happen here.
func Identity(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		raw := ""
		if authz := c.GetHeader("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		}
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token claims"})
			return
		}

		identity := domain.Identity{
			ID:    strClaim(claims, "sub"),
			Role:  domain.Role(strClaim(claims, "role")),
			Email: strings.ToLower(strClaim(claims, "email")),
			Name:  strClaim(claims, "name"),
		}
		if identity.ID == "" || identity.Email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "incomplete identity claims"})
			return
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

func SetIdentity(c *ginext.Context, identity domain.Identity) {
	c.Set(identityKey, identity)
}

func IdentityFrom(c *ginext.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	identity, ok := v.(domain.Identity)
	return identity, ok
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
