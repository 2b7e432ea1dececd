// middleware/auth.go
package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"curbside/utils"
)

// Identity is what this service reads off a verified token: a stable user
// id, the verified-email flag, and the customer|vendor role claim. Role
// assignment itself happens outside this service.
type Identity struct {
	UID           string `json:"uid"`
	EmailVerified bool   `json:"emailVerified"`
	Role          string `json:"role"`
	Name          string `json:"name,omitempty"`
}

const identityKey = "identity"

// claimsCacheTTL bounds how long a revoked token keeps working.
const claimsCacheTTL = 5 * time.Minute

// FirebaseAuthMiddleware verifies the Bearer ID token and attaches the
// caller's Identity to the request context. Verified claims are cached in
// Redis so repeat requests skip the token check.
func FirebaseAuthMiddleware(client *auth.Client, cache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		ctx := c.Request.Context()
		if ident, ok := cachedIdentity(ctx, cache, tokenString); ok {
			c.Set(identityKey, ident)
			c.Next()
			return
		}

		token, err := client.VerifyIDToken(ctx, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		ident := identityFromToken(token)
		cacheIdentity(ctx, cache, tokenString, ident)
		c.Set(identityKey, ident)
		c.Next()
	}
}

// RequireRole rejects callers whose role claim does not match.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := GetIdentity(c)
		if !ok || ident.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this operation"})
			return
		}
		c.Next()
	}
}

// RequireVerifiedEmail gates write operations on the verified-email flag.
func RequireVerifiedEmail() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := GetIdentity(c)
		if !ok || !ident.EmailVerified {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Email verification required"})
			return
		}
		c.Next()
	}
}

// GetIdentity returns the verified caller identity set by the auth middleware.
func GetIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	ident, ok := v.(Identity)
	return ident, ok
}

func identityFromToken(token *auth.Token) Identity {
	ident := Identity{UID: token.UID}
	if v, ok := token.Claims["email_verified"].(bool); ok {
		ident.EmailVerified = v
	}
	if v, ok := token.Claims["role"].(string); ok {
		ident.Role = v
	}
	if v, ok := token.Claims["name"].(string); ok {
		ident.Name = v
	} else if v, ok := token.Claims["email"].(string); ok {
		ident.Name = v
	}
	return ident
}

func cachedIdentity(ctx context.Context, cache *redis.Client, token string) (Identity, bool) {
	data, err := cache.Get(ctx, claimsCacheKey(token)).Result()
	if err != nil {
		return Identity{}, false
	}
	var ident Identity
	if err := json.Unmarshal([]byte(data), &ident); err != nil {
		return Identity{}, false
	}
	return ident, true
}

func cacheIdentity(ctx context.Context, cache *redis.Client, token string, ident Identity) {
	data, err := json.Marshal(ident)
	if err != nil {
		return
	}
	if err := cache.Set(ctx, claimsCacheKey(token), data, claimsCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("auth: failed to cache claims", zap.Error(err))
	}
}

// claimsCacheKey derives the cache key from a digest of the token so the
// bearer credential itself is never stored in Redis.
func claimsCacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "authclaims:" + hex.EncodeToString(sum[:])
}
