package middleware

import (
	"context"
	"net/http"
	"strings"

	accountRepo "github.com/funabab/ilivercare-app/database/repository/account"
	"github.com/funabab/ilivercare-app/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthMiddleware authenticates requests with a Bearer token. The token
// signature and expiry are verified first, then the token hash is checked
// against the Redis auth cache so revoked tokens stop working before they
// expire. When Redis is unreachable the account's existence in Mongo is the
// fallback check; no stored hash exists there, so during an outage a signed,
// unexpired token keeps working even if it was revoked. On success the
// account id and role claim are stored in the gin context.
func JWTAuthMiddleware(repo accountRepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "User not authenticated",
				"code":  "unauthenticated",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "User not authenticated",
				"code":  "unauthenticated",
			})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + claims.AccountID
		ctx := context.Background()

		authCache := utils.GetAuthCacheClient()
		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		switch {
		case err == nil:
			if cachedHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "User not authenticated",
					"code":  "unauthenticated",
				})
				return
			}
		case err == redis.Nil:
			// No cached hash: the token was revoked or never issued here.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "User not authenticated",
				"code":  "unauthenticated",
			})
			return
		default:
			// Mongo holds no token hash, so this path cannot detect
			// revocation; it only confirms the account still exists.
			logger.Warn("Auth cache unavailable, falling back to account lookup", zap.Error(err))
			if _, lookupErr := repo.GetByID(ctx, claims.AccountID); lookupErr != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "User not authenticated",
					"code":  "unauthenticated",
				})
				return
			}
		}

		c.Set("accountID", claims.AccountID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
