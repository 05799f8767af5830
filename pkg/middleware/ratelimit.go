package middleware

import (
	"fmt"
	"net/http"
	"time"

	"spaceport-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimit caps how many requests per minute a single user may make on
// the wrapped route. A nil client disables the limit. On redis failure
// the request is let through; the limiter protects against hot loops,
// it is not a correctness guard.
func RateLimit(client *redis.Client, perMinute int, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if client == nil || perMinute <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			key := fmt.Sprintf("rl:%s:%s", r.URL.Path, userID.String())

			count, err := client.Incr(r.Context(), key).Result()
			if err != nil {
				logger.Warn("Rate limit check failed", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				client.Expire(r.Context(), key, time.Minute)
			}

			if count > int64(perMinute) {
				logger.Warn("Rate limit exceeded",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path),
					zap.Int64("count", count),
				)
				utils.ResponseTooManyRequests(w, "Too many requests, slow down")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
