package middleware

import "github.com/gin-gonic/gin"

// WriteGuards are the handlers placed in front of mutating routes. Nil fields are skipped.
type WriteGuards struct {
	RateLimit   gin.HandlerFunc
	Idempotency gin.HandlerFunc
}

// Mutate prefixes handlers with the rate limiter.
func (g WriteGuards) Mutate(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
	return compact(append([]gin.HandlerFunc{g.RateLimit}, handlers...))
}

// Submit prefixes handlers with the rate limiter and the idempotency replay.
func (g WriteGuards) Submit(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
	return compact(append([]gin.HandlerFunc{g.RateLimit, g.Idempotency}, handlers...))
}

func compact(handlers []gin.HandlerFunc) []gin.HandlerFunc {
	out := handlers[:0]
	for _, h := range handlers {
		if h != nil {
			out = append(out, h)
		}
	}
	return out
}
