package middleware

import "github.com/gin-gonic/gin"

// NoStore stops browsers from caching viewer pages between chart batches.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
