package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"paylink.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	claimHandler   *handlers.ClaimHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/siwe/nonce", d.authHandler.Nonce)
			auth.POST("/siwe/verify", d.authHandler.Verify)
		}

		// Claim routes
		claims := v1.Group("/claims")
		{
			claims.POST("", d.authMiddleware, d.claimHandler.CreateClaim)
			claims.GET("", d.authMiddleware, d.claimHandler.ListClaims)

			// Public routes for recipients holding a claim link
			claims.GET("/:code", d.claimHandler.GetClaim)
			claims.POST("/:code/claim", d.claimHandler.ConfirmClaim)
			claims.POST("/:code/reclaim", d.authMiddleware, d.claimHandler.ReclaimClaim)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
