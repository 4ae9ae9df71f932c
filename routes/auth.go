package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/syedzainalii/noosh-tuft/controllers/auth"
	"github.com/syedzainalii/noosh-tuft/middleware"
)

func SetupAuthRoutes(api *gin.RouterGroup, deps Deps) {
	auth := api.Group("/auth")
	{
		auth.POST("/register",
			middleware.RateLimit(deps.Redis, "register", middleware.RegisterMaxAttempts, middleware.RegisterWindow),
			authControllers.Register(deps.DB, deps.Mailer))
		auth.POST("/login",
			middleware.RateLimit(deps.Redis, "login", middleware.LoginMaxAttempts, middleware.LoginWindow),
			authControllers.Login(deps.DB, deps.Tokens))
		auth.POST("/refresh", authControllers.Refresh(deps.DB, deps.Tokens))

		auth.GET("/verify-email", authControllers.VerifyEmail(deps.DB))
		auth.POST("/resend-verification", authControllers.ResendVerification(deps.DB, deps.Mailer))
		auth.POST("/forgot-password", authControllers.ForgotPassword(deps.DB, deps.Mailer))
		auth.POST("/reset-password", authControllers.ResetPassword(deps.DB))

		auth.GET("/me", middleware.RequireAuth(deps.DB, deps.Tokens), authControllers.Me())
	}
}
