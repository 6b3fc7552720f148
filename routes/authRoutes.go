package routes

import (
	"campusfix-be/controllers"
	"campusfix-be/middlewares"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the administrator session routes
func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", controllers.LoginAdmin)
		auth.POST("/logout", controllers.LogoutAdmin)
		auth.GET("/me", middlewares.AdminRequired(), controllers.GetMe)
	}
}
