package routes

import (
	"campusfix-be/config"
	"campusfix-be/controllers"
	"campusfix-be/middlewares"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue routes. Reads and submissions are anonymous;
// every mutating route sits behind the admin middleware.
func IssueRoutes(r *gin.Engine, rateLimited bool) {
	issue := r.Group("/api/issue")
	{
		if rateLimited {
			issue.POST("", middlewares.ReportRateLimiter(config.ReportLimitPerDay()), controllers.CreateIssue)
		} else {
			issue.POST("", controllers.CreateIssue)
		}
		issue.GET("", controllers.GetAllIssues)
		issue.GET("/stream", controllers.StreamIssues)
		issue.GET("/recent", controllers.RecentIssues)
		issue.GET("/:id", controllers.GetIssue)

		issue.PATCH("/:id/status", middlewares.AdminRequired(), controllers.ChangeStatus)
		issue.PUT("/:id/resolver", middlewares.AdminRequired(), controllers.AssignResolver)
		issue.POST("/:id/proof", middlewares.AdminRequired(), controllers.AddResolutionProof)
		issue.DELETE("/:id", middlewares.AdminRequired(), controllers.DeleteIssue)
	}
}
