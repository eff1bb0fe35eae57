package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/courseleads/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	leadController *controllers.LeadController,
	commentController *controllers.CommentController,
	healthController *controllers.HealthController,
) {
	// Probes
	router.GET("/health", healthController.Health)
	router.GET("/ready", healthController.Ready)

	// Course routes
	courses := router.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:courseId", courseController.UpdateCourse)
		courses.POST("/:courseId/register", leadController.Register)
	}

	// Lead routes
	leads := router.Group("/leads")
	{
		leads.GET("", leadController.Search)
		leads.PUT("/:leadId", leadController.UpdateStatus)
	}

	router.POST("/comments", commentController.AddComment)
}
