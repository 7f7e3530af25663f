package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcaa/rcaconnect/internal/app/controllers"
	"github.com/rcaa/rcaconnect/internal/app/models"
	"github.com/rcaa/rcaconnect/internal/middleware"
)

// SetupRouter configures all application routes under /api/v1
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	committeeController *controllers.CommitteeController,
	contentController *controllers.ContentController,
	jwtAuth gin.HandlerFunc,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register/student", authController.RegisterStudent)
		auth.POST("/register/alumni", authController.RegisterAlumni)
	}

	committee := v1.Group("/committee")
	{
		committee.GET("/active", committeeController.GetActive)
		committee.GET("/history", committeeController.GetHistory)
		committee.GET("/sessions/:id", committeeController.GetSession)
	}

	content := v1.Group("/content")
	{
		content.GET("/events", contentController.ListEvents)
		content.GET("/events/:slug", contentController.GetEvent)
		content.GET("/notices", contentController.ListNotices)
		content.GET("/notices/:id", contentController.GetNotice)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(jwtAuth)
	{
		me := authenticated.Group("/users/me")
		{
			me.GET("", userController.GetMe)
			me.PUT("/profile", userController.UpdateMyProfile)
			me.PUT("/password", userController.ChangePassword)
		}

		authenticated.POST("/content/events", contentController.CreateEvent)
		authenticated.POST("/content/notices", contentController.CreateNotice)
		authenticated.PUT("/content/notices/:id", contentController.UpdateNotice)
		authenticated.DELETE("/content/notices/:id", contentController.DeleteNotice)

		// --- Admin routes ---
		admin := authenticated.Group("")
		admin.Use(middleware.RoleRequired(models.RoleAdmin))
		{
			users := admin.Group("/users")
			{
				users.POST("", userController.CreateUser)
				users.GET("", userController.ListUsers)
				users.GET("/:id", userController.GetUserByID)
				users.PUT("/:id", userController.UpdateUser)
				users.DELETE("/:id", userController.DeleteUser)
				users.POST("/import-alumni", userController.ImportAlumni)
			}

			adminCommittee := admin.Group("/committee")
			{
				adminCommittee.POST("/sessions", committeeController.CreateSession)
				adminCommittee.PUT("/sessions/:id", committeeController.UpdateSession)
				adminCommittee.POST("/sessions/:id/activate", committeeController.ActivateSession)
				adminCommittee.POST("/members", committeeController.AddMember)
				adminCommittee.PUT("/members/:id", committeeController.UpdateMember)
			}

			admin.DELETE("/content/events/:slug", contentController.DeleteEvent)
		}
	}
}
