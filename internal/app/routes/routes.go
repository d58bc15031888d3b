package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/campusconnect/internal/app/controllers"
	"github.com/yigit/campusconnect/internal/app/models"
	"github.com/yigit/campusconnect/internal/middleware"
)

// Controllers groups the handlers SetupRouter mounts.
type Controllers struct {
	Auth         *controllers.AuthController
	Club         *controllers.ClubController
	Chat         *controllers.ChatController
	Call         *controllers.CallController
	Confession   *controllers.ConfessionController
	Announcement *controllers.AnnouncementController
	Admin        *controllers.AdminController
	Home         *controllers.HomeController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl *Controllers, authMiddleware *middleware.AuthMiddleware) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", ctrl.Auth.Signup)
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/admin/login", ctrl.Auth.AdminLogin)
		auth.POST("/forgot-password/question", ctrl.Auth.SecurityQuestion)
		auth.POST("/forgot-password/reset", ctrl.Auth.ResetPassword)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)
	studentOnly := authMiddleware.RoleRequired(models.RoleStudent)

	authenticated.GET("/me", ctrl.Auth.Me)
	authenticated.GET("/home", studentOnly, ctrl.Home.GetHome)
	authenticated.GET("/students", ctrl.Home.GetContacts)

	announcements := authenticated.Group("/announcements")
	{
		announcements.GET("", ctrl.Announcement.GetAnnouncements)
		announcements.POST("", adminOnly, ctrl.Announcement.CreateAnnouncement)
		announcements.DELETE("/:id", adminOnly, ctrl.Announcement.DeleteAnnouncement)
	}

	clubs := authenticated.Group("/clubs")
	{
		clubs.GET("", ctrl.Club.GetAllClubs)
		clubs.GET("/mine", ctrl.Club.GetMyClubs)
		clubs.GET("/:id", ctrl.Club.GetClubByID)
		clubs.POST("/:id/join", studentOnly, ctrl.Club.JoinClub)
	}

	clubRequests := authenticated.Group("/club-requests", adminOnly)
	{
		clubRequests.GET("", ctrl.Club.GetRequests)
		clubRequests.POST("/:id/approve", ctrl.Club.ApproveRequest)
	}

	// participant checks happen in the chat and call services
	chats := authenticated.Group("/chats")
	{
		chats.GET("", ctrl.Chat.GetChats)
		chats.POST("", ctrl.Chat.CreateChat)
		chats.GET("/:id/messages", ctrl.Chat.GetMessages)
		chats.POST("/:id/messages", ctrl.Chat.SendMessage)
	}

	calls := authenticated.Group("/calls")
	{
		calls.GET("", ctrl.Call.GetCalls)
		calls.POST("", ctrl.Call.StartCall)
		calls.PATCH("/:id", ctrl.Call.UpdateCall)
	}

	confessions := authenticated.Group("/confessions")
	{
		confessions.GET("", ctrl.Confession.GetFeed)
		confessions.POST("", ctrl.Confession.CreateConfession)
		confessions.POST("/:id/likes", ctrl.Confession.LikeConfession)
		confessions.POST("/:id/comments", ctrl.Confession.CommentOnConfession)
	}

	admin := authenticated.Group("/admin", adminOnly)
	{
		admin.GET("/confessions", ctrl.Confession.GetModerationQueue)
		admin.POST("/confessions/:id/approve", ctrl.Confession.ApproveConfession)
		admin.POST("/confessions/:id/reject", ctrl.Confession.RejectConfession)
		admin.DELETE("/confessions/:id", ctrl.Confession.DeleteConfession)
		admin.GET("/students", ctrl.Admin.GetStudents)
		admin.GET("/dashboard", ctrl.Admin.GetDashboard)
	}
}
