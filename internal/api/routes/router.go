package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hsinyu-lin/trackdesk/internal/api/handlers"
	"github.com/hsinyu-lin/trackdesk/internal/api/middleware"
	"github.com/hsinyu-lin/trackdesk/internal/repository"
)

// RegisterRoutes wires the HTTP surface onto the engine. Everything past
// /auth/signup and /auth/login requires a valid session token and a live
// user row, so role changes take effect on the next request.
func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, repos *repository.Repos) {
	auth := middleware.NewAuth(repos)

	public := r.Group("/auth")
	{
		public.POST("/signup", h.Auth.Signup)
		public.POST("/login", h.Auth.Login)
		public.POST("/logout", h.Auth.Logout)
	}

	api := r.Group("/")
	api.Use(middleware.JWTAuthMiddleware(), auth.LoadActor())
	{
		api.GET("/auth/me", h.Auth.Me)

		user := api.Group("/user")
		{
			user.GET("/admin", h.User.ListUsers)
			user.PATCH("/admin/:username", h.User.UpdateRole)
			user.PATCH("/profile", h.User.UpdateProfile)
			user.GET("/:username", h.User.GetUser)
		}

		project := api.Group("/project")
		{
			project.GET("", h.Project.ListProjects)
			project.POST("/create", h.Project.CreateProject)
			// Fetch goes over POST so the existing clients keep working.
			project.POST("/:id", h.Project.GetProject)
			project.PATCH("/:id", h.Project.ChangeStatus)
			project.PATCH("/:id/add/:userId", h.Project.AddMember)
			project.PATCH("/:id/remove/:userId", h.Project.RemoveMember)

			ticket := project.Group("/:id/ticket")
			{
				ticket.POST("", h.Ticket.CreateTicket)
				ticket.GET("/:ticketId", h.Ticket.GetTicket)
				ticket.PATCH("/:ticketId", h.Ticket.UpdateTicket)

				comment := ticket.Group("/:ticketId/comment")
				{
					comment.POST("", h.Comment.CreateComment)
					comment.PATCH("/:commentId", h.Comment.UpdateComment)
					comment.DELETE("/:commentId", h.Comment.DeleteComment)
				}
			}
		}

		api.GET("/audit/logs", h.Audit.ListLogs)
	}
}
