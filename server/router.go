package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/model"
	"github.com/somosmas/ong-api/server/middlewares"
)

type crudHandlers struct {
	list, show, create, update, remove gin.HandlerFunc
}

// mountCRUD registers the standard five endpoints for one resource.
// PUT and PATCH both map to update; updates are partial either way.
func mountCRUD(g *gin.RouterGroup, path string, h crudHandlers) {
	g.GET("/"+path, h.list)
	g.GET("/"+path+"/:id", h.show)
	g.POST("/"+path, h.create)
	g.PUT("/"+path+"/:id", h.update)
	g.PATCH("/"+path+"/:id", h.update)
	g.DELETE("/"+path+"/:id", h.remove)
}

// Router wires every route onto a gin engine. Default gin comes with the
// Logger and Recovery middleware already attached.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	api := router.Group("/api")

	api.POST("/register", s.Register)
	api.POST("/login", s.Login)
	api.GET("/user", middlewares.RequireToken(s.DB), s.CurrentUser)

	mountCRUD(api, "activities", crudHandlers{s.ListActivities, s.ShowActivity, s.CreateActivity, s.UpdateActivity, s.DeleteActivity})
	mountCRUD(api, "categories", crudHandlers{s.ListCategories, s.ShowCategory, s.CreateCategory, s.UpdateCategory, s.DeleteCategory})
	mountCRUD(api, "news", crudHandlers{s.ListNews, s.ShowNews, s.CreateNews, s.UpdateNews, s.DeleteNews})
	mountCRUD(api, "comments", crudHandlers{s.ListComments, s.ShowComment, s.CreateComment, s.UpdateComment, s.DeleteComment})
	mountCRUD(api, "contacts", crudHandlers{s.ListContacts, s.ShowContact, s.CreateContact, s.UpdateContact, s.DeleteContact})
	mountCRUD(api, "members", crudHandlers{s.ListMembers, s.ShowMember, s.CreateMember, s.UpdateMember, s.DeleteMember})
	mountCRUD(api, "projects", crudHandlers{s.ListProjects, s.ShowProject, s.CreateProject, s.UpdateProject, s.DeleteProject})
	mountCRUD(api, "slides", crudHandlers{s.ListSlides, s.ShowSlide, s.CreateSlide, s.UpdateSlide, s.DeleteSlide})
	mountCRUD(api, "socialmediaitems", crudHandlers{s.ListSocialMediaItems, s.ShowSocialMediaItem, s.CreateSocialMediaItem, s.UpdateSocialMediaItem, s.DeleteSocialMediaItem})
	mountCRUD(api, "testimonials", crudHandlers{s.ListTestimonials, s.ShowTestimonial, s.CreateTestimonial, s.UpdateTestimonial, s.DeleteTestimonial})
	mountCRUD(api, "users", crudHandlers{s.ListUsers, s.ShowUser, s.CreateUser, s.UpdateUser, s.DeleteUser})

	// Roles are read-only except for the gated rename.
	api.GET("/roles", s.ListRoles)
	api.GET("/roles/:id", s.ShowRole)
	api.PUT("/roles/:id",
		middlewares.RequireToken(s.DB),
		middlewares.RequirePermission(s.DB, model.PermissionRolesUpdate),
		s.UpdateRole)

	// Organization is a singleton: show and update only.
	api.GET("/organization", s.ShowOrganization)
	api.PUT("/organization", s.UpdateOrganization)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route Not Found."})
	})

	return router
}
