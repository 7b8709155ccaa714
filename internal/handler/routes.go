package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/uta-diee/practicas-api/internal/middleware"
	"github.com/uta-diee/practicas-api/internal/models"
	"github.com/uta-diee/practicas-api/internal/service"
)

// Handlers groups every HTTP handler for route registration.
type Handlers struct {
	Auth          *AuthHandler
	Practices     *PracticeHandler
	Surveys       *SurveyHandler
	Students      *StudentHandler
	Centers       *CenterHandler
	Collaborators *CollaboratorHandler
	Tutors        *TutorHandler
	Activities    *ActivityHandler
	Letters       *LetterHandler
	Catalogs      *CatalogHandler
	Metrics       *MetricsHandler
}

// RegisterRoutes mounts the API under the given prefix. Survey
// submission, the SSE stream and signed letter downloads stay public;
// everything else requires a valid token.
func RegisterRoutes(r *gin.Engine, prefix string, auth *service.AuthService, h Handlers) {
	api := r.Group(prefix)

	api.POST("/auth/login", h.Auth.Login)
	api.POST("/encuestas", h.Surveys.Create)
	api.GET("/practicas/stream", h.Practices.Stream)
	api.GET("/cartas/descarga", h.Letters.Download)

	protected := api.Group("")
	protected.Use(middleware.JWT(auth))

	protected.GET("/auth/me", h.Auth.Me)

	protected.POST("/practicas", h.Practices.Create)
	protected.GET("/practicas", h.Practices.List)
	protected.GET("/practicas/board", h.Practices.Board)
	protected.GET("/practicas/:id", h.Practices.Get)
	protected.PATCH("/practicas/:id/estado", h.Practices.UpdateStatus)

	protected.GET("/encuestas/estudiantiles", h.Surveys.ListStudent)
	protected.GET("/encuestas/estudiantiles/:id", h.Surveys.GetStudent)
	protected.GET("/encuestas/colaboradores", h.Surveys.ListCollaborator)
	protected.GET("/encuestas/colaboradores/:id", h.Surveys.GetCollaborator)
	protected.PATCH("/encuestas/:id/respuestas-abiertas", h.Surveys.UpdateOpenAnswers)
	protected.GET("/encuestas/:id/export", h.Surveys.Export)

	protected.GET("/estudiantes", h.Students.List)
	protected.POST("/estudiantes", h.Students.Create)
	protected.GET("/estudiantes/:rut", h.Students.Get)
	protected.PUT("/estudiantes/:rut", h.Students.Update)
	protected.DELETE("/estudiantes/:rut", middleware.RequireRoles(models.RoleAdmin), h.Students.Delete)

	protected.GET("/centros", h.Centers.List)
	protected.POST("/centros", h.Centers.Create)
	protected.GET("/centros/:id", h.Centers.Get)
	protected.PUT("/centros/:id", h.Centers.Update)
	protected.DELETE("/centros/:id", middleware.RequireRoles(models.RoleAdmin), h.Centers.Delete)

	protected.GET("/colaboradores", h.Collaborators.List)
	protected.POST("/colaboradores", h.Collaborators.Create)
	protected.GET("/colaboradores/:id", h.Collaborators.Get)
	protected.PUT("/colaboradores/:id", h.Collaborators.Update)
	protected.DELETE("/colaboradores/:id", middleware.RequireRoles(models.RoleAdmin), h.Collaborators.Delete)

	protected.GET("/tutores", h.Tutors.List)
	protected.POST("/tutores", h.Tutors.Create)
	protected.GET("/tutores/:id", h.Tutors.Get)
	protected.PUT("/tutores/:id", h.Tutors.Update)
	protected.DELETE("/tutores/:id", middleware.RequireRoles(models.RoleAdmin), h.Tutors.Delete)

	protected.GET("/actividades", h.Activities.List)
	protected.POST("/actividades", h.Activities.Create)
	protected.GET("/actividades/:id", h.Activities.Get)
	protected.PUT("/actividades/:id", h.Activities.Update)
	protected.POST("/actividades/:id/evidencia", h.Activities.UploadEvidence)
	protected.DELETE("/actividades/:id", middleware.RequireRoles(models.RoleAdmin), h.Activities.Delete)

	protected.GET("/cartas", h.Letters.List)
	protected.POST("/cartas", h.Letters.Create)
	protected.GET("/cartas/:id", h.Letters.Get)
	protected.GET("/cartas/:id/pdf", h.Letters.PDF)
	protected.POST("/cartas/:id/descarga", h.Letters.SignedDownload)
	protected.PATCH("/cartas/:id/enviar", h.Letters.MarkSent)
	protected.DELETE("/cartas/:id", middleware.RequireRoles(models.RoleAdmin), h.Letters.Delete)

	protected.GET("/catalogos/estudiantes", h.Catalogs.Students)
	protected.GET("/catalogos/centros", h.Catalogs.Centers)
	protected.GET("/catalogos/colaboradores", h.Catalogs.Collaborators)
	protected.GET("/catalogos/tutores", h.Catalogs.Tutors)

	if h.Metrics != nil {
		r.GET("/metrics", h.Metrics.Expose)
	}
}
