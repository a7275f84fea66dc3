package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kdanso/campus-ministry-backend/config"
	"github.com/kdanso/campus-ministry-backend/database"
	"github.com/kdanso/campus-ministry-backend/internal/auditlog"
	"github.com/kdanso/campus-ministry-backend/internal/auth"
	"github.com/kdanso/campus-ministry-backend/internal/event"
	"github.com/kdanso/campus-ministry-backend/internal/lookup"
	"github.com/kdanso/campus-ministry-backend/internal/member"
	"github.com/kdanso/campus-ministry-backend/internal/reports"
	"github.com/kdanso/campus-ministry-backend/middleware"
)

// lookupResource pairs a URL segment with its configured handler.
type lookupResource struct {
	path    string
	handler *lookup.Handler
}

func Setup(r *gin.Engine, cfg *config.Config) {
	r.Use(middleware.RequestID())
	r.Use(middleware.ProcessTime())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	r.Use(middleware.RateLimiter(cfg))
	r.Use(middleware.AuditMiddleware()) // capture client IP for audit trails

	// ========== Initialize Audit Log Module ==========
	auditRepo := auditlog.NewRepository(database.DB)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	// ========== Auth ==========
	authRepo := auth.NewRepository(database.DB)
	authSvc := auth.NewService(authRepo, cfg, auditSvc)
	authHandler := auth.NewHandler(authSvc)

	// Public endpoints: account creation and the OAuth2 password grant.
	r.POST("/signup", authHandler.Signup)
	r.POST("/token", authHandler.Token)

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(authSvc))
	protected.Use(middleware.RequireActive())

	protected.GET("/users/me/", authHandler.Me)
	protected.GET("/users/all/", middleware.RequireAdmin(), authHandler.ListUsers)

	api := protected.Group("/api")

	userRoutes := api.Group("/users")
	userRoutes.Use(middleware.RequireAdmin())
	{
		userRoutes.PATCH("/:username", authHandler.ResetPassword)
		userRoutes.DELETE("/:username", authHandler.DeleteUser)
	}

	// ========== Lookup Tables ==========
	lookupRepo := lookup.NewRepository(database.DB)
	resources := []lookupResource{
		{"halls", lookup.NewHandler(lookup.NewService(lookupRepo, auditSvc, lookup.TableHalls, "hall"))},
		{"programmes", lookup.NewHandler(lookup.NewService(lookupRepo, auditSvc, lookup.TableProgrammes, "programme"))},
		{"levels", lookup.NewHandler(lookup.NewService(lookupRepo, auditSvc, lookup.TableLevels, "level"))},
		{"congregations", lookup.NewHandler(lookup.NewService(lookupRepo, auditSvc, lookup.TableCongregations, "congregation"))},
		{"committees", lookup.NewHandler(lookup.NewService(lookupRepo, auditSvc, lookup.TableCommittees, "committee"))},
		{"categories", lookup.NewHandler(lookup.NewService(lookupRepo, auditSvc, lookup.TableCategories, "category"))},
		{"semesters", lookup.NewHandler(lookup.NewService(lookupRepo, auditSvc, lookup.TableSemesters, "semester"))},
	}

	for _, res := range resources {
		group := api.Group("/" + res.path)

		group.GET("", res.handler.List)
		group.GET("/:id", res.handler.GetByID)

		writeRoutes := group.Group("")
		writeRoutes.Use(middleware.RequireAdmin())
		{
			writeRoutes.POST("", res.handler.Create)
			writeRoutes.PATCH("/:id", res.handler.Update)
			writeRoutes.DELETE("/:id", res.handler.Delete)
		}
	}

	// ========== Members ==========
	memberRepo := member.NewRepository(database.DB)
	memberSvc := member.NewService(memberRepo, lookupRepo, authRepo, auditSvc)
	memberHandler := member.NewHandler(memberSvc)

	memberRoutes := api.Group("/members")
	{
		memberRoutes.POST("", memberHandler.Create)
		memberRoutes.GET("", middleware.RequireAdmin(), memberHandler.List)
		memberRoutes.GET("/:id", memberHandler.GetByID)
		memberRoutes.PATCH("/:id", memberHandler.Update)
		memberRoutes.DELETE("/:id", middleware.RequireAdmin(), memberHandler.Delete)
	}
	api.GET("/members_cards", middleware.RequireAdmin(), memberHandler.ListCards)

	// ========== Events ==========
	eventRepo := event.NewRepository(database.DB)
	eventSvc := event.NewService(eventRepo, lookupRepo, auditSvc)
	eventHandler := event.NewHandler(eventSvc)

	eventRoutes := api.Group("/events")
	{
		eventRoutes.GET("", eventHandler.List)
		eventRoutes.GET("/:id", eventHandler.GetByID)

		writeRoutes := eventRoutes.Group("")
		writeRoutes.Use(middleware.RequireAdmin())
		{
			writeRoutes.POST("", eventHandler.Create)
			writeRoutes.PATCH("/:id", eventHandler.Update)
			writeRoutes.DELETE("/:id", eventHandler.Delete)
			writeRoutes.POST("/:id/add_attendee", eventHandler.AddAttendee)
		}
	}

	// ========== Audit Logs (Admin Only) ==========
	auditRoutes := api.Group("/auditlogs")
	auditRoutes.Use(middleware.RequireAdmin())
	{
		auditRoutes.GET("", auditHandler.GetAuditLogs)
		auditRoutes.GET("/:id", auditHandler.GetAuditLogByID)
	}

	// ========== Reports (Admin Only) ==========
	reportsRepo := reports.NewRepository(database.DB)
	reportsExporter := reports.NewReportExporter()
	reportsService := reports.NewReportService(reportsRepo, reportsExporter, auditSvc)
	reportsHandler := reports.NewHandler(reportsService)

	reportRoutes := api.Group("/reports")
	reportRoutes.Use(middleware.RequireAdmin())
	{
		reportRoutes.GET("/members", reportsHandler.GetMembersReport)
		reportRoutes.GET("/attendance", reportsHandler.GetAttendanceReport)
	}
}
