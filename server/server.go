package server

import (
	"time"

	"pathfinder-server/confs"
	"pathfinder-server/db"
	"pathfinder-server/handlers"
	httpHandler "pathfinder-server/handlers/http"
	"pathfinder-server/repositories"
	"pathfinder-server/services"
	"pathfinder-server/usecases"
	"pathfinder-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app    *gin.Engine
	db     db.Database
	mentor *services.Mentor
}

func NewServer(database db.Database, mentor *services.Mentor) *Server {
	return &Server{
		app:    gin.Default(),
		db:     database,
		mentor: mentor,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		if err := s.db.Ping(); err != nil {
			c.JSON(503, gin.H{
				"status": "unavailable",
				"error":  "database unreachable",
			})
			return
		}
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	pathRepo := repositories.NewCareerPathPgRepository(s.db)
	stepRepo := repositories.NewPathStepPgRepository(s.db)
	convRepo := repositories.NewConversationPgRepository(s.db)
	portfolioRepo := repositories.NewPortfolioPgRepository(s.db)
	achievementRepo := repositories.NewAchievementPgRepository(s.db)
	analyticsRepo := repositories.NewAnalyticsPgRepository(s.db)
	resourceRepo := repositories.NewResourcePgRepository(s.db)

	// WebSocket manager doubles as the achievement notifier
	manager := ws.NewManager()

	// Activity recorder buffers analytics writes and flushes on an interval
	recorder := services.NewActivityRecorder(analyticsRepo, 5*time.Minute)
	recorder.Start()

	// Initialize use cases
	authUseCase := usecases.NewAuthUseCase(userRepo, confs.JWTSecret())

	// The mentor is optional; features that need it degrade gracefully
	var mentor usecases.MentorService
	if s.mentor != nil {
		mentor = s.mentor
	}
	careerUseCase := usecases.NewCareerUseCase(pathRepo, stepRepo, achievementRepo, mentor, manager)
	convUseCase := usecases.NewConversationUseCase(convRepo, mentor)
	portfolioUseCase := usecases.NewPortfolioUseCase(portfolioRepo, mentor)
	analyticsUseCase := usecases.NewAnalyticsUseCase(analyticsRepo, recorder)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUseCase)
	pathHandler := httpHandler.NewCareerPathHandler(careerUseCase)
	stepHandler := httpHandler.NewPathStepHandler(careerUseCase)
	convHandler := httpHandler.NewConversationHandler(convUseCase)
	portfolioHandler := httpHandler.NewPortfolioHandler(portfolioUseCase)
	analyticsHandler := httpHandler.NewAnalyticsHandler(analyticsUseCase)
	profileHandler := httpHandler.NewProfileHandler(authUseCase)
	resourceHandler := httpHandler.NewResourceHandler(resourceRepo)
	activityHandler := handlers.NewActivityHandler(recorder)
	wsHandler := handlers.NewWSHandler(manager, authUseCase)

	authRequired := httpHandler.AuthMiddleware(authUseCase)

	// Setup API routes
	api := s.app.Group("/api")
	{
		// Auth routes (register/login are public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", authRequired, authHandler.Me)
		}

		// Career path routes
		paths := api.Group("/career-paths", authRequired)
		{
			paths.POST("", pathHandler.CreatePath)
			paths.GET("", pathHandler.ListPaths)
			paths.GET("/:id", pathHandler.GetPath)
			paths.PATCH("/:id", pathHandler.UpdatePath)
			paths.GET("/:id/steps", pathHandler.ListSteps)
			paths.POST("/:id/steps", pathHandler.CreateStep)
		}

		// Completing a step awards an achievement
		api.PATCH("/path-steps/:id", authRequired, stepHandler.UpdateStep)
		api.GET("/achievements", authRequired, pathHandler.ListAchievements)

		// Mentor conversation routes
		conversations := api.Group("/conversations", authRequired)
		{
			conversations.POST("", convHandler.CreateConversation)
			conversations.GET("", convHandler.ListConversations)
			conversations.GET("/:id", convHandler.GetConversation)
			conversations.POST("/:id/messages", convHandler.SendMessage)
		}

		// Portfolio routes
		portfolio := api.Group("/portfolio", authRequired)
		{
			portfolio.POST("", portfolioHandler.CreateProject)
			portfolio.GET("", portfolioHandler.ListProjects)
			portfolio.PATCH("/:id", portfolioHandler.UpdateProject)
			portfolio.POST("/:id/evaluate", portfolioHandler.EvaluateProject)
		}

		// Analytics routes
		analytics := api.Group("/analytics", authRequired)
		{
			analytics.GET("", analyticsHandler.GetWindow)
			analytics.POST("/events", analyticsHandler.RecordEvent)
			analytics.POST("/flush", activityHandler.FlushBuffer)
			analytics.GET("/buffer", activityHandler.GetBufferedEvents)
			analytics.GET("/buffer/stats", activityHandler.GetBufferStats)
		}

		// Resource catalog
		api.GET("/resources", authRequired, resourceHandler.ListResources)

		// Profile routes
		user := api.Group("/user", authRequired)
		{
			user.GET("/profile", profileHandler.GetProfile)
			user.PUT("/profile", profileHandler.UpdateProfile)
		}

		api.GET("/users/connected", authRequired, wsHandler.GetConnectedUsers)
	}

	// Notification channel; authenticates via token query param
	s.app.GET("/ws", wsHandler.HandleUserWS)

	if err := s.app.Run("0.0.0.0:" + confs.Port()); err != nil {
		panic(err)
	}
}
