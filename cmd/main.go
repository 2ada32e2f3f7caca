package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/minhanle/skillcheck/config"
	admincrtl "github.com/minhanle/skillcheck/internal/controller/admin"
	candidatectrl "github.com/minhanle/skillcheck/internal/controller/candidate"
	"github.com/minhanle/skillcheck/internal/dto"
	"github.com/minhanle/skillcheck/internal/logger"
	"github.com/minhanle/skillcheck/internal/repository"
	"github.com/minhanle/skillcheck/internal/service"
	"github.com/minhanle/skillcheck/internal/store"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title Candidate Assessment API
// @version 1.0
// @description API for authoring multiple-choice questions, bundling them into timed assessments, gating candidate access behind an optional secret, and scoring submissions.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			NewFileStore, // provides *store.FileStore
			NewGinEngine, // provides *gin.Engine
		),

		// Repositories layer
		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewAssessmentRepository,
			repository.NewSubmissionRepository,
		),

		// Services layer
		fx.Provide(
			service.NewScoringService,
			service.NewPlainEqualityPolicy,
			service.NewAccessGate,
			service.NewQuestionService,
			service.NewAssessmentService,
			service.NewCandidateService,
			service.NewSubmissionService,
			service.NewGeminiQuestionService,
		),

		// API controllers layer
		fx.Provide(
			admincrtl.NewQuestionController,
			admincrtl.NewAssessmentController,
			admincrtl.NewSubmissionController,
			candidatectrl.NewCandidateController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewFileStore(cfg *config.Config) (*store.FileStore, error) {
	return store.NewFileStore(cfg.Storage.DataDir)
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Request logging through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))

	// Last-resort handler: uncaught panics become a generic 500.
	r.Use(gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", ctx.Request.URL.Path).Msg("Recovered from panic")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Assessment-Secret"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "route not found"})
	})

	// Swagger UI: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	questionCtrl *admincrtl.QuestionController,
	assessmentCtrl *admincrtl.AssessmentController,
	submissionCtrl *admincrtl.SubmissionController,
	candidateCtrl *candidatectrl.CandidateController,
) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "OK"})
	})

	api := router.Group("/api/v1")
	{
		questions := api.Group("/questions")
		questions.GET("", questionCtrl.GetAllQuestions)
		questions.POST("", questionCtrl.CreateQuestion)
		questions.POST("/generate", questionCtrl.GenerateQuestions)
		questions.GET("/:id", questionCtrl.GetQuestion)
		questions.PUT("/:id", questionCtrl.UpdateQuestion)
		questions.DELETE("/:id", questionCtrl.DeleteQuestion)

		assessments := api.Group("/assessments")
		assessments.GET("", assessmentCtrl.GetAllAssessments)
		assessments.POST("", assessmentCtrl.CreateAssessment)
		assessments.GET("/:id", assessmentCtrl.GetAssessmentDetails)
		assessments.GET("/:id/results", assessmentCtrl.GetAssessmentResults)
		assessments.GET("/:id/take", candidateCtrl.TakeAssessment)
		assessments.POST("/:id/submit", candidateCtrl.SubmitAssessment)

		submissions := api.Group("/submissions")
		submissions.GET("", submissionCtrl.GetAllSubmissions)
		submissions.GET("/:id", submissionCtrl.GetSubmissionDetails)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Assessment API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
