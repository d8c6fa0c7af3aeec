package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sticky-board-api/internal/handler"
	"sticky-board-api/internal/metrics"
	"sticky-board-api/internal/middleware"
	"sticky-board-api/internal/realtime"
	"sticky-board-api/internal/service"
)

// Config holds the dependencies for the router
type Config struct {
	DB          *gorm.DB
	Redis       *redis.Client
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
	BasePath    string
	CORSOrigins []string

	BoardService       service.BoardService
	NoteService        service.NoteService
	ParticipantService service.ParticipantService
	PresenceService    service.PresenceService
	Gateway            *realtime.Gateway
}

// Setup creates and configures the Gin router with all routes and middleware
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	boardHandler := handler.NewBoardHandler(cfg.BoardService, cfg.Logger)
	noteHandler := handler.NewNoteHandler(cfg.NoteService, cfg.Logger)
	participantHandler := handler.NewParticipantHandler(cfg.ParticipantService, cfg.Logger)
	presenceHandler := handler.NewPresenceHandler(cfg.PresenceService, cfg.Logger)

	var connections handler.ConnectionCounter
	if cfg.Gateway != nil {
		connections = cfg.Gateway.Hub()
	}
	healthHandler := handler.NewHealthHandler(cfg.DB, cfg.Redis, connections)

	// Health endpoints
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.Gateway != nil {
		r.GET("/ws", cfg.Gateway.Handle)
	}

	api := r.Group(cfg.BasePath)
	{
		boards := api.Group("/boards")
		{
			boards.POST("", boardHandler.CreateBoard)
			boards.GET("/:code", boardHandler.GetBoard)
			boards.GET("/:code/check", boardHandler.CheckBoard)
			boards.POST("/:code/access", boardHandler.AccessBoard)

			boards.GET("/:code/notes", noteHandler.GetNotes)
			boards.POST("/:code/notes", noteHandler.CreateNote)

			boards.DELETE("/:code/participants/:userId", participantHandler.RemoveParticipant)

			boards.POST("/:code/presence", presenceHandler.Heartbeat)
			boards.GET("/:code/presence", presenceHandler.GetRoster)
			boards.DELETE("/:code/presence/:userId", presenceHandler.Leave)
			boards.GET("/:code/user-panel-count", presenceHandler.UserPanelCount)
		}

		notes := api.Group("/notes")
		{
			notes.PATCH("/:noteId/position", noteHandler.MoveNote)
			notes.DELETE("/:noteId", noteHandler.DeleteNote)
		}

		api.GET("/users/:userId/boards", boardHandler.GetUserBoards)
	}

	return r
}
