package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/raffles-api/docs"
	v1 "github.com/vietanh2810/raffles-api/internal/api/handler/v1"
	"github.com/vietanh2810/raffles-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/raffles-api/internal/api/middleware"
	"github.com/vietanh2810/raffles-api/internal/cache"
	"github.com/vietanh2810/raffles-api/internal/config"
	"github.com/vietanh2810/raffles-api/internal/domain"
	"github.com/vietanh2810/raffles-api/internal/media"
	"github.com/vietanh2810/raffles-api/internal/repository"
	"github.com/vietanh2810/raffles-api/internal/repository/dao"
	"github.com/vietanh2810/raffles-api/internal/service"
	"github.com/vietanh2810/raffles-api/internal/session"
)

type Server struct {
	Config   *config.AppConfig
	Router   *gin.Engine
	Sessions *session.Manager
	Feed     *v1.FeedHandler
}

// NewServer wires every layer on top of db, the media store and the cache backend.
// The caller runs Feed and prunes Sessions.
func NewServer(conf *config.AppConfig, db *gorm.DB, mediaStore media.Store, cacheStore cache.Store) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()
	response.HideDetails(conf.API.IsProduction())

	s := &Server{
		Config: conf,
		Router: engine,
		Sessions: session.NewManager(repository.NewSessionRepository(dao.NewSessionDAO(db)), session.Config{
			SigningKey: conf.Session.SigningKey,
			Lifetime:   conf.Session.Lifetime,
			Secure:     conf.Session.Secure,
			Domain:     conf.Session.Domain,
		}),
		Feed: v1.NewFeedHandler(conf.API.AllowedCORSDomains),
	}

	s.MountMiddlewares()

	c := cache.New(cacheStore, conf.Cache.TTL)
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))

	authHandler := v1.NewAuthHandler(service.NewAuthService(userRepo))
	eventHandler := v1.NewEventHandler(service.NewEventService(eventRepo, c, mediaStore, s.Feed))
	raffleHandler := v1.NewRaffleHandler(service.NewRaffleService(
		repository.NewRaffleRepository(dao.NewRaffleDAO(db)),
		eventRepo,
		repository.NewParticipantRepository(dao.NewParticipantDAO(db)),
		c,
		mediaStore,
		s.Feed,
	))
	s.MountHandlers(service.NewUserService(userRepo), authHandler, eventHandler, raffleHandler)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.CustomRecovery(response.RenderPanic))
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	users middleware.UserService,
	authHandler *v1.AuthHandler,
	eventHandler *v1.EventHandler,
	raffleHandler *v1.RaffleHandler,
) {
	const basePath = "/api"

	api := s.Router.Group(basePath, middleware.StartSession(s.Sessions))
	{
		api.GET("/csrf-cookie", authHandler.HandleCSRFCookie)
		api.POST("/auth/login", authHandler.HandleLogin)
		api.POST("/auth/register", authHandler.HandleRegister)
	}

	authed := api.Group("", middleware.VerifyCSRF(), middleware.Authenticate(users))
	{
		authed.POST("/auth/logout", authHandler.HandleLogout)
		authed.GET("/auth/me", authHandler.HandleMe)

		authed.GET("/events", eventHandler.HandleListEvents)
		authed.POST("/events", eventHandler.HandleCreateEvent)
		authed.GET("/events/:eventID", eventHandler.HandleGetEvent)
		authed.PATCH("/events/:eventID", eventHandler.HandleUpdateEvent)
		authed.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)

		authed.GET("/raffles", raffleHandler.HandleListRaffles)
		authed.POST("/raffles", raffleHandler.HandleCreateRaffle)
		authed.GET("/raffles/:raffleID", raffleHandler.HandleGetRaffle)
		authed.PATCH("/raffles/:raffleID", raffleHandler.HandleUpdateRaffle)
		authed.DELETE("/raffles/:raffleID", raffleHandler.HandleDeleteRaffle)

		authed.GET("/feed", s.Feed.HandleFeed)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.NoRoute(func(ctx *gin.Context) {
		response.RenderError(ctx, domain.ErrNotFound)
	})

	if s.Config.Media.Driver == "local" {
		s.Router.Static("/media", s.Config.Media.Local.Path)
	}

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Raffles API"
	docs.SwaggerInfo.Description = "Events, raffles and their prize photos."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
