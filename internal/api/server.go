package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/h3tools/hashtrack/docs"
	v1 "github.com/h3tools/hashtrack/internal/api/handler/v1"
	"github.com/h3tools/hashtrack/internal/api/middleware"
	"github.com/h3tools/hashtrack/internal/config"
	"github.com/h3tools/hashtrack/internal/repository"
	"github.com/h3tools/hashtrack/internal/repository/dao"
	"github.com/h3tools/hashtrack/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	userSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	authHandler := s.initAuthHandler(db)
	userHandler := v1.NewUserHandler(userSvc)
	hasherHandler, absenteeLister := s.initHasherHandler(db)
	eventHandler := s.initEventHandler(db, absenteeLister)
	kennelHandler := s.initKennelHandler(db)
	honorHandler := s.initHonorHandler(db)

	s.MountHandlers(userSvc, authHandler, userHandler, hasherHandler, eventHandler, kennelHandler, honorHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initHasherHandler(db *gorm.DB) (*v1.HasherHandler, *service.HasherService) {
	hasherDAO := dao.NewHasherDAO(db)
	repo := repository.NewHasherRepository(hasherDAO)
	svc := service.NewHasherService(repo)
	handler := v1.NewHasherHandler(svc)

	return handler, svc
}

func (s *Server) initEventHandler(db *gorm.DB, hasherSvc *service.HasherService) *v1.EventHandler {
	eventDAO := dao.NewEventDAO(db)
	repo := repository.NewEventRepository(eventDAO)
	svc := service.NewEventService(repo)
	handler := v1.NewEventHandler(svc, hasherSvc)

	return handler
}

func (s *Server) initKennelHandler(db *gorm.DB) *v1.KennelHandler {
	kennelDAO := dao.NewKennelDAO(db)
	repo := repository.NewKennelRepository(kennelDAO)
	svc := service.NewKennelService(repo)
	handler := v1.NewKennelHandler(svc)

	return handler
}

func (s *Server) initHonorHandler(db *gorm.DB) *v1.HonorHandler {
	honorDAO := dao.NewHonorDAO(db)
	repo := repository.NewHonorRepository(honorDAO)
	svc := service.NewHonorService(repo)
	handler := v1.NewHonorHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	userSvc *service.UserService,
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	hasherHandler *v1.HasherHandler,
	eventHandler *v1.EventHandler,
	kennelHandler *v1.KennelHandler,
	honorHandler *v1.HonorHandler,
) {
	const basePath = "/api/v1"

	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()
	guard := middleware.NewPermissionGuard(userSvc)

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/token", authHandler.HandleExchangeToken)
	}

	profile := s.Router.Group(basePath, verifyJWT)
	{
		profile.GET("/profile", userHandler.HandleGetProfile)
		profile.PUT("/profile", userHandler.HandleUpdateProfile)
	}

	// Everything below mirrors the data-entry desk: browsing, editing
	// and award bookkeeping all require the data_entry permission.
	dataEntry := s.Router.Group(basePath, verifyJWT, guard.RequireDataEntry())
	{
		dataEntry.GET("/hashers", hasherHandler.HandleListRecentHashers)
		dataEntry.GET("/hashers/search", hasherHandler.HandleSearchHashers)
		dataEntry.POST("/hashers", hasherHandler.HandleCreateHasher)
		dataEntry.GET("/hashers/:hasherID", hasherHandler.HandleGetHasher)
		dataEntry.PUT("/hashers/:hasherID", hasherHandler.HandleUpdateHasher)

		dataEntry.GET("/events", eventHandler.HandleListRecentEvents)
		dataEntry.GET("/events/search", eventHandler.HandleSearchEvents)
		dataEntry.POST("/events", eventHandler.HandleCreateEvent)
		dataEntry.GET("/events/:eventID", eventHandler.HandleGetEvent)
		dataEntry.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		dataEntry.POST("/events/:eventID/hashers", eventHandler.HandleLinkHasher)
		dataEntry.DELETE("/events/:eventID/hashers", eventHandler.HandleUnlinkHashers)
		dataEntry.GET("/events/:eventID/absent-hashers", eventHandler.HandleListAbsentHashers)

		dataEntry.GET("/events/:eventID/honors-due", honorHandler.HandleHonorsDueForEvent)
		dataEntry.POST("/events/:eventID/deliveries", honorHandler.HandleRecordDeliveries)
		dataEntry.GET("/kennels", kennelHandler.HandleListKennels)
		dataEntry.GET("/kennels/:kennelID", kennelHandler.HandleGetKennel)
		dataEntry.GET("/kennels/:kennelID/honors-due", honorHandler.HandleHonorsDueForKennel)
		dataEntry.GET("/kennels/:kennelID/honor-defs", honorHandler.HandleListHonorDefs)
	}

	admin := s.Router.Group(basePath, verifyJWT, guard.RequireAdmin())
	{
		admin.POST("/kennels", kennelHandler.HandleCreateKennel)
		admin.POST("/kennels/:kennelID/honor-defs", honorHandler.HandleCreateHonorDef)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "hashtrack API"
	docs.SwaggerInfo.Description = "Membership, event and honor tracking for hash kennels."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
