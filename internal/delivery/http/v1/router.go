package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/auth"
)

type RouterDeps struct {
	ContactUC    domain.ContactUsecase
	UserUC       domain.UserUsecase
	PortfolioUC  domain.PortfolioUsecase
	UserRepo     domain.UserRepository
	JWKSProvider *auth.Provider
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	public := r.Group("")

	// Health check
	public.GET("/health", func(c *gin.Context) {
		response.Message(c, http.StatusOK, "System operational")
	})

	// Swagger
	public.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.UserRepo))

	NewContactHandler(public, protected, deps.ContactUC)
	NewUserHandler(public, protected, deps.UserUC)
	NewPortfolioHandler(public, deps.PortfolioUC)

	return r
}
