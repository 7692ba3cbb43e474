package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/a2z-projetos/app-codigos-projeto/internal/api/handlers"
	"github.com/a2z-projetos/app-codigos-projeto/internal/config"
	middlewares "github.com/a2z-projetos/app-codigos-projeto/internal/middleware"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository"
	"github.com/a2z-projetos/app-codigos-projeto/internal/services"
)

func SetupRouter(cfg *config.Config, store repository.Store, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	r.Use(middlewares.ExtractUserContext())
	r.Use(middlewares.RequestTiming())
	r.Use(middlewares.Metrics())
	r.Use(middlewares.RequestLogger(logger.Named("http")))

	optionService := services.NewOptionService(store, logger)
	codeService := services.NewCodeService(store, optionService, cfg.Allocation, logger)

	healthHandler := handlers.NewHealthHandler(store, cfg.StorageBackend, logger)
	versionHandler := handlers.NewVersionHandler()
	optionHandler := handlers.NewOptionHandler(optionService, logger)
	contractorHandler := handlers.NewContractorHandler(optionService, logger)
	codeHandler := handlers.NewCodeHandler(codeService, logger)
	legendHandler := handlers.NewLegendHandler(codeService, logger)

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)
	r.GET("/health", healthHandler.Health)
	r.GET("/version", versionHandler.GetVersion)

	api := r.Group("/api/v1")
	{
		opcoes := api.Group("/opcoes")
		{
			opcoes.GET("", optionHandler.ListAllOptions)
			opcoes.GET("/:categoria", optionHandler.ListOptions)
			opcoes.POST("/:categoria", optionHandler.CreateOption)
			opcoes.DELETE("/:categoria/:valor", optionHandler.DeactivateOption)
		}

		contratantes := api.Group("/contratantes")
		{
			contratantes.POST("", contractorHandler.CreateContractor)
			contratantes.GET("/abreviacao", contractorHandler.PreviewAbbreviation)
		}

		codigos := api.Group("/codigos")
		{
			codigos.GET("", codeHandler.ListCodes)
			codigos.POST("", codeHandler.CreateCode)
			codigos.GET("/proximo-numero", codeHandler.NextNumber)
			codigos.GET("/:id", codeHandler.GetCode)
			codigos.DELETE("/:id", codeHandler.DeleteCode)
			codigos.GET("/:id/legenda", legendHandler.CodeLegend)
		}

		api.GET("/legenda", legendHandler.DecodeLegend)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-User-ID, X-User-Name, traceparent")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
