package handlers

import (
	"reflect"

	"github.com/fundledger/fundledger-backend/internal/core/ports"
	"github.com/fundledger/fundledger-backend/internal/middleware"
	"github.com/fundledger/fundledger-backend/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service facade interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	limiterInstance *limiter.Limiter,
	ledgerService ports.LedgerSvcFacade,
	userService ports.UserSvcFacade,
) {
	registerDecimalValidation()

	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := r.Group("/api/v1", middleware.RateLimit(limiterInstance))
	registerAccountRoutes(v1, ledgerService)
	registerUserRoutes(v1, userService)

	setupSwaggerRoutes(r, cfg)
}

// registerDecimalValidation teaches gin's validator how to treat
// decimal.Decimal fields so tags like gt can apply to them.
func registerDecimalValidation() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})
	}
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
