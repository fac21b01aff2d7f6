package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jengzang/vacances-backend-go/internal/config"
	"github.com/jengzang/vacances-backend-go/internal/handler"
	"github.com/jengzang/vacances-backend-go/internal/metrics"
	"github.com/jengzang/vacances-backend-go/internal/middleware"
	"github.com/jengzang/vacances-backend-go/internal/service"
	"github.com/jengzang/vacances-backend-go/internal/ticker"
)

// Services 路由依赖的服务
type Services struct {
	Vacations *service.VacationService
	Status    *service.StatusService
	Selection *service.SelectionService
	Metrics   *metrics.Collector
	// Limiter 每个 IP 的限流器，nil 表示不限流；由调用方负责 Stop
	Limiter *middleware.RateLimiter
	// Ticker 倒计时推送间隔，测试时可替换
	Ticker ticker.Options
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, svc Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger("/health", "/metrics"))
	r.Use(middleware.Metrics(svc.Metrics))

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Vacances Backend API is running",
		})
	})

	// Prometheus 指标
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(svc.Metrics.Gatherer(), promhttp.HandlerOpts{})))

	academyHandler := handler.NewAcademyHandler()
	vacationHandler := handler.NewVacationHandler(svc.Vacations)
	statusHandler := handler.NewStatusHandler(svc.Status)
	countdownHandler := handler.NewCountdownHandler(svc.Status, cfg.Location(), svc.Ticker)
	selectionHandler := handler.NewSelectionHandler(svc.Selection)
	adminHandler := handler.NewAdminHandler(svc.Vacations)

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(svc.Limiter))
	{
		// 学区
		academies := api.Group("/academies")
		{
			academies.GET("", academyHandler.GetAcademies)
			academies.GET("/nearest", academyHandler.GetNearest)
			academies.GET("/:id", academyHandler.GetAcademyByID)
		}

		// 假期数据
		vacations := api.Group("/vacations")
		{
			vacations.GET("", vacationHandler.GetVacations)
			vacations.GET("/all", vacationHandler.GetAllZones)
		}

		// 当前状态与倒计时
		api.GET("/status", statusHandler.GetStatus)
		api.GET("/countdown", countdownHandler.GetCountdown)
		api.GET("/countdown/stream", countdownHandler.Stream)

		// 手动选择的学区
		selection := api.Group("/selection")
		{
			selection.GET("", selectionHandler.GetSelection)
			selection.PUT("", selectionHandler.SetSelection)
			selection.DELETE("", selectionHandler.ClearSelection)
		}

		// 管理接口
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(cfg.JWTSecret))
		{
			admin.DELETE("/cache", adminHandler.ClearCache)
			admin.POST("/refresh", adminHandler.Refresh)
		}
	}

	return r
}
