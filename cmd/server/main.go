package main

import (
	"log"
	"os"
	"time"

	"github.com/jengzang/vacances-backend-go/internal/api"
	"github.com/jengzang/vacances-backend-go/internal/commands"
	"github.com/jengzang/vacances-backend-go/internal/config"
	"github.com/jengzang/vacances-backend-go/internal/database"
	"github.com/jengzang/vacances-backend-go/internal/gateway"
	"github.com/jengzang/vacances-backend-go/internal/metrics"
	"github.com/jengzang/vacances-backend-go/internal/middleware"
	"github.com/jengzang/vacances-backend-go/internal/models"
	"github.com/jengzang/vacances-backend-go/internal/repository"
	"github.com/jengzang/vacances-backend-go/internal/scheduler"
	"github.com/jengzang/vacances-backend-go/internal/service"
	"github.com/jengzang/vacances-backend-go/internal/ticker"
	"github.com/jengzang/vacances-backend-go/internal/vacation"
)

func main() {
	// 加载配置
	cfg := config.Load()

	if len(os.Args) > 1 && os.Args[1] == "issue-token" {
		commands.IssueToken(os.Args[2:], cfg.JWTSecret)
		return
	}

	loc := cfg.Location()
	policy, err := vacation.ParseMalformedPolicy(cfg.MalformedPolicy)
	if err != nil {
		log.Fatal("Invalid MALFORMED_POLICY:", err)
	}
	defaultZone, ok := models.ParseZone(cfg.DefaultZone)
	if !ok {
		log.Fatalf("Invalid DEFAULT_ZONE %q", cfg.DefaultZone)
	}

	// 初始化数据库
	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	collector, err := metrics.New(nil)
	if err != nil {
		log.Fatal("Failed to register metrics:", err)
	}

	client := gateway.NewClient(cfg.APIBaseURL, cfg.FetchTimeout,
		gateway.WithLocation(loc),
		gateway.WithMetrics(collector),
	)

	selections := repository.NewSelectionRepository(db)
	vacations := service.NewVacationService(client, repository.NewVacationCacheRepository(db), cfg.CacheTTL, loc, collector)
	resolver := vacation.NewResolver(vacation.WithLocation(loc), vacation.WithMalformedPolicy(policy))
	status := service.NewStatusService(vacations, selections, resolver, defaultZone, collector)

	// 定时刷新假期缓存
	if cfg.RefreshSchedule != "" {
		sched, err := scheduler.New(cfg.RefreshSchedule, vacations, time.Duration(2*len(models.Zones))*cfg.FetchTimeout, loc)
		if err != nil {
			log.Fatal("Failed to schedule refresh:", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
	defer limiter.Stop()

	// 初始化路由
	router := api.SetupRouter(cfg, api.Services{
		Vacations: vacations,
		Status:    status,
		Selection: service.NewSelectionService(selections),
		Metrics:   collector,
		Limiter:   limiter,
		Ticker:    ticker.Options{Interval: ticker.DefaultInterval},
	})

	// 启动服务器
	log.Printf("Server starting on port %s (zone default %s, timezone %s, malformed %s)", cfg.Port, defaultZone, loc, policy)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
