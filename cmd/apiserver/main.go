package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pem/internal/app/config"
	"pem/internal/app/domains/entity/etalert"
	"pem/internal/app/domains/repo/rpproduct"
	"pem/internal/app/domains/services/svalert"
	"pem/internal/app/domains/services/svproduct"
	"pem/internal/app/domains/services/svrecipe"
	"pem/internal/app/infra/mq/lmstfy"
	"pem/internal/app/infra/persistence/mysql"
	"pem/internal/app/infra/persistence/redis"
	"pem/internal/app/notify"
	"pem/internal/app/pkg/logger"
	"pem/internal/app/scheduler"
	"pem/internal/app/server/handlers/alert"
	"pem/internal/app/server/handlers/product"
	"pem/internal/app/server/handlers/recipe"
	"pem/internal/app/server/routers"
)

func main() {
	// 1. 加载配置
	cfg, err := config.LoadDefault()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	// 2. 初始化日志
	appLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer appLogger.Sync()

	ctx := context.Background()
	appLogger.Infof(ctx, "[Main] Starting %s...", cfg.App.Name)

	// 3. 初始化基础设施组件
	db, err := mysql.NewDB(cfg.MySQL.DSN)
	if err != nil {
		log.Fatalf("Failed to init database: %v", err)
	}
	defer mysql.Close(db)

	if err := rpproduct.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	appLogger.Infof(ctx, "[Main] Database connected")

	if cfg.App.SeedDemoData {
		seeded, err := rpproduct.SeedDemoData(ctx, db)
		if err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		if seeded > 0 {
			appLogger.Infof(ctx, "[Main] Seeded %d demo products", seeded)
		}
	}

	// 4. 初始化 Repository 层
	productRepo := rpproduct.NewProductRepository(db)

	// 5. 初始化 Service 层
	productService := svproduct.NewProductService(productRepo)
	matcher := svrecipe.NewMatcher(svrecipe.NewCatalog())
	history := svalert.NewHistory(cfg.Alerts.HistoryCapacity, time.Now)
	windows := svalert.NewWindowCalculator(time.Now)

	// 6. 组装通知通道（console 常驻；redis / lmstfy 按配置启用）
	notifiers := []notify.Notifier{notify.NewConsoleNotifier(os.Stdout)}

	if cfg.Redis.Addr != "" {
		redisClient, err := redis.NewPubSubClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("Failed to init redis: %v", err)
		}
		defer redisClient.Close()
		notifiers = append(notifiers, notify.NewRedisNotifier(redisClient, cfg.Redis.Channel))
		appLogger.Infof(ctx, "[Main] Redis notifier enabled: %s", cfg.Redis.Addr)
	}

	if cfg.Lmstfy.Host != "" {
		lmstfyClient, err := lmstfy.NewClient(cfg.Lmstfy.Host, cfg.Lmstfy.Port, cfg.Lmstfy.Namespace, cfg.Lmstfy.Token)
		if err != nil {
			log.Fatalf("Failed to init lmstfy: %v", err)
		}
		notifiers = append(notifiers, notify.NewLmstfyNotifier(lmstfyClient, cfg.Lmstfy.Queue))
		appLogger.Infof(ctx, "[Main] Lmstfy notifier enabled: %s", cfg.Lmstfy.Host)
	}

	alertEngine := svalert.NewEngine(
		productRepo,
		matcher,
		history,
		notify.NewMulti(notifiers...),
		windows,
		cfg.Alerts.RecipeLimit,
		appLogger,
	)

	// 7. 初始化调度器（每个 cadence 独立定时器）
	manager := scheduler.NewManager(appLogger)
	for _, cadenceCfg := range cfg.Cadences {
		cadence, err := scheduler.NewCadence(cadenceCfg, scanFunc(alertEngine, cadenceCfg.Window), cfg.Alerts.ScanTimeout, appLogger)
		if err != nil {
			log.Fatalf("Failed to build cadence %s: %v", cadenceCfg.Name, err)
		}
		manager.Register(cadence)
	}

	schedulerCtx, cancelScheduler := context.WithCancel(context.Background())
	defer cancelScheduler()
	manager.Start(schedulerCtx)

	// 8. 初始化 Handler 层并启动 HTTP Server
	productHandler := product.NewProductHandler(productService, alertEngine)
	alertHandler := alert.NewAlertHandler(alertEngine)
	recipeHandler := recipe.NewRecipeHandler(matcher)

	engine := routers.SetupRoutes(productHandler, alertHandler, recipeHandler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: engine,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		appLogger.Infof(ctx, "[Main] HTTP server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	// 9. 优雅停机处理
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		appLogger.Infof(ctx, "[Main] Received shutdown signal, gracefully shutting down...")
		gracefulShutdown(server, manager, appLogger)
	case err := <-serverErrChan:
		log.Fatalf("HTTP server error: %v", err)
	}

	appLogger.Infof(ctx, "[Main] Application stopped")
}

// scanFunc 把 cadence 的窗口配置翻译成引擎扫描调用
func scanFunc(engine *svalert.Engine, window string) scheduler.ScanFunc {
	return func(ctx context.Context) error {
		var types []etalert.Type
		switch window {
		case config.CadenceWindowTomorrow:
			types = []etalert.Type{etalert.TypeTomorrow}
		case config.CadenceWindowWeek:
			types = []etalert.Type{etalert.TypeSevenDay}
		case config.CadenceWindowBoth:
			types = []etalert.Type{etalert.TypeSevenDay, etalert.TypeTomorrow}
		default:
			return fmt.Errorf("unknown cadence window %q", window)
		}

		var errs []error
		for _, alertType := range types {
			typedCtx := context.WithValue(ctx, "alert_type", string(alertType))
			if _, err := engine.RunScanNow(typedCtx, alertType); err != nil {
				errs = append(errs, fmt.Errorf("%s scan failed: %w", alertType, err))
			}
		}
		return errors.Join(errs...)
	}
}

// gracefulShutdown 优雅停机
func gracefulShutdown(server *http.Server, manager *scheduler.Manager, appLogger logger.Logger) {
	ctx := context.Background()

	// 1. 停止调度器（等待在途扫描收尾）
	appLogger.Infof(ctx, "[Main] Stopping scheduler...")
	manager.Shutdown()

	// 2. 停止 HTTP Server
	appLogger.Infof(ctx, "[Main] Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf(ctx, "[Main] HTTP server shutdown error: %v", err)
	} else {
		appLogger.Infof(ctx, "[Main] HTTP server stopped gracefully")
	}

	appLogger.Infof(ctx, "[Main] All services stopped gracefully")
}
