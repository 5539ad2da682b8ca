package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/ecomkit/order-lifecycle/docs"
	"github.com/ecomkit/order-lifecycle/internal/app"
	"github.com/ecomkit/order-lifecycle/internal/config"
	"github.com/ecomkit/order-lifecycle/internal/handler"
	"github.com/ecomkit/order-lifecycle/internal/notifier"
	"github.com/ecomkit/order-lifecycle/internal/postgres"
	"github.com/ecomkit/order-lifecycle/internal/repo"
	"github.com/ecomkit/order-lifecycle/internal/service"
	"github.com/ecomkit/order-lifecycle/pkg/cache"
	"github.com/ecomkit/order-lifecycle/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Order Lifecycle API
// @version         1.0
// @description     Order lifecycle and fulfillment tracking engine
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	events := notifier.NewKafkaNotifier(logger, conf.Kafka)
	defer events.Close()

	orderService := service.NewOrderService(logger, txManager, orderRepo, orderRepo, orderCache, events)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, orderService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(
		janitorStarter{cache: orderCache},
		warmUpStarter{svc: orderService, count: conf.Cache.Capacity},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type warmUpStarter struct {
	svc   warmUpper
	count int
}

func (s warmUpStarter) Start(ctx context.Context) error {
	return s.svc.WarmUpCache(ctx, s.count)
}

type janitorStarter struct {
	cache *cache.LRUCache
}

func (s janitorStarter) Start(ctx context.Context) error {
	s.cache.StartJanitor(ctx)
	return nil
}
