package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"uniforms-pos/internal/catalog"
	"uniforms-pos/internal/configs"
	httpdelivery "uniforms-pos/internal/delivery/http"
	"uniforms-pos/internal/delivery/kafka"
	"uniforms-pos/internal/repository"
	"uniforms-pos/internal/repository/cache"
	"uniforms-pos/internal/repository/postgres"
	"uniforms-pos/internal/repository/xlsx"
	"uniforms-pos/internal/service"
)

// @title uniforms POS
// @version 1.0
// @description Point of sale for a school uniform shop: drafts, orders, payments, fabric and backups.

// @host localhost:8080
// @basePath /

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	logrus.Print("config parsed")

	var store repository.RowStore
	switch cfg.StoreBackend {
	case configs.BackendPostgres:
		db, err := postgres.ConnectDB(postgres.Config{URL: cfg.PgDSN()})
		if err != nil {
			logrus.Fatalf("postgres connect: %s", err)
		}
		defer func() {
			if derr := db.Close(); derr != nil {
				logrus.Errorf("db close: %v", derr)
			}
		}()
		if err := postgres.Migrate(db); err != nil {
			logrus.Fatalf("postgres migrate: %s", err)
		}
		store = postgres.NewSaleRowRepo(db)
		logrus.Print("sales store: postgres")
	default:
		store = xlsx.NewStore(cfg.StorePath)
		logrus.Printf("sales store: %s", cfg.StorePath)
	}

	kv, closeKV := newKV(cfg)
	defer closeKV()

	var events service.EventPublisher = service.NopPublisher{}
	if cfg.KafkaEnabled {
		pub, err := kafka.NewPublisher(cfg.KafkaBrokersSlice(), cfg.KafkaTopic)
		if err != nil {
			logrus.Fatalf("kafka publisher: %s", err)
		}
		defer func() {
			if cerr := pub.Close(); cerr != nil {
				logrus.Errorf("publisher close: %v", cerr)
			}
		}()
		events = pub
		logrus.Printf("publishing sale events to %s", cfg.KafkaTopic)
	}

	svc, err := service.NewSalesService(
		repository.NewSalesRepository(store, kv),
		catalog.NewFileStore(cfg.CatalogPath),
		events,
	)
	if err != nil {
		logrus.Fatalf("sales service: %s", err)
	}

	h := httpdelivery.NewPOSHandler(svc)
	srv := new(httpdelivery.Server)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run(cfg.POSHTTPAddr, h.InitRoutes())
	}()
	logrus.Printf("http server started on %s", cfg.POSHTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
		logrus.Print("shutdown signal received")
	case err := <-errCh:
		logrus.Errorf("http run: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("http shutdown: %s", err)
	}
	logrus.Print("service stopped")
}

// newKV picks the draft cache backing. Drafts expire after DraftTTL.
func newKV(cfg configs.Config) (cache.KV, func()) {
	if cfg.CacheShards > 0 {
		c := cache.NewShardedCache(cache.WithShards(cfg.CacheShards), cache.WithShardTTL(cfg.DraftTTL))
		return c, c.Close
	}
	c := cache.NewCache(cache.WithTTL(cfg.DraftTTL))
	return c, c.Close
}
