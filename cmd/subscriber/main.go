package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"uniforms-pos/internal/configs"
	httpdelivery "uniforms-pos/internal/delivery/http"
	"uniforms-pos/internal/delivery/kafka"
	"uniforms-pos/internal/repository"
	"uniforms-pos/internal/repository/cache"
	"uniforms-pos/internal/repository/postgres"
	"uniforms-pos/internal/service"
)

// @title uniforms sales mirror
// @version 1.0
// @description Consumes sale events from kafka, mirrors the sale rows into postgres and the app's cache and serves read-only reports over them.

// @host localhost:8081
// @basePath /

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	logrus.Print("config parsed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

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
	logrus.Print("connected to postgres")

	var kv cache.KV
	if cfg.CacheShards > 0 {
		sc := cache.NewShardedCache(cache.WithShards(cfg.CacheShards))
		defer sc.Close()
		kv = sc
	} else {
		c := cache.NewCache()
		defer c.Close()
		kv = c
	}

	repo := repository.NewMirrorRepository(db, kv)
	svc := service.NewMirrorService(repo)

	if err := svc.PutOrdersFromDbToCache(); err != nil {
		logrus.Fatalf("warm cache: %s", err)
	}
	logrus.Print("cache warmed from db")

	consumer := kafka.NewConsumer(kafka.Config{
		Brokers:     cfg.KafkaBrokersSlice(),
		GroupID:     cfg.KafkaGroupID,
		Topic:       cfg.KafkaTopic,
		DLQ:         cfg.KafkaDLQ,
		MaxRetries:  cfg.KafkaMaxRetries,
		BaseBackoff: cfg.KafkaBaseBackoff,
	}, svc)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := consumer.Subscribe(ctx); err != nil {
			logrus.Errorf("consumer stopped: %v", err)
			cancel()
		}
	}()
	logrus.Print("kafka subscription started")

	h := httpdelivery.NewHandler(svc)
	srv := new(httpdelivery.Server)

	go func() {
		if err := srv.Run(cfg.MirrorHTTPAddr, h.InitRoutes()); err != nil {
			logrus.Errorf("http run: %v", err)
			cancel()
		}
	}()
	logrus.Printf("http server started on %s", cfg.MirrorHTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
		logrus.Print("shutdown signal received")
	case <-ctx.Done():
		logrus.Print("context canceled, shutting down")
	}
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("http shutdown: %s", err)
	}

	if err := consumer.Close(); err != nil {
		logrus.Errorf("consumer close: %s", err)
	}

	wg.Wait()
	logrus.Print("service stopped")
}
