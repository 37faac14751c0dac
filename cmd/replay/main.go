package main

import (
	"context"
	"flag"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"uniforms-pos/internal/catalog"
	"uniforms-pos/internal/configs"
	"uniforms-pos/internal/delivery/kafka"
	"uniforms-pos/internal/repository"
	"uniforms-pos/internal/repository/cache"
	"uniforms-pos/internal/repository/postgres"
	"uniforms-pos/internal/repository/xlsx"
	"uniforms-pos/internal/service"
)

// replay publishes every order of the sales store to kafka so that an
// empty or damaged mirror can be rebuilt.
func main() {
	timeout := flag.Duration("timeout", 5*time.Minute, "give up after this long")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Warnf("no .env loaded: %s", err)
	}

	cfg, err := configs.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("error loading config: %s", err)
	}
	logrus.Print("config loaded")

	var store repository.RowStore = xlsx.NewStore(cfg.StorePath)
	if cfg.StoreBackend == configs.BackendPostgres {
		db, err := postgres.ConnectDB(postgres.Config{URL: cfg.PgDSN()})
		if err != nil {
			logrus.Fatalf("postgres connect: %s", err)
		}
		defer db.Close()
		store = postgres.NewSaleRowRepo(db)
	}

	pub, err := kafka.NewPublisher(cfg.KafkaBrokersSlice(), cfg.KafkaTopic)
	if err != nil {
		logrus.Fatalf("kafka publisher connect error: %s", err)
	}
	defer func() {
		if cerr := pub.Close(); cerr != nil {
			logrus.Errorf("publisher close: %v", cerr)
		}
	}()
	logrus.Print("connected to kafka")

	kv := cache.NewCache(cache.WithNoJanitor())
	svc, err := service.NewSalesService(
		repository.NewSalesRepository(store, kv),
		catalog.NewFileStore(cfg.CatalogPath),
		pub,
	)
	if err != nil {
		logrus.Fatalf("sales service: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	n, err := svc.Replay(ctx)
	if err != nil {
		logrus.Fatalf("replay failed: %s", err)
	}
	logrus.Printf("replayed %d orders to %s", n, cfg.KafkaTopic)
}
