package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/logging"
	"storefront/internal/notify"
	"storefront/internal/repository"
	"storefront/internal/server"
	"storefront/internal/usecase"
	"storefront/internal/validator"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	//.envは任意
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//保存先とカタログ
	storage, products, closeFn, err := buildStorage(ctx, cfg)
	if err != nil {
		logger.Error("storage init failed", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	defer closeFn()

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := usecase.NewBcryptPasswordHasher(cfg.BcryptCost)
	verifier := usecase.NewBcryptPasswordVerifier()

	seed, err := usecase.NewRegisteredUser(hasher, 1, "Test User", "test@example.com", "password123")
	if err != nil {
		logger.Error("seed user failed", "error", err)
		os.Exit(1)
	}
	users := infraRepo.NewUserMemoryRepository(seed)

	//toast
	recorder := notify.NewRecorder(notify.DefaultCapacity)
	notifier := notify.Multi{recorder, notify.NewLogNotifier(logger)}

	var codec usecase.SessionCodec = usecase.JSONCodec{}
	if cfg.SessionSigningSecret != "" {
		codec = usecase.NewJWTCodec(cfg.SessionSigningSecret)
	}

	//Store生成
	cart := usecase.NewCartStore()
	session := usecase.NewSessionStore(users, storage, codec, hasher, verifier, notifier, usecase.SessionOptions{
		StorageKey: cfg.SessionKey,
		Delay:      cfg.LoginDelay,
		Logger:     logger,
	})
	session.Restore(ctx)

	//Usecase生成
	productUC := usecase.NewProductUsecase(products)
	checkoutUC := usecase.NewCheckoutUsecase(cart, notifier)

	//Handler生成
	e := server.New(logger, server.Handlers{
		Products:      handler.NewProductHandler(productUC),
		Cart:          handler.NewCartHandler(cart, productUC, checkoutUC),
		Auth:          handler.NewAuthHandler(session, validator.NewAuthValidator()),
		Notifications: handler.NewNotificationHandler(recorder),
	})

	//Server起動
	if err := server.Start(ctx, e, cfg.Addr(), logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// STORAGE_DRIVERごとにキーバリューストアとカタログを作る
func buildStorage(ctx context.Context, cfg config.Config) (repository.KeyValueStore, repository.ProductRepository, func(), error) {
	static := infraRepo.NewStaticProductRepository(infraRepo.SampleProducts())

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		gormDB, err := db.Connect(cfg.PostgresDSN())
		if err != nil {
			return nil, nil, nil, err
		}
		if err := db.Migrate(gormDB); err != nil {
			return nil, nil, nil, err
		}
		productRepo := infraRepo.NewProductGormRepository(gormDB)
		if err := productRepo.Seed(ctx, infraRepo.SampleProducts()); err != nil {
			return nil, nil, nil, err
		}
		closeFn := func() {
			if sqlDB, err := gormDB.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return infraRepo.NewKVGormStore(gormDB), productRepo, closeFn, nil

	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, nil, err
		}
		return infraRepo.NewKVRedisStore(client, infraRepo.DefaultRedisPrefix), static, func() { _ = client.Close() }, nil

	default:
		return infraRepo.NewKVMemoryStore(), static, func() {}, nil
	}
}
