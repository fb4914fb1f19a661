package main

import (
	"context"
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"shop_backend/internal/app/di"
	"shop_backend/internal/app/router"
	"shop_backend/internal/config"
	accountadapters "shop_backend/internal/feature/account/adapters"
	accounthandler "shop_backend/internal/feature/account/transport/handler"
	accountusecase "shop_backend/internal/feature/account/usecase"
	catalogadapters "shop_backend/internal/feature/catalog/adapters"
	cataloghandler "shop_backend/internal/feature/catalog/transport/handler"
	catalogusecase "shop_backend/internal/feature/catalog/usecase"
	platformmongo "shop_backend/internal/platform/mongo"
	platformredis "shop_backend/internal/platform/redis"
)

func main() {
	cfg := config.Load()

	// MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := platformmongo.NewClient(ctx, cfg.MongoURI)
	cancel()
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println("[ERROR] Failed to disconnect MongoDB client:", err)
		}
	}()

	db := client.Database(cfg.MongoDB)

	// usersコレクションのユニークインデックス（signupのレース防止）
	if err := platformmongo.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	// Redis（任意。接続できない場合はキャッシュなしで稼働）
	var rdb *redisv9.Client
	if cfg.RedisAddr == "" {
		log.Println("[INFO] REDIS_HOST not set. Running without cache.")
	} else if tmp, err := platformredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := accountadapters.NewUserMongo(db)
	productRepo := catalogadapters.NewProductMongo(db)

	// Redisキャッシュでラップ
	cachedProductRepo := di.NewProductRepository(rdb, cfg.CacheTTL, productRepo)

	// Usecase
	accountUC := accountusecase.NewAccountUsecase(userRepo)
	catalogUC := catalogusecase.NewCatalogUsecase(cachedProductRepo)

	// Handler
	accountH := accounthandler.NewAccountHandler(accountUC)
	catalogH := cataloghandler.NewCatalogHandler(catalogUC)

	// ルータ生成
	r := router.NewRouter(accountH, catalogH)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
