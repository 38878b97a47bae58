package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"axie_backend/internal/app/di"
	"axie_backend/internal/app/router"
	"axie_backend/internal/config"
	authadapters "axie_backend/internal/feature/auth/adapters"
	authhandler "axie_backend/internal/feature/auth/transport/handler"
	authusecase "axie_backend/internal/feature/auth/usecase"
	axieadapters "axie_backend/internal/feature/axies/adapters"
	axieshandler "axie_backend/internal/feature/axies/transport/handler"
	axiesusecase "axie_backend/internal/feature/axies/usecase"
	"axie_backend/internal/feature/contract/adapters/ethereum"
	contracthandler "axie_backend/internal/feature/contract/transport/handler"
	contractusecase "axie_backend/internal/feature/contract/usecase"
	infradb "axie_backend/internal/platform/db"
	jwtmw "axie_backend/internal/platform/jwt"
	infraredis "axie_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.JWT.Secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// DB
	db := infradb.OpenDB(cfg.DB)

	// Redis (session store falls back to MySQL without it)
	var rdb *redisv9.Client
	if cfg.Redis.Host != "" {
		if tmp, err := infraredis.NewRedisClient(cfg.Redis); err != nil {
			log.Println("[WARN] Redis unavailable. Sessions will be stored in MySQL.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repositories
	userRepo := authadapters.NewUserMySQL(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	axieRepo := axieadapters.NewAxieRepository(db)
	marketplaceClient := di.NewMarketplaceClient(cfg.Marketplace)
	contractCaller, err := ethereum.NewCaller(cfg.Ethereum)
	if err != nil {
		log.Fatal(err)
	}

	// Usecases
	jwtGen := jwtmw.NewGenerator(cfg.JWT.Secret, cfg.JWT.AccessTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, jwtGen, cfg.JWT.RefreshTTL)
	syncUC := axiesusecase.NewSyncUsecase(marketplaceClient, axieRepo)
	axiesUC := axiesusecase.NewAxiesUsecase(axieRepo)
	contractUC := contractusecase.NewContractUsecase(contractCaller)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	axiesH := axieshandler.NewAxiesHandler(syncUC, axiesUC)
	contractH := contracthandler.NewContractHandler(contractUC)

	r := router.NewRouter(cfg.JWT.Secret, authH, axiesH, contractH)

	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}
