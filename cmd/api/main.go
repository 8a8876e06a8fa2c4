package main

import (
	"log"

	"github.com/joho/godotenv"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"
)

func main() {
	// .envは無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Publisher{},
		&model.Genre{},
		&model.Game{},
		&model.LibraryEntry{},
		&model.Review{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	gameRepo := infraRepo.NewGameGormRepository(gormDB)
	publisherRepo := infraRepo.NewPublisherGormRepository(gormDB)
	genreRepo := infraRepo.NewGenreGormRepository(gormDB)
	libraryRepo := infraRepo.NewLibraryGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)

	//usecaseに渡す部品
	hasher := usecase.NewBcryptPasswordHasher(12)
	verifier := usecase.NewBcryptPasswordVerifier()
	clock := &usecase.RealClock{}

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, userRepo, hasher, verifier, clock)
	catalogUC := usecase.NewCatalogUsecase(gameRepo, publisherRepo, genreRepo, cfg.MediaBaseURL)
	libraryUC := usecase.NewLibraryUsecase(libraryRepo, gameRepo, cfg.MediaBaseURL)
	cartUC := usecase.NewCartUsecase(cartRepo, cartRepo, gameRepo, cfg.MediaBaseURL)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, gameRepo, userRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo)

	//Handler生成
	handlers := server.Handlers{
		Auth:    handler.NewAuthHandler(authUC),
		Catalog: handler.NewCatalogHandler(catalogUC),
		Library: handler.NewLibraryHandler(libraryUC),
		Cart:    handler.NewCartHandler(cartUC),
		Review:  handler.NewReviewHandler(reviewUC),
		Order:   handler.NewOrderHandler(orderUC),
	}

	//Server起動
	addr := cfg.Port
	if addr == "" {
		addr = "8080"
	}
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(addr, cfg, handlers); err != nil {
		log.Fatalf("server: %v", err)
	}
}
