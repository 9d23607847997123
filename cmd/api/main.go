package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"github.com/shravanjnaidu/spicetrade/internal/adapter/api"
	"github.com/shravanjnaidu/spicetrade/internal/adapter/api/handler"
	apimiddleware "github.com/shravanjnaidu/spicetrade/internal/adapter/api/middleware"
	"github.com/shravanjnaidu/spicetrade/internal/adapter/api/router"
	"github.com/shravanjnaidu/spicetrade/internal/adapter/repository"
	"github.com/shravanjnaidu/spicetrade/internal/infrastructure/auth"
	"github.com/shravanjnaidu/spicetrade/internal/infrastructure/storage"
	"github.com/shravanjnaidu/spicetrade/internal/usecase"
	"github.com/shravanjnaidu/spicetrade/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	credentialsPath := os.Getenv("GCP_SERVICE_ACCOUNT_PATH")
	if credentialsPath != "" {
		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", credentialsPath)
		}
		log.Printf("Using service account from file: %s", credentialsPath)
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.GCPProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	listingRepo := repository.NewFirestoreListingRepository(firestoreClient)
	conversationRepo := repository.NewFirestoreConversationRepository(firestoreClient)
	wishlistRepo := repository.NewFirestoreWishlistRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)

	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	authUseCase := usecase.NewAuthUseCase(userRepo, tokenManager)
	userUseCase := usecase.NewUserUseCase(userRepo)
	listingUseCase := usecase.NewListingUseCase(listingRepo, userRepo)
	messagingUseCase := usecase.NewMessagingUseCase(conversationRepo, userRepo, listingRepo)
	wishlistUseCase := usecase.NewWishlistUseCase(wishlistRepo, listingRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, listingRepo, userRepo)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenManager)

	router.Setup(e, router.Handlers{
		Auth:     handler.NewAuthHandler(authUseCase),
		User:     handler.NewUserHandler(userUseCase),
		Listing:  handler.NewListingHandler(listingUseCase),
		Message:  handler.NewMessageHandler(messagingUseCase),
		Wishlist: handler.NewWishlistHandler(wishlistUseCase),
		Review:   handler.NewReviewHandler(reviewUseCase),
		File:     handler.NewFileHandler(storageClient),
		Health:   handler.NewHealthHandler(),
	}, authMiddleware)

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
