package routes

import (
	"log"

	"bakery-shop/config"
	"bakery-shop/libs"
	"bakery-shop/middleware"
	"bakery-shop/repositories"
	"bakery-shop/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Bootstrap connects the database and optional integrations and returns a
// ready router. The returned cleanup closes the connections.
func Bootstrap(cfg *config.Config, migrate bool) (*gin.Engine, func(), error) {
	pool, err := config.ConnectDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	if migrate {
		if err := config.RunMigrations(cfg.DSN()); err != nil {
			pool.Close()
			return nil, nil, err
		}
	}

	redisClient := config.ConnectRedis(cfg)
	cleanup := func() {
		closeRedis(redisClient)
		config.CloseDB()
	}

	svc := newServices(cfg, repositories.NewCatalogRepository(pool), repositories.NewFeedbackRepository(pool), redisClient)
	return NewRouter(cfg, svc), cleanup, nil
}

// BootstrapMemory serves the seeded catalog from memory. Feedback lives only
// as long as the process.
func BootstrapMemory(cfg *config.Config) (*gin.Engine, func()) {
	redisClient := config.ConnectRedis(cfg)
	catalog := repositories.SeededMemoryCatalog()

	svc := newServices(cfg, catalog, catalog, redisClient)
	return NewRouter(cfg, svc), func() { closeRedis(redisClient) }
}

func closeRedis(client *redis.Client) {
	if client != nil {
		client.Close()
	}
}

func newServices(cfg *config.Config, catalog repositories.CatalogRepository, feedback repositories.FeedbackRepository, redisClient *redis.Client) Services {
	var images services.ImageResolver
	if cfg.CloudinaryURL != "" {
		cld, err := libs.NewCloudinaryImages(cfg.CloudinaryURL)
		if err != nil {
			log.Printf("Cloudinary disabled: %v", err)
		} else {
			images = cld
		}
	}

	var notifier services.Notifier
	mailer, err := libs.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.NotifyTo)
	if err != nil {
		log.Printf("Feedback notifications disabled: %v", err)
	} else {
		notifier = mailer
	}

	return Services{
		Catalog:  services.NewCatalogService(catalog, services.NewCache(redisClient, cfg.CacheTTL), images),
		Feedback: services.NewFeedbackService(feedback, notifier),
		Auth:     services.NewAuthService(cfg.AdminUsername, cfg.AdminPasswordHash, cfg.JWTSecret, cfg.JWTExpiry),
	}
}

// NewRouter builds the gin engine with logging, recovery, CORS and every
// storefront route.
func NewRouter(cfg *config.Config, svc Services) *gin.Engine {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))
	SetupRoutes(router, svc)
	return router
}
