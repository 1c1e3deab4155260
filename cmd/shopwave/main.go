package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/priyanshi012/studio/internal/auth"
	"github.com/priyanshi012/studio/internal/cart"
	"github.com/priyanshi012/studio/internal/catalog"
	"github.com/priyanshi012/studio/internal/checkout"
	"github.com/priyanshi012/studio/internal/events"
	"github.com/priyanshi012/studio/internal/history"
	shophttp "github.com/priyanshi012/studio/internal/http"
	"github.com/priyanshi012/studio/internal/orders"
	"github.com/priyanshi012/studio/internal/recs"
	"github.com/priyanshi012/studio/internal/session"
	"github.com/priyanshi012/studio/internal/telemetry"
)

const serviceVersion = "1.0.0"

type Config struct {
	HTTPPort        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	SessionStore string // memory, redis or mongo
	RedisAddr    string
	RedisPass    string
	MongoURI     string
	MongoDBName  string

	CatalogDBPath  string
	MigrationsPath string

	KafkaBrokers string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	OtelEndpoint string
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,

		SessionStore: getEnv("SESSION_STORE", "memory"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:    getEnv("REDIS_PASSWORD", ""),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:  getEnv("MONGO_DB_NAME", "shopwave"),

		CatalogDBPath:  getEnv("CATALOG_DB_PATH", ""),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./internal/catalog/migrations"),

		KafkaBrokers: getEnv("KAFKA_BROKERS", ""),

		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		OtelEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	if cfg.OtelEndpoint != "" {
		shutdown, err := telemetry.InitTracerProvider(ctx, cfg.OtelEndpoint, "shopwave", serviceVersion)
		if err != nil {
			log.Fatalf("Failed to init tracing: %v", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("tracer shutdown: %v", err)
			}
		}()
	}

	sessions := newSessionStore(ctx, cfg)
	catalogStore := newCatalogStore(ctx, cfg)

	publisher := newPublisher(cfg)
	defer publisher.Close()

	oracle := newOracle(cfg)

	cartService := cart.NewService(sessions, cart.LogNotifier{})
	authService := auth.NewService(sessions)
	tracker := history.NewTracker(sessions)
	recsService := recs.NewService(catalogStore, oracle)
	checkoutService := checkout.NewService(checkout.AlwaysApprove{})
	orderStore := orders.NewStore(sessions)

	router := shophttp.NewRouter(shophttp.Deps{
		Catalog:        catalogStore,
		Sessions:       sessions,
		Cart:           cartService,
		Auth:           authService,
		History:        tracker,
		Recs:           recsService,
		Checkout:       checkoutService,
		Orders:         orderStore,
		Events:         publisher,
		RequestTimeout: cfg.RequestTimeout,
	})

	var handler http.Handler = router
	if cfg.OtelEndpoint != "" {
		handler = otelhttp.NewHandler(router, "shopwave")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("ShopWave starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}

func newSessionStore(ctx context.Context, cfg *Config) session.Store {
	switch cfg.SessionStore {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       0,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatal("Redis connection failed:", err)
		}
		log.Printf("Sessions backed by Redis at %s", cfg.RedisAddr)
		return session.NewRedisStore(client)

	case "mongo":
		db, err := session.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		store := session.NewMongoStore(db)
		if err := store.CreateIndexes(ctx); err != nil {
			log.Fatalf("Failed to create session indexes: %v", err)
		}
		log.Printf("Sessions backed by MongoDB at %s", cfg.MongoURI)
		return store

	default:
		log.Printf("Sessions backed by process memory")
		return session.NewMemoryStore()
	}
}

func newCatalogStore(ctx context.Context, cfg *Config) catalog.Store {
	if cfg.CatalogDBPath == "" {
		return catalog.NewMemoryStore()
	}

	repo, err := catalog.NewRepository(cfg.CatalogDBPath)
	if err != nil {
		log.Fatalf("Failed to open catalog database: %v", err)
	}
	defer repo.Close()

	if err := repo.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run catalog migrations: %v", err)
	}

	products, err := repo.LoadProducts(ctx)
	if err != nil {
		log.Fatalf("Failed to load products: %v", err)
	}
	categories, err := repo.LoadCategories(ctx)
	if err != nil {
		log.Fatalf("Failed to load categories: %v", err)
	}

	store := catalog.NewEmptyMemoryStore()
	store.Load(products, categories)
	log.Printf("Loaded %d products from %s", len(products), cfg.CatalogDBPath)
	return store
}

func newPublisher(cfg *Config) events.Publisher {
	if cfg.KafkaBrokers == "" {
		return events.NopPublisher{}
	}
	brokers := strings.Split(cfg.KafkaBrokers, ",")
	log.Printf("Publishing order events to Kafka at %s", cfg.KafkaBrokers)
	return events.NewKafkaPublisher(brokers...)
}

func newOracle(cfg *Config) recs.Oracle {
	if cfg.OpenAIAPIKey == "" {
		log.Printf("OPENAI_API_KEY not set, recommendations will degrade to empty")
	}
	return recs.NewOpenAIOracle(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
}
