package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/company-registry/app/config"
	"github.com/company-registry/app/controllers"
	"github.com/company-registry/app/models"
	"github.com/company-registry/app/services"
	"github.com/company-registry/internal/registry"
	"github.com/company-registry/internal/suggest"
	"github.com/company-registry/routes"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// cấu hình hạ tầng qua viper, cấu hình nghiệp vụ qua app/config
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("cache.lru_size", 10000)
	viper.SetDefault("mongo.uri", "")
	viper.SetDefault("mongo.database", "company_registry")
	viper.SetDefault("redis.url", "")
	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("Không đọc được file cấu hình hạ tầng, dùng mặc định", zap.Error(err))
	}

	if err := config.Load("config/matcher.yaml"); err != nil {
		logger.Fatal("Lỗi nạp cấu hình nghiệp vụ", zap.Error(err))
	}

	entries, err := loadRegistry(logger)
	if err != nil {
		logger.Fatal("Không thể nạp dataset đăng ký doanh nghiệp", zap.Error(err))
	}

	index := registry.NewIndex(entries, registry.MatcherConfig{
		FuzzyThreshold: config.C.Matcher.FuzzyThreshold,
		ContainBonus:   config.C.Matcher.ContainBonus,
		SearchLimit:    config.C.Matcher.SearchLimit,
		DuplicateLimit: config.C.Matcher.DuplicateLimit,
		MinQueryLength: config.C.Matcher.MinQueryLength,
	}, logger)

	cache := buildCache(logger)
	defer cache.Close()

	generator := suggest.NewGenerator(index, config.C.Suggest.SimilarCutoff, config.C.Suggest.GroupLimit, logger)
	companyService := services.NewCompanyService(index, generator, cache, logger)

	companyController := controllers.NewCompanyController(companyService, logger)
	adminController := controllers.NewAdminController(companyService, logger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	routes.SetupAllRoutes(router, companyController, adminController)

	srv := &http.Server{
		Addr:    ":" + viper.GetString("server.port"),
		Handler: router,
	}

	go func() {
		logger.Info("Khởi động HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server dừng bất thường", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Nhận tín hiệu dừng, đang shutdown")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown không sạch", zap.Error(err))
	}
	logger.Info("Đã dừng service")
}

// loadRegistry chọn loader theo registry.source: file, mongo hoặc sample
func loadRegistry(logger *zap.Logger) ([]models.RegistryEntry, error) {
	switch config.C.Registry.Source {
	case "file":
		return registry.LoadFromFile(config.C.Registry.Path, logger)
	case "mongo":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(viper.GetString("mongo.uri")))
		if err != nil {
			return nil, err
		}
		defer client.Disconnect(context.Background())
		db := client.Database(viper.GetString("mongo.database"))
		return registry.LoadFromMongo(ctx, db, config.C.Registry.MongoCollection, logger)
	default:
		return registry.LoadEmbeddedSample(logger)
	}
}

// buildCache dựng tầng cache: luôn có LRU, thêm Redis thành hybrid nếu
// cấu hình redis.url. Redis fail thì cảnh báo và chạy tiếp với LRU.
func buildCache(logger *zap.Logger) services.ICacheService {
	lruCache, err := services.NewLRUCacheService(viper.GetInt("cache.lru_size"))
	if err != nil {
		logger.Fatal("Không thể khởi tạo LRU cache", zap.Error(err))
	}

	redisURL := viper.GetString("redis.url")
	if redisURL == "" {
		return lruCache
	}

	redisCache, err := services.NewRedisCacheService(redisURL, logger)
	if err != nil {
		logger.Warn("Redis không khả dụng, chỉ dùng LRU cache", zap.Error(err))
		return lruCache
	}

	return services.NewHybridCacheService(lruCache, redisCache, logger)
}
