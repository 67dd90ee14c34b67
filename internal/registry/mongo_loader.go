package registry

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/company-registry/app/models"
)

// LoadFromMongo nạp snapshot dataset từ một collection MongoDB.
// Bản ghi lỗi decode thì bỏ qua và log warning, không fail cả batch.
func LoadFromMongo(ctx context.Context, db *mongo.Database, collection string, logger *zap.Logger) ([]models.RegistryEntry, error) {
	cursor, err := db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("không thể truy vấn collection %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var entries []models.RegistryEntry
	skipped := 0
	for cursor.Next(ctx) {
		var e models.RegistryEntry
		if err := cursor.Decode(&e); err != nil {
			skipped++
			logger.Warn("Bỏ qua bản ghi lỗi decode", zap.Error(err))
			continue
		}
		entries = append(entries, e)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("lỗi đọc cursor collection %s: %w", collection, err)
	}

	logger.Info("Đã nạp dataset từ MongoDB",
		zap.String("collection", collection),
		zap.Int("entries", len(entries)),
		zap.Int("skipped", skipped))
	return entries, nil
}
