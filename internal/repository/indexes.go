package repository

import (
	"context"

	"eventdeck/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes 啟動時建立兩個 collection 的索引；重複建立是冪等的
func EnsureIndexes(ctx context.Context, manager *database.ConnectionManager) error {
	db, err := manager.Acquire(ctx)
	if err != nil {
		return err
	}

	eventIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_slug"),
		},
		{
			// 支援 upcoming 查詢的排序
			Keys: bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "tags", Value: 1}},
		},
	}
	if _, err := db.Collection(eventCollection).Indexes().CreateMany(ctx, eventIndexes); err != nil {
		return err
	}

	bookingIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "event_id", Value: 1}, {Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_event_email"),
		},
		{
			Keys: bson.D{{Key: "event_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "event_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
		},
	}
	if _, err := db.Collection(bookingCollection).Indexes().CreateMany(ctx, bookingIndexes); err != nil {
		return err
	}

	return nil
}
