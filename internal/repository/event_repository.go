package repository

import (
	"context"
	"time"

	"eventdeck/internal/database"
	"eventdeck/internal/model"
	apperrors "eventdeck/pkg/app_errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const eventCollection = "events"

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Event, error)
	FindBySlug(ctx context.Context, slug string) (*model.Event, error)
	FindUpcoming(ctx context.Context) ([]*model.Event, error)
	Update(ctx context.Context, event *model.Event) (*model.Event, error)
}

type EventRepositoryImpl struct {
	manager *database.ConnectionManager
}

func NewEventRepository(manager *database.ConnectionManager) EventRepository {
	return &EventRepositoryImpl{manager: manager}
}

func (r *EventRepositoryImpl) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.manager.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(eventCollection), nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event.ID = primitive.NewObjectID()
	event.CreatedAt = now
	event.UpdatedAt = now

	if _, err := coll.InsertOne(ctx, event); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrDuplicateSlug
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context) ([]*model.Event, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := make([]*model.Event, 0)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Event, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var event model.Event
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&event); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*model.Event, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var event model.Event
	if err := coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&event); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// FindUpcoming 回傳今天（含）以後的活動，依日期、時間遞增排序
func (r *EventRepositoryImpl) FindUpcoming(ctx context.Context) ([]*model.Event, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC().Format("2006-01-02")
	filter := bson.M{"date": bson.M{"$gte": today}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := make([]*model.Event, 0)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, event *model.Event) (*model.Event, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	event.UpdatedAt = time.Now().UTC()

	result, err := coll.ReplaceOne(ctx, bson.M{"_id": event.ID}, event)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrDuplicateSlug
		}
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrEventNotFound
	}
	return event, nil
}
