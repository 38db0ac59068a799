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

const bookingCollection = "bookings"

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) (*model.Booking, error)
	FindByEventID(ctx context.Context, eventID primitive.ObjectID) ([]*model.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]*model.Booking, error)
	CountByEventID(ctx context.Context, eventID primitive.ObjectID) (int64, error)
}

type BookingRepositoryImpl struct {
	manager *database.ConnectionManager
}

func NewBookingRepository(manager *database.ConnectionManager) BookingRepository {
	return &BookingRepositoryImpl{manager: manager}
}

func (r *BookingRepositoryImpl) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.manager.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(bookingCollection), nil
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := coll.InsertOne(ctx, booking); err != nil {
		// uniq_event_email: 同一活動同一 email 只能報名一次
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrDuplicateBooking
		}
		return nil, err
	}
	return booking, nil
}

func (r *BookingRepositoryImpl) FindByEventID(ctx context.Context, eventID primitive.ObjectID) ([]*model.Booking, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{"event_id": eventID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := make([]*model.Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepositoryImpl) FindByEmail(ctx context.Context, email string) ([]*model.Booking, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := make([]*model.Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepositoryImpl) CountByEventID(ctx context.Context, eventID primitive.ObjectID) (int64, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return 0, err
	}
	return coll.CountDocuments(ctx, bson.M{"event_id": eventID})
}
