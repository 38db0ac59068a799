package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	apperrors "eventdeck/pkg/app_errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxEmailLength = 254

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Booking 一筆報名紀錄，(event_id, email) 全域唯一
type Booking struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EventID   primitive.ObjectID `json:"event_id" bson:"event_id"`
	Email     string             `json:"email" bson:"email"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// NormalizeEmail 去空白、轉小寫並檢查 local@domain 格式
func NormalizeEmail(s string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(s))
	if email == "" {
		return "", apperrors.NewValidationError("email", "is required and must be a non-empty string")
	}
	if len(email) > maxEmailLength {
		return "", apperrors.NewValidationError("email", fmt.Sprintf("cannot exceed %d characters", maxEmailLength))
	}
	if !emailPattern.MatchString(email) {
		return "", apperrors.NewValidationError("email", "must be a valid email address")
	}
	return email, nil
}
