package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound          = errors.New("event not found")
	ErrBookingNotFound        = errors.New("booking not found")
	ErrDuplicateSlug          = errors.New("event slug already exists")
	ErrDuplicateBooking       = errors.New("booking already exists for this event and email")
	ErrEventReferenceNotFound = errors.New("referenced event does not exist")
	ErrInvalidInput           = errors.New("invalid input")
)

// ValidationError 輸入驗證錯誤，帶出問題的欄位名稱
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation 判斷是否為輸入驗證錯誤
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
