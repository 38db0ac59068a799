package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	apperrors "eventdeck/pkg/app_errors"
)

var (
	slugReplacePattern = regexp.MustCompile(`[^a-z0-9]+`)
	slugPattern        = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	timePattern        = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?:\s*([AaPp][Mm]))?$`)
)

// Slugify 由標題產生 URL-safe slug：小寫、非英數字連續段換成單一連字號、去頭尾連字號
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugReplacePattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsValidSlug 檢查 slug 格式 ^[a-z0-9]+(-[a-z0-9]+)*$
func IsValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// 接受的日期輸入格式，統一存成 YYYY-MM-DD
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02 Jan 2006",
}

func NormalizeDate(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", apperrors.NewValidationError("date", "must be a valid calendar date")
}

// NormalizeTime 把 "H:mm"、"HH:mm"（可帶 AM/PM）轉成零補齊的 24 小時制 "HH:mm"
func NormalizeTime(s string) (string, error) {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", apperrors.NewValidationError("time", "must be in HH:mm or H:mm AM/PM format")
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	period := strings.ToUpper(m[3])

	if minutes > 59 {
		return "", apperrors.NewValidationError("time", "minutes must be between 00 and 59")
	}

	if period == "PM" && hours < 12 {
		hours += 12
	} else if period == "AM" && hours == 12 {
		hours = 0
	}

	if hours > 23 {
		return "", apperrors.NewValidationError("time", "hours must be between 00 and 23")
	}

	return fmt.Sprintf("%02d:%02d", hours, minutes), nil
}

// ValidateAndNormalize 在每次 persist 前執行：必填欄位檢查、長度上限、
// agenda/tags 元素檢查、slug 推導、日期與時間正規化。
// titleChanged 為 true 或 slug 尚未設定時才重新推導 slug。
func (e *Event) ValidateAndNormalize(titleChanged bool) error {
	required := []struct {
		name  string
		value *string
		max   int
	}{
		{"title", &e.Title, 200},
		{"description", &e.Description, 2000},
		{"overview", &e.Overview, 500},
		{"image", &e.Image, 500},
		{"venue", &e.Venue, 200},
		{"location", &e.Location, 200},
		{"date", &e.Date, 0},
		{"time", &e.Time, 0},
		{"mode", &e.Mode, 0},
		{"audience", &e.Audience, 200},
		{"organizer", &e.Organizer, 200},
	}

	for _, f := range required {
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			return apperrors.NewValidationError(f.name, "is required and must be a non-empty string")
		}
		if f.max > 0 && len(*f.value) > f.max {
			return apperrors.NewValidationError(f.name, fmt.Sprintf("cannot exceed %d characters", f.max))
		}
	}

	switch e.Mode {
	case ModeOnline, ModeOffline, ModeHybrid:
	default:
		return apperrors.NewValidationError("mode", "must be one of: online, offline, hybrid")
	}

	if err := normalizeStringArray("agenda", e.Agenda); err != nil {
		return err
	}
	if err := normalizeStringArray("tags", e.Tags); err != nil {
		return err
	}

	e.CreatedBy = strings.TrimSpace(e.CreatedBy)
	if len(e.CreatedBy) > 200 {
		return apperrors.NewValidationError("created_by", "cannot exceed 200 characters")
	}

	if e.Slug == "" || titleChanged {
		e.Slug = Slugify(e.Title)
	}
	if !IsValidSlug(e.Slug) {
		return apperrors.NewValidationError("slug", "must contain only lowercase letters, numbers, and hyphens")
	}

	var err error
	if e.Date, err = NormalizeDate(e.Date); err != nil {
		return err
	}
	if e.Time, err = NormalizeTime(e.Time); err != nil {
		return err
	}

	return nil
}

// 陣列若非空，元素一律去空白且不得為空字串
func normalizeStringArray(name string, values []string) error {
	for i, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return apperrors.NewValidationError(name, "must contain only non-empty strings")
		}
		values[i] = trimmed
	}
	return nil
}
