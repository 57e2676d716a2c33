package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/LessUp/PoopRecorder/internal"
	"github.com/LessUp/PoopRecorder/internal/storage"
)

var validate = validator.New()

var (
	ErrFutureDate = errors.New("entry date cannot be in the future")
	ErrTooOldDate = errors.New("entry date cannot be more than one year ago")
)

type EntryRequest struct {
	TimestampMinute time.Time `json:"timestampMinute" validate:"required"`
	BristolType     int       `json:"bristolType" validate:"required,gte=1,lte=7"`
	SmellScore      int       `json:"smellScore" validate:"required,gte=1,lte=5"`
	Color           string    `json:"color" validate:"required,oneof=brown dark_brown yellow green black red"`
	Volume          string    `json:"volume" validate:"required,oneof=small medium large"`
	Symptoms        []string  `json:"symptoms,omitempty" validate:"omitempty,dive,max=50"`
	Notes           string    `json:"notes,omitempty" validate:"omitempty,max=500"`
}

func ValidateEntryRequest(body *EntryRequest) error {
	return validate.Struct(body)
}

// ValidateEntryDate enforces the recording window: no future entries, none
// older than one year.
func ValidateEntryDate(ts, now time.Time) error {
	if ts.After(now) {
		return ErrFutureDate
	}
	if ts.Before(now.AddDate(-1, 0, 0)) {
		return ErrTooOldDate
	}
	return nil
}

func CreateEntry(ctx context.Context, entryRepo storage.EntryRepository, userID string, body *EntryRequest, now time.Time) (*internal.Entry, error) {
	symptoms := body.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}
	entry := &internal.Entry{
		ID:              uuid.NewString(),
		UserID:          userID,
		TimestampMinute: body.TimestampMinute.Truncate(time.Minute),
		BristolType:     body.BristolType,
		SmellScore:      body.SmellScore,
		Color:           internal.Color(body.Color),
		Volume:          internal.Volume(body.Volume),
		Symptoms:        symptoms,
		Notes:           body.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
		Version:         1,
	}
	if err := entryRepo.SaveEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
