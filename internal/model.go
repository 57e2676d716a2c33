package internal

import "time"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Stool color as recorded by the user. Red and black are red-flag colors.
type Color string

const (
	ColorBrown     Color = "brown"
	ColorDarkBrown Color = "dark_brown"
	ColorYellow    Color = "yellow"
	ColorGreen     Color = "green"
	ColorBlack     Color = "black"
	ColorRed       Color = "red"
)

type Volume string

const (
	VolumeSmall  Volume = "small"
	VolumeMedium Volume = "medium"
	VolumeLarge  Volume = "large"
)

// Entry is a single bowel-movement observation. Wire field names follow the
// original client contract (camelCase).
type Entry struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	TimestampMinute time.Time `json:"timestampMinute"`
	BristolType     int       `json:"bristolType"` // 1 to 7 Bristol stool scale
	SmellScore      int       `json:"smellScore"`  // 1 to 5 scale
	Color           Color     `json:"color"`
	Volume          Volume    `json:"volume"`
	Symptoms        []string  `json:"symptoms"`
	Notes           string    `json:"notes,omitempty"` // may be ciphertext, never analyzed
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	Version         int       `json:"version"`
}
