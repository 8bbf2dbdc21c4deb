package domain

import "time"

// Settings is the per-user singleton of planning limits and scheduling
// preferences. It is created lazily with defaults on first read and replaced
// wholesale on save.
type Settings struct {
	UserID        string    `json:"userId"`
	DailyLimit    int       `json:"dailyLimit"`
	WorkLimit     int       `json:"workLimit"`
	PersonalLimit int       `json:"personalLimit"`
	WorkStart     string    `json:"workStart"`
	WorkEnd       string    `json:"workEnd"`
	PersonalStart string    `json:"personalStart"`
	PersonalEnd   string    `json:"personalEnd"`
	FocusStart    string    `json:"focusStart"`
	FocusEnd      string    `json:"focusEnd"`
	BreakMinutes  int       `json:"breakMinutes"`
	SlotMinutes   int       `json:"slotMinutes"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// DefaultSettings returns the settings a user gets before their first save.
func DefaultSettings(userID string) *Settings {
	return &Settings{
		UserID:        userID,
		DailyLimit:    480,
		WorkLimit:     360,
		PersonalLimit: 180,
		WorkStart:     "09:00",
		WorkEnd:       "17:00",
		PersonalStart: "18:00",
		PersonalEnd:   "22:00",
		FocusStart:    "09:00",
		FocusEnd:      "12:00",
		BreakMinutes:  15,
		SlotMinutes:   30,
	}
}
