package transport

// TaskRequest is the create/update payload. RepeatInfo rides along only on
// create; it is consumed by the recurrence expansion and never persisted.
type TaskRequest struct {
	ID             string      `json:"id"`
	Task           string      `json:"task"`
	Category       string      `json:"category"`
	TimeRequired   int         `json:"timeRequired"`
	Date           *string     `json:"date"`
	IsScheduled    bool        `json:"isScheduled"`
	ScheduledStart *string     `json:"scheduledStartTime"`
	RepeatInfo     *RepeatInfo `json:"repeatInfo,omitempty"`
}

// RepeatInfo is the transient recurrence request of a create call.
type RepeatInfo struct {
	Cadence string `json:"cadence"`
	Count   int    `json:"count,omitempty"`
	EndDate string `json:"endDate,omitempty"`
}

// ShiftRequest moves the pending tasks of one date to another. Empty IDs
// means every pending task on the date.
type ShiftRequest struct {
	FromDate string   `json:"fromDate"`
	ToDate   string   `json:"toDate"`
	IDs      []string `json:"ids,omitempty"`
}

// ParkRequest removes the listed tasks from the calendar.
type ParkRequest struct {
	IDs []string `json:"ids"`
}

// SettingsRequest replaces the whole settings record.
type SettingsRequest struct {
	DailyLimit    int    `json:"dailyLimit"`
	WorkLimit     int    `json:"workLimit"`
	PersonalLimit int    `json:"personalLimit"`
	WorkStart     string `json:"workStart"`
	WorkEnd       string `json:"workEnd"`
	PersonalStart string `json:"personalStart"`
	PersonalEnd   string `json:"personalEnd"`
	FocusStart    string `json:"focusStart"`
	FocusEnd      string `json:"focusEnd"`
	BreakMinutes  int    `json:"breakMinutes"`
	SlotMinutes   int    `json:"slotMinutes"`
}

// ProfileUpdateRequest mirrors the fields the auth provider owns.
type ProfileUpdateRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoUrl"`
}

// AuthLoginRequest opens a session for the identity pushed by the auth
// provider.
type AuthLoginRequest struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoUrl"`
	TTL         int    `json:"ttl_seconds"`
}

type RefreshRequest struct {
	SessionID string `json:"session_id"`
	TTL       int    `json:"ttl_seconds"`
}
