package models

import "time"

// Exchange is one correction request and its result, owned by a user.
type Exchange struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"-"`
	InputText     string    `json:"input_text"`
	CorrectedText string    `json:"corrected_text"`
	CreatedAt     time.Time `json:"created_at"`
}
