package domain

import "github.com/google/uuid"

// Frame is a single extracted video frame.
type Frame struct {
	ID          uuid.UUID `json:"id"`
	VideoID     uuid.UUID `json:"video_id"`
	FrameNumber int       `json:"frame_number"`
	Image       string    `json:"image"`
	Suffix      string    `json:"suffix"`
	Extracted   bool      `json:"extracted"`
}

// LegacyFrame is a frame row from the legacy video import pipeline.
type LegacyFrame struct {
	ID          uuid.UUID `json:"id"`
	VideoID     uuid.UUID `json:"video_id"`
	FrameNumber int       `json:"frame_number"`
	Image       string    `json:"image"`
	Suffix      string    `json:"suffix"`
}
