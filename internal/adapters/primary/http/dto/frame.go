package dto

import (
	"github.com/google/uuid"

	"lx-registry-service/internal/core/domain"
)

// ============================================================================
// Frame DTOs
// ============================================================================

type FrameDTO struct {
	ID          uuid.UUID `json:"id"`
	VideoID     uuid.UUID `json:"video_id" binding:"required"`
	FrameNumber int       `json:"frame_number" binding:"min=0"`
	Image       string    `json:"image" binding:"max=255"`
	Suffix      string    `json:"suffix" binding:"max=255"`
	Extracted   bool      `json:"extracted"`
}

type FrameSerializer struct{}

func (FrameSerializer) Serialize(f *domain.Frame) FrameDTO {
	return FrameDTO{
		ID:          f.ID,
		VideoID:     f.VideoID,
		FrameNumber: f.FrameNumber,
		Image:       f.Image,
		Suffix:      f.Suffix,
		Extracted:   f.Extracted,
	}
}

func (FrameSerializer) Deserialize(d FrameDTO) (*domain.Frame, error) {
	return &domain.Frame{
		ID:          d.ID,
		VideoID:     d.VideoID,
		FrameNumber: d.FrameNumber,
		Image:       d.Image,
		Suffix:      d.Suffix,
		Extracted:   d.Extracted,
	}, nil
}

// ============================================================================
// Legacy Frame DTOs
// ============================================================================

type LegacyFrameDTO struct {
	ID          uuid.UUID `json:"id"`
	VideoID     uuid.UUID `json:"video_id" binding:"required"`
	FrameNumber int       `json:"frame_number" binding:"min=0"`
	Image       string    `json:"image" binding:"max=255"`
	Suffix      string    `json:"suffix" binding:"max=255"`
}

type LegacyFrameSerializer struct{}

func (LegacyFrameSerializer) Serialize(f *domain.LegacyFrame) LegacyFrameDTO {
	return LegacyFrameDTO{
		ID:          f.ID,
		VideoID:     f.VideoID,
		FrameNumber: f.FrameNumber,
		Image:       f.Image,
		Suffix:      f.Suffix,
	}
}

func (LegacyFrameSerializer) Deserialize(d LegacyFrameDTO) (*domain.LegacyFrame, error) {
	return &domain.LegacyFrame{
		ID:          d.ID,
		VideoID:     d.VideoID,
		FrameNumber: d.FrameNumber,
		Image:       d.Image,
		Suffix:      d.Suffix,
	}, nil
}
