package handlers

import (
	"net/http"

	"lx-registry-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ============================================================================
// Frames
// ============================================================================

func (h *Handler) ListFrames(c *gin.Context) {
	filter := listFilter(c)

	frames, total, err := h.frameSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list frames failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.FrameDTO, 0, len(frames))
	for _, f := range frames {
		items = append(items, h.frames.Serialize(f))
	}
	c.JSON(http.StatusOK, dto.NewListResponse(items, total, filter.Limit, filter.Offset))
}

func (h *Handler) GetFrame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid frame id"})
		return
	}

	frame, err := h.frameSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.frames.Serialize(frame))
}

func (h *Handler) CreateFrame(c *gin.Context) {
	var req dto.FrameDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	frame, err := h.frames.Deserialize(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.frameSvc.Create(c.Request.Context(), frame)
	if err != nil {
		log.WithError(err).Error("create frame failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.frames.Serialize(created))
}

func (h *Handler) ReplaceFrame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid frame id"})
		return
	}

	var req dto.FrameDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	frame, err := h.frames.Deserialize(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.frameSvc.Replace(c.Request.Context(), id, frame)
	if err != nil {
		log.WithError(err).Error("replace frame failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.frames.Serialize(updated))
}

func (h *Handler) DeleteFrame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid frame id"})
		return
	}

	if err := h.frameSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete frame failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ============================================================================
// Legacy Frames
// ============================================================================

func (h *Handler) ListLegacyFrames(c *gin.Context) {
	filter := listFilter(c)

	frames, total, err := h.legacyFrameSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list legacy frames failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.LegacyFrameDTO, 0, len(frames))
	for _, f := range frames {
		items = append(items, h.legacyFrames.Serialize(f))
	}
	c.JSON(http.StatusOK, dto.NewListResponse(items, total, filter.Limit, filter.Offset))
}

func (h *Handler) GetLegacyFrame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid legacy frame id"})
		return
	}

	frame, err := h.legacyFrameSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.legacyFrames.Serialize(frame))
}

func (h *Handler) CreateLegacyFrame(c *gin.Context) {
	var req dto.LegacyFrameDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	frame, err := h.legacyFrames.Deserialize(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.legacyFrameSvc.Create(c.Request.Context(), frame)
	if err != nil {
		log.WithError(err).Error("create legacy frame failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.legacyFrames.Serialize(created))
}

func (h *Handler) ReplaceLegacyFrame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid legacy frame id"})
		return
	}

	var req dto.LegacyFrameDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	frame, err := h.legacyFrames.Deserialize(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.legacyFrameSvc.Replace(c.Request.Context(), id, frame)
	if err != nil {
		log.WithError(err).Error("replace legacy frame failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.legacyFrames.Serialize(updated))
}

func (h *Handler) DeleteLegacyFrame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid legacy frame id"})
		return
	}

	if err := h.legacyFrameSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete legacy frame failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
