package handlers

import (
	"net/http"

	"lx-registry-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListCenters(c *gin.Context) {
	filter := listFilter(c)

	centers, total, err := h.centerSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list centers failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.CenterDTO, 0, len(centers))
	for _, center := range centers {
		items = append(items, h.centers.Serialize(center))
	}
	c.JSON(http.StatusOK, dto.NewListResponse(items, total, filter.Limit, filter.Offset))
}

func (h *Handler) GetCenter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid center id"})
		return
	}

	center, err := h.centerSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.centers.Serialize(center))
}

func (h *Handler) CreateCenter(c *gin.Context) {
	var req dto.CenterDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	center, err := h.centers.Deserialize(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.centerSvc.Create(c.Request.Context(), center)
	if err != nil {
		log.WithError(err).Error("create center failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.centers.Serialize(created))
}

func (h *Handler) ReplaceCenter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid center id"})
		return
	}

	var req dto.CenterDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	center, err := h.centers.Deserialize(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.centerSvc.Replace(c.Request.Context(), id, center)
	if err != nil {
		log.WithError(err).Error("replace center failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.centers.Serialize(updated))
}

func (h *Handler) DeleteCenter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid center id"})
		return
	}

	if err := h.centerSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete center failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
