package handlers

import (
	"net/http"

	"lx-registry-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ============================================================================
// Active Models
// ============================================================================

func (h *Handler) ListActiveModels(c *gin.Context) {
	filter := listFilter(c)

	models, total, err := h.activeModelSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list active models failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ActiveModelResponse, 0, len(models))
	for _, m := range models {
		items = append(items, dto.ToActiveModelResponse(m))
	}
	c.JSON(http.StatusOK, dto.NewListResponse(items, total, filter.Limit, filter.Offset))
}

func (h *Handler) GetActiveModel(c *gin.Context) {
	model, err := h.activeModelSvc.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActiveModelResponse(model))
}

func (h *Handler) CreateActiveModel(c *gin.Context) {
	var req dto.CreateActiveModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model, err := h.activeModelSvc.Create(c.Request.Context(), req.Name, req.ModelMetaID)
	if err != nil {
		log.WithError(err).Error("create active model failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToActiveModelResponse(model))
}

func (h *Handler) ActivateModel(c *gin.Context) {
	var req dto.ActivateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model, err := h.activeModelSvc.Activate(c.Request.Context(), c.Param("name"), req.ModelMetaID)
	if err != nil {
		log.WithError(err).Error("activate model failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActiveModelResponse(model))
}

func (h *Handler) DeleteActiveModel(c *gin.Context) {
	if err := h.activeModelSvc.Delete(c.Request.Context(), c.Param("name")); err != nil {
		log.WithError(err).Error("delete active model failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ============================================================================
// Model Metas
// ============================================================================

func (h *Handler) GetModelMeta(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model meta id"})
		return
	}

	meta, err := h.modelMetaSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModelMetaResponse(meta))
}

func (h *Handler) CreateModelMeta(c *gin.Context) {
	var req dto.CreateModelMetaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meta, err := h.modelMetaSvc.Create(c.Request.Context(), req.Name, req.Version, req.Description)
	if err != nil {
		log.WithError(err).Error("create model meta failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToModelMetaResponse(meta))
}

func (h *Handler) DeleteModelMeta(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model meta id"})
		return
	}

	if err := h.modelMetaSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete model meta failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
