package handlers

import (
	"net/http"

	"lx-registry-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListPatients(c *gin.Context) {
	filter := listFilter(c)

	patients, total, err := h.patientSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list patients failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.PatientDTO, 0, len(patients))
	for _, p := range patients {
		items = append(items, h.patients.Serialize(p))
	}
	c.JSON(http.StatusOK, dto.NewListResponse(items, total, filter.Limit, filter.Offset))
}

func (h *Handler) GetPatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient id"})
		return
	}

	patient, err := h.patientSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.patients.Serialize(patient))
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req dto.PatientDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := h.patients.Deserialize(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.patientSvc.Create(c.Request.Context(), patient)
	if err != nil {
		log.WithError(err).Error("create patient failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.patients.Serialize(created))
}

func (h *Handler) ReplacePatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient id"})
		return
	}

	var req dto.PatientDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := h.patients.Deserialize(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.patientSvc.Replace(c.Request.Context(), id, patient)
	if err != nil {
		log.WithError(err).Error("replace patient failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.patients.Serialize(updated))
}

func (h *Handler) DeletePatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient id"})
		return
	}

	if err := h.patientSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete patient failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
