package handlers

import (
	"strconv"

	"lx-registry-service/internal/adapters/primary/http/dto"
	"lx-registry-service/internal/core/ports/output"
	"lx-registry-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	activeModelSvc *services.ActiveModelService
	modelMetaSvc   *services.ModelMetaService
	lxUserSvc      *services.LxUserService
	centerSvc      *services.CenterService
	patientSvc     *services.PatientService
	frameSvc       *services.FrameService
	legacyFrameSvc *services.LegacyFrameService

	centers      dto.CenterSerializer
	patients     dto.PatientSerializer
	frames       dto.FrameSerializer
	legacyFrames dto.LegacyFrameSerializer
}

func New(
	activeModelSvc *services.ActiveModelService,
	modelMetaSvc *services.ModelMetaService,
	lxUserSvc *services.LxUserService,
	centerSvc *services.CenterService,
	patientSvc *services.PatientService,
	frameSvc *services.FrameService,
	legacyFrameSvc *services.LegacyFrameService,
) *Handler {
	return &Handler{
		activeModelSvc: activeModelSvc,
		modelMetaSvc:   modelMetaSvc,
		lxUserSvc:      lxUserSvc,
		centerSvc:      centerSvc,
		patientSvc:     patientSvc,
		frameSvc:       frameSvc,
		legacyFrameSvc: legacyFrameSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Active Models (natural key)
	r.GET("/active_models", h.ListActiveModels)
	r.GET("/active_models/:name", h.GetActiveModel)
	r.POST("/active_models", h.CreateActiveModel)
	r.PATCH("/active_models/:name", h.ActivateModel)
	r.DELETE("/active_models/:name", h.DeleteActiveModel)

	// Model Metas
	r.GET("/model_metas/:id", h.GetModelMeta)
	r.POST("/model_metas", h.CreateModelMeta)
	r.DELETE("/model_metas/:id", h.DeleteModelMeta)

	// Users (natural key)
	r.GET("/lx_users", h.ListLxUsers)
	r.GET("/lx_users/:name", h.GetLxUser)
	r.POST("/lx_users", h.CreateLxUser)
	r.DELETE("/lx_users/:name", h.DeleteLxUser)

	// Centers
	r.GET("/centers", h.ListCenters)
	r.GET("/centers/:id", h.GetCenter)
	r.POST("/centers", h.CreateCenter)
	r.PUT("/centers/:id", h.ReplaceCenter)
	r.DELETE("/centers/:id", h.DeleteCenter)

	// Patients
	r.GET("/patients", h.ListPatients)
	r.GET("/patients/:id", h.GetPatient)
	r.POST("/patients", h.CreatePatient)
	r.PUT("/patients/:id", h.ReplacePatient)
	r.DELETE("/patients/:id", h.DeletePatient)

	// Frames
	r.GET("/frames", h.ListFrames)
	r.GET("/frames/:id", h.GetFrame)
	r.POST("/frames", h.CreateFrame)
	r.PUT("/frames/:id", h.ReplaceFrame)
	r.DELETE("/frames/:id", h.DeleteFrame)

	// Legacy Frames
	r.GET("/legacy_frames", h.ListLegacyFrames)
	r.GET("/legacy_frames/:id", h.GetLegacyFrame)
	r.POST("/legacy_frames", h.CreateLegacyFrame)
	r.PUT("/legacy_frames/:id", h.ReplaceLegacyFrame)
	r.DELETE("/legacy_frames/:id", h.DeleteLegacyFrame)
}

func listFilter(c *gin.Context) ports.ListFilter {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	return services.NormalizeFilter(ports.ListFilter{
		Search: c.Query("search"),
		Limit:  limit,
		Offset: offset,
	})
}
