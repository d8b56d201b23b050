package handlers

import (
	"net/http"

	"lx-registry-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListLxUsers(c *gin.Context) {
	filter := listFilter(c)

	users, total, err := h.lxUserSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list lx users failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.LxUserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, dto.ToLxUserResponse(u))
	}
	c.JSON(http.StatusOK, dto.NewListResponse(items, total, filter.Limit, filter.Offset))
}

func (h *Handler) GetLxUser(c *gin.Context) {
	user, err := h.lxUserSvc.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLxUserResponse(user))
}

func (h *Handler) CreateLxUser(c *gin.Context) {
	var req dto.CreateLxUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.lxUserSvc.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		log.WithError(err).Error("create lx user failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLxUserResponse(user))
}

func (h *Handler) DeleteLxUser(c *gin.Context) {
	if err := h.lxUserSvc.Delete(c.Request.Context(), c.Param("name")); err != nil {
		log.WithError(err).Error("delete lx user failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
