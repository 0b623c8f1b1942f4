package handlers

import (
	"net/http"

	"github.com/parsel/projectops/internal/delivery/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		h.respondBadRequest(c, "invalid request body")
		return
	}
	created, err := h.catalog.CreateClient(c.Request.Context(), &client)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetClient(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	client, err := h.catalog.GetClient(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *Handler) ListClients(c *gin.Context) {
	clients, err := h.catalog.ListClients(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *Handler) UpdateClient(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var update models.ClientUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		h.respondBadRequest(c, "invalid request body")
		return
	}
	if !h.checkImmutableID(c, update.ID, id) {
		return
	}
	update.ID = id
	updated, err := h.catalog.UpdateClient(c.Request.Context(), &update)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteClient(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.catalog.DeleteClient(c.Request.Context(), id, cascadeRequested(c)); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
