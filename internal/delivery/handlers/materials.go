package handlers

import (
	"net/http"

	"github.com/parsel/projectops/internal/delivery/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateMaterial(c *gin.Context) {
	var material models.Material
	if err := c.ShouldBindJSON(&material); err != nil {
		h.respondBadRequest(c, "invalid request body")
		return
	}
	created, err := h.catalog.CreateMaterial(c.Request.Context(), &material)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetMaterial(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	material, err := h.catalog.GetMaterial(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, material)
}

func (h *Handler) ListMaterials(c *gin.Context) {
	materials, err := h.catalog.ListMaterials(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, materials)
}

func (h *Handler) UpdateMaterial(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var update models.MaterialUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		h.respondBadRequest(c, "invalid request body")
		return
	}
	if !h.checkImmutableID(c, update.ID, id) {
		return
	}
	update.ID = id
	updated, err := h.catalog.UpdateMaterial(c.Request.Context(), &update)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteMaterial(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.catalog.DeleteMaterial(c.Request.Context(), id, cascadeRequested(c)); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
