package handlers

import (
	"net/http"

	"github.com/parsel/projectops/internal/delivery/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateProcurement(c *gin.Context) {
	var record models.ProcurementRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		h.respondBadRequest(c, "invalid request body")
		return
	}
	created, err := h.catalog.CreateProcurement(c.Request.Context(), &record)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetProcurement(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	record, err := h.catalog.GetProcurement(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *Handler) ListProcurements(c *gin.Context) {
	records, err := h.catalog.ListProcurements(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) UpdateProcurement(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var update models.ProcurementRecordUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		h.respondBadRequest(c, "invalid request body")
		return
	}
	if !h.checkImmutableID(c, update.ID, id) {
		return
	}
	update.ID = id
	updated, err := h.catalog.UpdateProcurement(c.Request.Context(), &update)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteProcurement(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.catalog.DeleteProcurement(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
