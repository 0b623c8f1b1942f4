package handlers

import (
	"net/http"

	"github.com/parsel/projectops/internal/delivery/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateAssignment(c *gin.Context) {
	var assignment models.Assignment
	if err := c.ShouldBindJSON(&assignment); err != nil {
		h.respondBadRequest(c, "invalid request body")
		return
	}
	created, err := h.catalog.CreateAssignment(c.Request.Context(), &assignment)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetAssignment(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	assignment, err := h.catalog.GetAssignment(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

func (h *Handler) ListAssignments(c *gin.Context) {
	assignments, err := h.catalog.ListAssignments(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

func (h *Handler) UpdateAssignment(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var update models.AssignmentUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		h.respondBadRequest(c, "invalid request body")
		return
	}
	if !h.checkImmutableID(c, update.ID, id) {
		return
	}
	update.ID = id
	updated, err := h.catalog.UpdateAssignment(c.Request.Context(), &update)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteAssignment(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.catalog.DeleteAssignment(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
