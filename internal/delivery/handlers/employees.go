package handlers

import (
	"net/http"

	"github.com/parsel/projectops/internal/delivery/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateEmployee(c *gin.Context) {
	var employee models.Employee
	if err := c.ShouldBindJSON(&employee); err != nil {
		h.respondBadRequest(c, "invalid request body")
		return
	}
	created, err := h.catalog.CreateEmployee(c.Request.Context(), &employee)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetEmployee(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	employee, err := h.catalog.GetEmployee(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *Handler) ListEmployees(c *gin.Context) {
	employees, err := h.catalog.ListEmployees(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *Handler) UpdateEmployee(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var update models.EmployeeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		h.respondBadRequest(c, "invalid request body")
		return
	}
	if !h.checkImmutableID(c, update.ID, id) {
		return
	}
	update.ID = id
	updated, err := h.catalog.UpdateEmployee(c.Request.Context(), &update)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteEmployee(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.catalog.DeleteEmployee(c.Request.Context(), id, cascadeRequested(c)); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
