package handlers

import (
	"net/http"

	"github.com/parsel/projectops/internal/delivery/analytics"
	"github.com/gin-gonic/gin"
)

func (h *Handler) CostVarianceReport(c *gin.Context) {
	rows, err := h.reports.CostVariance(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (h *Handler) DurationPerformanceReport(c *gin.Context) {
	rows, err := h.reports.DurationPerformance(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (h *Handler) SupplierRankingReport(c *gin.Context) {
	from, ok := h.parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := h.parseDateQuery(c, "to")
	if !ok {
		return
	}
	opts := analytics.RankingOptions{
		IncludeInactive: c.Query("include_inactive") == "true",
		From:            from,
		To:              to,
	}
	rows, err := h.reports.SupplierRanking(c.Request.Context(), opts)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (h *Handler) EmployeeWorkloadReport(c *gin.Context) {
	from, ok := h.parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := h.parseDateQuery(c, "to")
	if !ok {
		return
	}
	opts := analytics.WorkloadOptions{
		IncludeIdle: c.Query("include_idle") == "true",
		From:        from,
		To:          to,
	}
	rows, err := h.reports.EmployeeWorkload(c.Request.Context(), opts)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

// ResetSchema drops and recreates the entity tables. This is the
// schema-reset operation used during setup and testing; it is unrelated
// to record-level cascade deletes.
func (h *Handler) ResetSchema(c *gin.Context) {
	if err := h.schema.ResetSchema(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
