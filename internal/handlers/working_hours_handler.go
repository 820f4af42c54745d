package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/hours"
)

type WorkingHoursHandler struct {
	week *hours.Week
}

func NewWorkingHoursHandler(week *hours.Week) *WorkingHoursHandler {
	return &WorkingHoursHandler{week: week}
}

type WorkingHoursUpdateRequest struct {
	Days []hours.DayDTO `json:"days" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	days, err := h.week.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.week.Update(
		c.Request.Context(),
		middleware.BusinessID(c),
		middleware.UserID(c),
		req.Days,
	); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------------------------------
// special dates
// ------------------------------------------------------

func (h *WorkingHoursHandler) ListSpecialDates(c *gin.Context) {
	out, err := h.week.ListSpecialDates(
		c.Request.Context(),
		middleware.UserID(c),
		c.Query("from"),
		c.Query("to"),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *WorkingHoursHandler) UpsertSpecialDate(c *gin.Context) {
	var req hours.SpecialDateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	sd, err := h.week.UpsertSpecialDate(
		c.Request.Context(),
		middleware.BusinessID(c),
		middleware.UserID(c),
		req,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, sd)
}

func (h *WorkingHoursHandler) DeleteSpecialDate(c *gin.Context) {
	if err := h.week.DeleteSpecialDate(
		c.Request.Context(),
		middleware.BusinessID(c),
		middleware.UserID(c),
		c.Param("date"),
	); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
