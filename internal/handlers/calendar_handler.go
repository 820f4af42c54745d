package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/calendar"
)

type CalendarHandler struct {
	feed *calendar.Feed
}

func NewCalendarHandler(feed *calendar.Feed) *CalendarHandler {
	return &CalendarHandler{feed: feed}
}

func (h *CalendarHandler) ICS(c *gin.Context) {
	out, err := h.feed.Render(
		c.Request.Context(),
		middleware.BusinessID(c),
		middleware.UserID(c),
		c.Query("from"),
		c.Query("to"),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="agenda.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(out))
}
