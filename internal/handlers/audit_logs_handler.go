package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

type AuditLister interface {
	List(ctx context.Context, businessID uint, f audit.ListFilter) ([]models.AuditLog, int64, error)
}

type AuditLogsHandler struct {
	store AuditLister
}

func NewAuditLogsHandler(store AuditLister) *AuditLogsHandler {
	return &AuditLogsHandler{store: store}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultAuditLimit)))
	if limit <= 0 || limit > maxAuditLimit {
		limit = defaultAuditLimit
	}

	f := audit.ListFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		From:   c.Query("from"),
		To:     c.Query("to"),
		Page:   page,
		Limit:  limit,
	}

	for _, d := range []string{f.From, f.To} {
		if d == "" {
			continue
		}
		if _, err := timezone.ParseDate(timezone.DefaultTimezone, d); err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
	}

	logs, total, err := h.store.List(c.Request.Context(), middleware.BusinessID(c), f)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	httpresp.Page(c, logs, page, limit, total)
}
