package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

const maxRestMinutes = 240

type BusinessHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewBusinessHandler(db *gorm.DB, audit *audit.Dispatcher) *BusinessHandler {
	return &BusinessHandler{db: db, audit: audit}
}

type UpdateBusinessRequest struct {
	Name                 *string `json:"name"`
	Phone                *string `json:"phone"`
	Address              *string `json:"address"`
	Timezone             *string `json:"timezone"`
	MinAdvanceMinutes    *int    `json:"min_advance_minutes"`
	DefaultRestMinutes   *int    `json:"default_rest_minutes"`
	LoyaltyPointsPerUnit *int    `json:"loyalty_points_per_unit"`
}

type UpdateRestTimeRequest struct {
	// null clears the override and falls back to the business default.
	RestMinutes *int `json:"rest_minutes"`
}

func (h *BusinessHandler) load(c *gin.Context) (*models.Business, bool) {
	var business models.Business
	if err := h.db.WithContext(c.Request.Context()).
		First(&business, middleware.BusinessID(c)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "business_not_found", "Estabelecimento não encontrado.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_business", "Erro ao buscar dados do estabelecimento.")
		return nil, false
	}
	return &business, true
}

func (h *BusinessHandler) Get(c *gin.Context) {
	business, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, business)
}

func (h *BusinessHandler) Update(c *gin.Context) {
	business, ok := h.load(c)
	if !ok {
		return
	}

	var req UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			httperr.BadRequest(c, "invalid_name", "Nome obrigatório.")
			return
		}
		business.Name = *req.Name
	}
	if req.Phone != nil {
		business.Phone = *req.Phone
	}
	if req.Address != nil {
		business.Address = *req.Address
	}

	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido.")
			return
		}
		business.Timezone = *req.Timezone
	}

	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "Antecedência mínima deve ser zero ou positiva (em minutos).")
			return
		}
		business.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if req.DefaultRestMinutes != nil {
		if *req.DefaultRestMinutes < 0 || *req.DefaultRestMinutes > maxRestMinutes {
			httperr.BadRequest(c, "invalid_rest_minutes", "Intervalo entre atendimentos inválido.")
			return
		}
		business.DefaultRestMinutes = *req.DefaultRestMinutes
	}

	if req.LoyaltyPointsPerUnit != nil {
		if *req.LoyaltyPointsPerUnit < 0 {
			httperr.BadRequest(c, "invalid_loyalty_rate", "Pontuação de fidelidade inválida.")
			return
		}
		business.LoyaltyPointsPerUnit = *req.LoyaltyPointsPerUnit
	}

	if err := h.db.WithContext(c.Request.Context()).Save(business).Error; err != nil {
		httperr.Internal(c, "failed_to_update_business", "Erro ao salvar as configurações.")
		return
	}

	userID := middleware.UserID(c)
	h.audit.Dispatch(audit.Event{
		BusinessID: business.ID,
		UserID:     &userID,
		Action:     "business_updated",
		Entity:     "business",
		EntityID:   &business.ID,
		Metadata:   req,
	})

	c.JSON(http.StatusOK, business)
}

func (h *BusinessHandler) UpdateRestTime(c *gin.Context) {
	var req UpdateRestTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.RestMinutes != nil && (*req.RestMinutes < 0 || *req.RestMinutes > maxRestMinutes) {
		httperr.BadRequest(c, "invalid_rest_minutes", "Intervalo entre atendimentos inválido.")
		return
	}

	userID := middleware.UserID(c)
	businessID := middleware.BusinessID(c)

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.User{}).
		Where("id = ? AND business_id = ?", userID, businessID).
		Update("rest_minutes", req.RestMinutes)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_rest_time", "Erro ao salvar intervalo.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "staff_not_found", "Profissional não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		UserID:     &userID,
		Action:     "rest_time_updated",
		Entity:     "user",
		EntityID:   &userID,
		Metadata:   req,
	})

	c.JSON(http.StatusOK, gin.H{"rest_minutes": req.RestMinutes})
}
