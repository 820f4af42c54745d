package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db           *gorm.DB
	availability *appointment.GetAvailability
	create       *appointment.CreatePrivateAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	availability *appointment.GetAvailability,
	create *appointment.CreatePrivateAppointment,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		availability: availability,
		create:       create,
	}
}

type PublicCreateAppointmentRequest struct {
	CreateAppointmentRequest
	StaffID uint `json:"staff_id"`
}

////////////////////////////////////////////////////////
// LOOKUPS
////////////////////////////////////////////////////////

func (h *PublicHandler) businessBySlug(c *gin.Context) (*models.Business, bool) {
	var business models.Business
	err := h.db.WithContext(c.Request.Context()).
		Where("slug = ?", c.Param("slug")).
		First(&business).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "business_not_found", "Estabelecimento não encontrado.")
		} else {
			writeError(c, err)
		}
		return nil, false
	}
	return &business, true
}

// staffFor returns the requested staff member, or the owner when none was
// asked for. Membership in the business is checked by the use cases.
func (h *PublicHandler) staffFor(c *gin.Context, businessID, requested uint) (uint, bool) {
	if requested != 0 {
		return requested, true
	}

	var owner models.User
	err := h.db.WithContext(c.Request.Context()).
		Where("business_id = ? AND role = ?", businessID, models.RoleOwner).
		Order("id ASC").
		First(&owner).Error
	if err != nil {
		httperr.BadRequest(c, "staff_not_found", "Profissional não encontrado.")
		return 0, false
	}
	return owner.ID, true
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	business, ok := h.businessBySlug(c)
	if !ok {
		return
	}

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.WithContext(c.Request.Context()).
		Where("business_id = ? AND active = true", business.ID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	var staff []models.User
	if err := h.db.WithContext(c.Request.Context()).
		Select("id", "name", "role").
		Where("business_id = ?", business.ID).
		Order("id ASC").
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Erro ao listar profissionais.")
		return
	}

	team := make([]gin.H, 0, len(staff))
	for _, s := range staff {
		team = append(team, gin.H{"id": s.ID, "name": s.Name, "role": s.Role})
	}

	c.JSON(http.StatusOK, gin.H{
		"business": gin.H{
			"name":     business.Name,
			"slug":     business.Slug,
			"phone":    business.Phone,
			"address":  business.Address,
			"timezone": business.Timezone,
		},
		"staff":    team,
		"services": services,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	productID, ok := queryID(c, "product_id")
	if !ok {
		return
	}
	if date == "" || productID == 0 {
		httperr.BadRequest(c, "missing_params", "Data e serviço obrigatórios.")
		return
	}

	requested, ok := queryID(c, "staff_id")
	if !ok {
		return
	}

	business, ok := h.businessBySlug(c)
	if !ok {
		return
	}

	staffID, ok := h.staffFor(c, business.ID, requested)
	if !ok {
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BusinessID: business.ID,
		StaffID:    staffID,
		ServiceID:  productID,
		Date:       date,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     date,
		"staff_id": staffID,
		"slots":    slots,
	})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	business, ok := h.businessBySlug(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	staffID, ok := h.staffFor(c, business.ID, req.StaffID)
	if !ok {
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), appointment.CreatePrivateAppointmentInput{
		BusinessID:    business.ID,
		StaffID:       staffID,
		CustomerName:  req.ClientName,
		CustomerPhone: req.ClientPhone,
		CustomerEmail: req.ClientEmail,
		ServiceID:     req.ProductID,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         ap.ID,
		"start_time": ap.StartTime,
		"end_time":   ap.EndTime,
		"status":     ap.Status,
	})
}
