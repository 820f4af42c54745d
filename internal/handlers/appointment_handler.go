package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/payment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availability *appointment.GetAvailability
	create       *appointment.CreatePrivateAppointment
	cancel       *appointment.CancelAppointment
	complete     *appointment.CompleteAppointment
	list         *appointment.ListAppointments
	charge       *payment.Charge
}

func NewAppointmentHandler(
	availability *appointment.GetAvailability,
	create *appointment.CreatePrivateAppointment,
	cancel *appointment.CancelAppointment,
	complete *appointment.CompleteAppointment,
	list *appointment.ListAppointments,
	charge *payment.Charge,
) *AppointmentHandler {
	return &AppointmentHandler{
		availability: availability,
		create:       create,
		cancel:       cancel,
		complete:     complete,
		list:         list,
		charge:       charge,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ProductID   uint   `json:"product_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:MM
	Notes       string `json:"notes"`
}

type ChargeRequest struct {
	Token           string `json:"token" binding:"required"`
	PaymentMethodID string `json:"payment_method_id" binding:"required"`
	Installments    int    `json:"installments"`
	PayerEmail      string `json:"payer_email"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviço obrigatórios.")
		return
	}

	productID, ok := queryID(c, "product_id")
	if !ok {
		return
	}
	if productID == 0 {
		httperr.BadRequest(c, "missing_params", "Data e serviço obrigatórios.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BusinessID: middleware.BusinessID(c),
		StaffID:    middleware.UserID(c),
		ServiceID:  productID,
		Date:       date,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": slots,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	staffID := middleware.UserID(c)

	ap, err := h.create.Execute(c.Request.Context(), appointment.CreatePrivateAppointmentInput{
		BusinessID:    middleware.BusinessID(c),
		StaffID:       staffID,
		ActorID:       &staffID,
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

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	out, err := h.list.ByDate(
		c.Request.Context(),
		middleware.UserID(c),
		middleware.BusinessID(c),
		date,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	out, err := h.list.ByMonth(
		c.Request.Context(),
		middleware.UserID(c),
		middleware.BusinessID(c),
		year,
		month,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": out,
	})
}

// ======================================================
// STATUS CHANGES
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(
		c.Request.Context(),
		middleware.BusinessID(c),
		middleware.UserID(c),
		id,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	res, err := h.complete.Execute(
		c.Request.Context(),
		middleware.BusinessID(c),
		middleware.UserID(c),
		id,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// ======================================================
// PAYMENT
// ======================================================

func (h *AppointmentHandler) Charge(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados de pagamento inválidos.")
		return
	}

	p, err := h.charge.Execute(c.Request.Context(), payment.ChargeInput{
		BusinessID:      middleware.BusinessID(c),
		StaffID:         middleware.UserID(c),
		AppointmentID:   id,
		Token:           req.Token,
		PaymentMethodID: req.PaymentMethodID,
		Installments:    req.Installments,
		PayerEmail:      req.PayerEmail,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}
