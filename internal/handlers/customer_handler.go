package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/customer"
)

type CustomerHandler struct {
	customers *customer.Customers
	importer  *customer.Import
}

func NewCustomerHandler(customers *customer.Customers, importer *customer.Import) *CustomerHandler {
	return &CustomerHandler{customers: customers, importer: importer}
}

type ImportCustomersRequest struct {
	Key string `json:"key" binding:"required"`
}

type RedeemPointsRequest struct {
	Points int `json:"points" binding:"required"`
}

func (h *CustomerHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	out, err := h.customers.List(c.Request.Context(), middleware.BusinessID(c), query)
	if err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, out)
}

func (h *CustomerHandler) Import(c *gin.Context) {
	var req ImportCustomersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe a chave do arquivo.")
		return
	}

	res, err := h.importer.Execute(
		c.Request.Context(),
		middleware.BusinessID(c),
		middleware.UserID(c),
		req.Key,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *CustomerHandler) Redeem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req RedeemPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	cust, err := h.customers.Redeem(
		c.Request.Context(),
		middleware.BusinessID(c),
		middleware.UserID(c),
		id,
		req.Points,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, cust)
}
