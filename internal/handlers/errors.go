package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type errorInfo struct {
	status  int
	message string
}

var businessErrors = map[string]errorInfo{
	"business_not_found":     {http.StatusNotFound, "Estabelecimento não encontrado."},
	"staff_not_found":        {http.StatusBadRequest, "Profissional não encontrado."},
	"service_not_found":      {http.StatusBadRequest, "Serviço não encontrado."},
	"customer_not_found":     {http.StatusNotFound, "Cliente não encontrado."},
	"appointment_not_found":  {http.StatusNotFound, "Agendamento não encontrado."},
	"special_date_not_found": {http.StatusNotFound, "Data especial não encontrada."},

	"invalid_date":          {http.StatusBadRequest, "Data inválida."},
	"invalid_range":         {http.StatusBadRequest, "Período inválido."},
	"invalid_date_or_time":  {http.StatusBadRequest, "Data ou hora inválida."},
	"invalid_time":          {http.StatusBadRequest, "Horário inválido (use HH:MM)."},
	"invalid_weekday":       {http.StatusBadRequest, "Dia da semana inválido."},
	"start_not_before_end":  {http.StatusBadRequest, "O início deve ser antes do fim."},
	"too_soon":              {http.StatusBadRequest, "Horário inválido."},
	"outside_working_hours": {http.StatusBadRequest, "Fora do horário de atendimento."},
	"break_conflict":        {http.StatusBadRequest, "Horário coincide com um intervalo."},
	"invalid_state":         {http.StatusBadRequest, "Operação não permitida para o status atual."},
	"invalid_phone":         {http.StatusBadRequest, "Telefone inválido."},
	"invalid_email":         {http.StatusBadRequest, "E-mail inválido."},

	"time_conflict":       {http.StatusConflict, "Conflito de horário."},
	"booking_in_progress": {http.StatusConflict, "Outro agendamento está em andamento, tente novamente."},

	"invalid_points":      {http.StatusBadRequest, "Quantidade de pontos inválida."},
	"insufficient_points": {http.StatusBadRequest, "Pontos insuficientes."},

	"import_unavailable":    {http.StatusServiceUnavailable, "Importação não configurada."},
	"import_file_not_found": {http.StatusNotFound, "Arquivo não encontrado."},
	"unsupported_format":    {http.StatusBadRequest, "Formato não suportado (use .csv ou .xlsx)."},
	"invalid_header":        {http.StatusBadRequest, "Cabeçalho deve conter nome e telefone."},
	"too_many_rows":         {http.StatusBadRequest, "Arquivo excede o limite de linhas."},
	"file_too_large":        {http.StatusRequestEntityTooLarge, "Arquivo excede o tamanho máximo."},
	"invalid_file":          {http.StatusBadRequest, "Arquivo inválido."},
	"invalid_key":           {http.StatusBadRequest, "Chave de arquivo inválida."},

	"payments_unavailable": {http.StatusServiceUnavailable, "Pagamentos não configurados."},
	"already_paid":         {http.StatusConflict, "Agendamento já pago."},
	"payment_pending":      {http.StatusConflict, "Pagamento em processamento."},
	"payment_in_progress":  {http.StatusConflict, "Outra cobrança está em andamento, tente novamente."},
	"invalid_amount":       {http.StatusBadRequest, "Serviço sem valor para cobrança."},
	"payment_failed":       {http.StatusBadGateway, "Falha ao processar o pagamento."},
}

// writeError renders a use case error. Unknown errors become 500 and are
// attached to the context for the request logger.
func writeError(c *gin.Context, err error) {
	if httperr.FromValidation(c, err) {
		return
	}

	if code, ok := httperr.BusinessCode(err); ok {
		info, known := businessErrors[code]
		if !known {
			info = errorInfo{http.StatusBadRequest, "Requisição inválida."}
		}
		httperr.Write(c, info.status, code, info.message)
		return
	}

	if httperr.IsExclusionConflict(err) {
		httperr.Conflict(c, "time_conflict", businessErrors["time_conflict"].message)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "not_found", "Registro não encontrado.")
		return
	}

	_ = c.Error(err)
	httperr.Internal(c, "internal_error", "Erro interno.")
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// queryID parses an optional numeric query parameter; 0 means absent.
func queryID(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_"+name, "Parâmetro inválido: "+name+".")
		return 0, false
	}
	return uint(id), true
}
