package httperr

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
)

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("create: %w", ErrBusiness("time_conflict"))

	assert.True(t, IsBusiness(err, "time_conflict"))
	assert.False(t, IsBusiness(err, "too_soon"))

	code, ok := BusinessCode(err)
	assert.True(t, ok)
	assert.Equal(t, "time_conflict", code)
}

func TestIsExclusionConflict(t *testing.T) {
	assert.True(t, IsExclusionConflict(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"})))
	assert.True(t, IsExclusionConflict(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsExclusionConflict(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsExclusionConflict(ErrBusiness("time_conflict")))
}

func TestFromValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	err := &schedule.ValidationError{Day: "tuesday", Index: 1, Err: schedule.ErrBreaksOverlap}
	require.True(t, FromValidation(c, err))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "breaks_overlap", body.Code)
	assert.Equal(t, "tuesday: break 2: breaks overlap", body.Message)
}

func TestFromValidation_OtherErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.False(t, FromValidation(c, ErrBusiness("x")))
}
