package customer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// FAKES
// ======================================================

type memRepo struct {
	byPhone map[string]*models.Customer
	nextID  uint
}

func newMemRepo() *memRepo {
	return &memRepo{byPhone: map[string]*models.Customer{}}
}

func (r *memRepo) List(_ context.Context, _ uint, _ string) ([]models.Customer, error) {
	out := []models.Customer{}
	for _, c := range r.byPhone {
		out = append(out, *c)
	}
	return out, nil
}

func (r *memRepo) UpsertByPhone(_ context.Context, c *models.Customer) (bool, error) {
	if existing, ok := r.byPhone[c.Phone]; ok {
		existing.Name = c.Name
		existing.Email = c.Email
		return false, nil
	}
	r.nextID++
	c.ID = r.nextID
	r.byPhone[c.Phone] = c
	return true, nil
}

func (r *memRepo) RedeemPoints(_ context.Context, _ uint, id uint, points int) (*models.Customer, error) {
	for _, c := range r.byPhone {
		if c.ID != id {
			continue
		}
		if c.LoyaltyPoints < points {
			return nil, httperr.ErrBusiness("insufficient_points")
		}
		c.LoyaltyPoints -= points
		return c, nil
	}
	return nil, httperr.ErrBusiness("customer_not_found")
}

type memStore map[string][]byte

func (s memStore) Get(_ context.Context, key string) (io.ReadCloser, error) {
	b, ok := s[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

type nopSink struct{}

func (nopSink) Save(context.Context, audit.Event) error { return nil }

func newImport(repo *memRepo, store memStore) *Import {
	return NewImport(repo, store, audit.NewDispatcher(nopSink{}, zap.NewNop()), zap.NewNop())
}

// ======================================================
// PARSING
// ======================================================

func TestParseFile_CSVAliasesAndBlankRows(t *testing.T) {
	in := "\nNome,Celular,E-mail\nAna,11 99999-0000,ana@x.com\n,,\nBia,11988887777,\n"

	rows, err := ParseFile("clientes.CSV", strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, Row{Line: 3, Name: "Ana", Phone: "11 99999-0000", Email: "ana@x.com"}, rows[0])
	assert.Equal(t, 5, rows[1].Line)
	assert.Equal(t, "", rows[1].Email)
}

func TestParseFile_SemicolonCSV(t *testing.T) {
	in := "name;phone\nAna;11999990000\n"

	rows, err := ParseFile("x.csv", strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "11999990000", rows[0].Phone)
}

func TestParseFile_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Telefone", "Name"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"11999990000", "Ana"}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]any{"11988887777", "Bia"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := ParseFile("clientes.xlsx", buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ana", rows[0].Name)
	assert.Equal(t, "Bia", rows[1].Name)
	assert.Equal(t, 4, rows[1].Line)
}

func TestParseFile_Errors(t *testing.T) {
	_, err := ParseFile("x.txt", strings.NewReader("name,phone"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ParseFile("x.csv", strings.NewReader("name,email\nAna,a@b.com\n"))
	assert.ErrorIs(t, err, ErrMissingColumns)

	var b strings.Builder
	b.WriteString("name,phone\n")
	for i := 0; i <= MaxImportRows; i++ {
		b.WriteString("Ana,11999990000\n")
	}
	_, err = ParseFile("x.csv", strings.NewReader(b.String()))
	assert.ErrorIs(t, err, ErrTooManyRows)

	big := "name,phone\n" + strings.Repeat("x", MaxImportBytes)
	_, err = ParseFile("x.csv", strings.NewReader(big))
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

// ======================================================
// IMPORT
// ======================================================

func TestImport_Execute(t *testing.T) {
	repo := newMemRepo()
	repo.byPhone["11999990000"] = &models.Customer{ID: 1, Name: "Old", Phone: "11999990000"}
	repo.nextID = 1

	store := memStore{
		"imports/1/a.csv": []byte("name,phone,email\n" +
			"Ana,(11) 99999-0000,ana@x.com\n" +
			"Bia,11988887777,\n" +
			",11977776666,\n" +
			"Caio,123,\n" +
			"Duda,11966665555,not-an-email\n"),
	}

	res, err := newImport(repo, store).Execute(context.Background(), 1, 9, "imports/1/a.csv")
	require.NoError(t, err)

	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 3, res.Skipped)
	assert.Equal(t, []RowError{
		{Line: 4, Message: "missing name"},
		{Line: 5, Message: "invalid phone"},
		{Line: 6, Message: "invalid email"},
	}, res.Errors)

	assert.Equal(t, "Ana", repo.byPhone["11999990000"].Name)
}

func TestImport_Failures(t *testing.T) {
	ctx := context.Background()

	_, err := NewImport(newMemRepo(), nil, nil, zap.NewNop()).Execute(ctx, 1, 1, "imports/1/a.csv")
	assert.True(t, httperr.IsBusiness(err, "import_unavailable"))

	uc := newImport(newMemRepo(), memStore{"imports/1/bad.csv": []byte("foo,bar\n1,2\n")})

	_, err = uc.Execute(ctx, 1, 1, "imports/1/missing.csv")
	assert.True(t, httperr.IsBusiness(err, "import_file_not_found"))

	_, err = uc.Execute(ctx, 1, 1, "imports/1/bad.csv")
	assert.True(t, httperr.IsBusiness(err, "invalid_header"))
}

func TestImport_RejectsKeysOfOtherBusinesses(t *testing.T) {
	repo := newMemRepo()
	store := memStore{
		"imports/2/clients.csv": []byte("name,phone\nAna,11999990000\n"),
		"clients.csv":           []byte("name,phone\nAna,11999990000\n"),
	}
	uc := newImport(repo, store)

	for _, key := range []string{
		"imports/2/clients.csv",
		"imports/1/../2/clients.csv",
		"imports/12/clients.csv",
		"imports/1/",
		"clients.csv",
	} {
		_, err := uc.Execute(context.Background(), 1, 9, key)
		assert.True(t, httperr.IsBusiness(err, "invalid_key"), key)
	}

	assert.Empty(t, repo.byPhone)
	assert.Equal(t, "imports/1/", KeyPrefix(1))
}

func TestCustomers_Redeem(t *testing.T) {
	repo := newMemRepo()
	repo.byPhone["1"] = &models.Customer{ID: 3, LoyaltyPoints: 50}

	uc := NewCustomers(repo, audit.NewDispatcher(nopSink{}, zap.NewNop()))
	ctx := context.Background()

	_, err := uc.Redeem(ctx, 1, 1, 3, 0)
	assert.True(t, httperr.IsBusiness(err, "invalid_points"))

	_, err = uc.Redeem(ctx, 1, 1, 3, 80)
	assert.True(t, httperr.IsBusiness(err, "insufficient_points"))

	c, err := uc.Redeem(ctx, 1, 1, 3, 30)
	require.NoError(t, err)
	assert.Equal(t, 20, c.LoyaltyPoints)
}
