package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/customer"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

type RowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

type ImportResult struct {
	Total   int        `json:"total"`
	Created int        `json:"created"`
	Updated int        `json:"updated"`
	Skipped int        `json:"skipped"`
	Errors  []RowError `json:"errors"`
}

type Import struct {
	repo  domain.Repository
	store domain.ObjectStore
	audit *audit.Dispatcher
	log   *zap.Logger
}

// NewImport accepts a nil store; Execute then fails with import_unavailable.
func NewImport(
	repo domain.Repository,
	store domain.ObjectStore,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *Import {
	return &Import{repo: repo, store: store, audit: audit, log: log}
}

func (uc *Import) Execute(
	ctx context.Context,
	businessID uint,
	actorID uint,
	key string,
) (*ImportResult, error) {

	if uc.store == nil {
		return nil, httperr.ErrBusiness("import_unavailable")
	}

	if !ownsKey(businessID, key) {
		return nil, httperr.ErrBusiness("invalid_key")
	}

	body, err := uc.store.Get(ctx, key)
	if err != nil {
		uc.log.Warn("import object not readable", zap.String("key", key), zap.Error(err))
		return nil, httperr.ErrBusiness("import_file_not_found")
	}
	defer body.Close()

	rows, err := ParseFile(key, body)
	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return nil, httperr.ErrBusiness("unsupported_format")
	case errors.Is(err, ErrMissingColumns):
		return nil, httperr.ErrBusiness("invalid_header")
	case errors.Is(err, ErrTooManyRows):
		return nil, httperr.ErrBusiness("too_many_rows")
	case errors.Is(err, ErrFileTooLarge):
		return nil, httperr.ErrBusiness("file_too_large")
	case err != nil:
		return nil, httperr.ErrBusiness("invalid_file")
	}

	res := &ImportResult{Total: len(rows), Errors: []RowError{}}

	for _, row := range rows {
		c, msg := toCustomer(businessID, row)
		if msg != "" {
			res.Skipped++
			res.Errors = append(res.Errors, RowError{Line: row.Line, Message: msg})
			continue
		}

		created, err := uc.repo.UpsertByPhone(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", row.Line, err)
		}
		if created {
			res.Created++
		} else {
			res.Updated++
		}
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		UserID:     &actorID,
		Action:     "customers_imported",
		Entity:     "customer",
		Metadata: map[string]any{
			"key":     key,
			"created": res.Created,
			"updated": res.Updated,
			"skipped": res.Skipped,
		},
	})

	return res, nil
}

// KeyPrefix is where uploads of one business live in the bucket.
func KeyPrefix(businessID uint) string {
	return fmt.Sprintf("imports/%d/", businessID)
}

func ownsKey(businessID uint, key string) bool {
	prefix := KeyPrefix(businessID)
	return strings.HasPrefix(key, prefix) &&
		len(key) > len(prefix) &&
		!strings.Contains(key, "..")
}

func toCustomer(businessID uint, row Row) (*models.Customer, string) {
	if row.Name == "" {
		return nil, "missing name"
	}

	phone, ok := validators.NormalizePhone(row.Phone)
	if !ok {
		return nil, "invalid phone"
	}

	if row.Email != "" && !validators.IsEmailValid(row.Email) {
		return nil, "invalid email"
	}

	return &models.Customer{
		BusinessID: businessID,
		Name:       row.Name,
		Phone:      phone,
		Email:      row.Email,
	}, ""
}
