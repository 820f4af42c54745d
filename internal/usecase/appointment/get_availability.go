package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo    domain.Repository
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewGetAvailability(
	repo domain.Repository,
	m *metrics.Metrics,
) *GetAvailability {
	return &GetAvailability{
		repo:    repo,
		metrics: m,
		now:     time.Now,
	}
}

// Execute lists the day grid for a service. Points earlier than now plus the
// business minimum advance are dropped unless they are break markers.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.Slot, error) {

	business, err := uc.repo.GetBusinessByID(ctx, in.BusinessID)
	if err != nil {
		return nil, httperr.ErrBusiness("business_not_found")
	}

	date, err := timezone.ParseDate(business.Timezone, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	service, err := uc.repo.GetService(ctx, in.BusinessID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	staff, err := uc.repo.GetStaff(ctx, in.BusinessID, in.StaffID)
	if err != nil {
		return nil, httperr.ErrBusiness("staff_not_found")
	}

	rest := domain.RestMinutes(staff, business)

	day, busy, err := loadDay(ctx, uc.repo, staff.ID, date, rest)
	if err != nil {
		uc.metrics.SlotResult("error")
		return nil, err
	}

	candidates := schedule.ComputeSlots(
		day.Hours,
		day.Breaks,
		busy,
		rest,
		date,
		service.DurationMin,
	)

	minAllowed := uc.now().Add(time.Duration(max(business.MinAdvanceMinutes, 0)) * time.Minute)

	out := make([]domain.Slot, 0, len(candidates))
	for _, c := range candidates {
		available := c.Available && !c.Time.Before(minAllowed)
		if !available && !c.IsBreak {
			continue
		}
		out = append(out, domain.Slot{
			Time:      c.Label(),
			Available: available,
			IsBreak:   c.IsBreak,
		})
	}

	if len(out) == 0 {
		uc.metrics.SlotResult("empty")
	} else {
		uc.metrics.SlotResult("ok")
	}

	return out, nil
}
