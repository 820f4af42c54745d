package appointment

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type fakeRepo struct {
	mu sync.Mutex

	business  models.Business
	staff     map[uint]models.User
	services  map[uint]models.Service
	hours     map[int]models.WorkingHours
	breaks    []models.BreakInterval
	specials  map[string]models.SpecialDate
	customers map[string]*models.Customer
	apps      []*models.Appointment

	points  map[uint]int
	nextID  uint
	failAdd error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		business:  models.Business{ID: 1, Name: "Studio", Slug: "studio", Timezone: "UTC", MinAdvanceMinutes: 0},
		staff:     map[uint]models.User{7: {ID: 7, BusinessID: 1, Name: "Ana", Role: models.RoleOwner}},
		services:  map[uint]models.Service{3: {ID: 3, BusinessID: 1, Name: "Cut", DurationMin: 30, Price: 45.9, Active: true}},
		hours:     map[int]models.WorkingHours{},
		specials:  map[string]models.SpecialDate{},
		customers: map[string]*models.Customer{},
		points:    map[uint]int{},
		nextID:    100,
	}
}

func (r *fakeRepo) openDay(weekday int, start, end string) {
	r.hours[weekday] = models.WorkingHours{StaffID: 7, Weekday: weekday, Active: true, StartTime: start, EndTime: end}
}

func (r *fakeRepo) addBreak(weekday int, start, end string) {
	r.breaks = append(r.breaks, models.BreakInterval{StaffID: 7, Weekday: weekday, StartTime: start, EndTime: end})
}

func (r *fakeRepo) book(start time.Time, minutes int, status domain.Status) *models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	ap := &models.Appointment{
		ID: r.nextID, BusinessID: 1, StaffID: 7, ServiceID: 3,
		Service:   r.services[3],
		StartTime: start, EndTime: start.Add(time.Duration(minutes) * time.Minute),
		Status: string(status),
	}
	r.apps = append(r.apps, ap)
	return ap
}

func (r *fakeRepo) GetBusinessByID(_ context.Context, id uint) (*models.Business, error) {
	if id != r.business.ID {
		return nil, gorm.ErrRecordNotFound
	}
	b := r.business
	return &b, nil
}

func (r *fakeRepo) GetStaff(_ context.Context, businessID, staffID uint) (*models.User, error) {
	s, ok := r.staff[staffID]
	if !ok || s.BusinessID != businessID {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *fakeRepo) GetService(_ context.Context, businessID, serviceID uint) (*models.Service, error) {
	s, ok := r.services[serviceID]
	if !ok || s.BusinessID != businessID || !s.Active {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *fakeRepo) GetOrCreateCustomer(_ context.Context, businessID uint, name, phone, email string) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.customers[phone]; ok {
		return c, nil
	}
	r.nextID++
	c := &models.Customer{ID: r.nextID, BusinessID: businessID, Name: name, Phone: phone, Email: email}
	r.customers[phone] = c
	return c, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAdd != nil {
		return r.failAdd
	}
	r.nextID++
	ap.ID = r.nextID
	cp := *ap
	r.apps = append(r.apps, &cp)
	return nil
}

func (r *fakeRepo) GetAppointmentForStaff(_ context.Context, appointmentID, staffID uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ap := range r.apps {
		if ap.ID == appointmentID && ap.StaffID == staffID {
			cp := *ap
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, cur := range r.apps {
		if cur.ID == ap.ID {
			cp := *ap
			r.apps[i] = &cp
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeRepo) SaveCompleted(ctx context.Context, ap *models.Appointment, points int) error {
	if err := r.UpdateAppointment(ctx, ap); err != nil {
		return err
	}
	r.mu.Lock()
	r.points[ap.CustomerID] += points
	r.mu.Unlock()
	return nil
}

func (r *fakeRepo) GetWorkingDay(_ context.Context, _ uint, weekday int) (*models.WorkingHours, []models.BreakInterval, error) {
	wh, ok := r.hours[weekday]
	if !ok {
		return nil, nil, nil
	}
	var out []models.BreakInterval
	for _, b := range r.breaks {
		if b.Weekday == weekday {
			out = append(out, b)
		}
	}
	return &wh, out, nil
}

func (r *fakeRepo) GetSpecialDate(_ context.Context, _ uint, date string) (*models.SpecialDate, error) {
	sd, ok := r.specials[date]
	if !ok {
		return nil, nil
	}
	return &sd, nil
}

func (r *fakeRepo) ListBusy(_ context.Context, staffID uint, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.apps {
		if ap.StaffID == staffID && ap.Status == string(domain.StatusScheduled) &&
			ap.StartTime.Before(end) && ap.EndTime.After(start) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForPeriod(_ context.Context, staffID uint, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.apps {
		if ap.StaffID == staffID && !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type busyLocker struct{}

func (busyLocker) Acquire(context.Context, string) (func(), error) {
	return nil, errors.New("locked")
}

func domainSpecialClosed(date string) models.SpecialDate {
	return models.SpecialDate{StaffID: 7, Date: date, Closed: true}
}
