package appointment

import (
	"fmt"
	"math"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := Transition(Status(ap.Status), StatusCancelled); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := Transition(Status(ap.Status), StatusCompleted); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// LoyaltyPoints is floor(price) * rate; fractional cents never earn points.
func LoyaltyPoints(price float64, rate int) int {
	if price <= 0 || rate <= 0 {
		return 0
	}
	return int(math.Floor(price)) * rate
}

// StaffLockKey is the lock guarding the agenda of one staff member.
func StaffLockKey(staffID uint) string {
	return fmt.Sprintf("booking:staff:%d", staffID)
}

// RestMinutes resolves the buffer kept after each appointment of staff.
func RestMinutes(staff *models.User, business *models.Business) int {
	if staff != nil && staff.RestMinutes != nil {
		return max(*staff.RestMinutes, 0)
	}
	if business != nil {
		return max(business.DefaultRestMinutes, 0)
	}
	return 0
}
