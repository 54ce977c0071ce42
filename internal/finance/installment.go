// Package finance contains the pure computations behind the dashboard:
// installment plan accounting, debt aggregation and money formatting.
// Everything here is a total function over already-fetched records; no
// database access, no clock reads, no panics on degenerate input.
package finance

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrazka/lifeboard/internal/models"
)

// DueKind classifies how soon a payment is due
type DueKind int

const (
	NoDueDate DueKind = iota
	Overdue
	DueToday
	DueTomorrow
	DueInDays
)

// DueState is the due classification plus the day count it carries.
// Days holds days late for Overdue and days ahead for DueInDays.
type DueState struct {
	Kind DueKind `json:"kind"`
	Days int     `json:"days"`
}

func (s DueState) String() string {
	switch s.Kind {
	case Overdue:
		if s.Days == 1 {
			return "overdue by 1 day"
		}
		return fmt.Sprintf("overdue by %d days", s.Days)
	case DueToday:
		return "due today"
	case DueTomorrow:
		return "due tomorrow"
	case DueInDays:
		return fmt.Sprintf("due in %d days", s.Days)
	default:
		return "no due date set"
	}
}

// DaysUntil returns the calendar-day difference between today and due.
// Both dates are truncated to their own local midnight first, so the
// time-of-day components can never skew the count.
func DaysUntil(today, due time.Time) int {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(t).Hours() / 24)
}

// ClassifyDue maps a due date to its display state relative to today
func ClassifyDue(today time.Time, due *time.Time) DueState {
	if due == nil {
		return DueState{Kind: NoDueDate}
	}
	diff := DaysUntil(today, *due)
	switch {
	case diff < 0:
		return DueState{Kind: Overdue, Days: -diff}
	case diff == 0:
		return DueState{Kind: DueToday}
	case diff == 1:
		return DueState{Kind: DueTomorrow}
	default:
		return DueState{Kind: DueInDays, Days: diff}
	}
}

// IsDueSoon reports whether a day difference deserves UI emphasis
func IsDueSoon(diff int) bool {
	return diff >= 0 && diff <= 3
}

// PaidCount returns how many installments are paid. The detailed schedule
// takes precedence over the plan's scalar counter when both exist.
func PaidCount(plan models.InstallmentPlan, schedule []models.Installment) int {
	if len(schedule) == 0 {
		return plan.InstallmentsPaid
	}
	paid := 0
	for _, ins := range schedule {
		if ins.Paid {
			paid++
		}
	}
	return paid
}

// RemainingBalance returns the amount still owed on a plan, never negative.
// With a detailed schedule it is the sum of unpaid installment amounts;
// otherwise total minus installment amount times the paid counter.
func RemainingBalance(plan models.InstallmentPlan, schedule []models.Installment) decimal.Decimal {
	if len(schedule) > 0 {
		remaining := decimal.Zero
		for _, ins := range schedule {
			if !ins.Paid {
				remaining = remaining.Add(ins.Amount)
			}
		}
		return remaining
	}

	paid := decimal.NewFromInt(int64(plan.InstallmentsPaid))
	remaining := plan.TotalAmount.Sub(plan.InstallmentAmount.Mul(paid))
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// ProgressPercent returns the rounded paid percentage, 0-100.
// A plan with zero total installments reports 0 rather than failing.
func ProgressPercent(plan models.InstallmentPlan, schedule []models.Installment) int {
	if plan.InstallmentsTotal == 0 {
		return 0
	}
	paid := PaidCount(plan, schedule)
	pct := int(math.Round(float64(paid) / float64(plan.InstallmentsTotal) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// DerivePlanStatus computes the lifecycle status from the plan's figures
// instead of trusting a stored column. Completed wins over overdue.
func DerivePlanStatus(paid, total int, nextDue *time.Time, today time.Time) models.PlanStatus {
	if total > 0 && paid >= total {
		return models.PlanCompleted
	}
	if nextDue != nil && DaysUntil(today, *nextDue) < 0 {
		return models.PlanOverdue
	}
	return models.PlanActive
}
