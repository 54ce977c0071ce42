package finance

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrazka/lifeboard/internal/models"
)

// UpcomingPayment is a debt projected onto its next concrete due date
type UpcomingPayment struct {
	Debt     models.Debt `json:"debt"`
	DueDate  time.Time   `json:"due_date"`
	DaysAway int         `json:"days_away"`
}

// TotalDebt sums the outstanding balances
func TotalDebt(debts []models.Debt) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		total = total.Add(d.CurrentBalance)
	}
	return total
}

// PercentagePaid returns how much of the combined original debt has been
// paid off, rounded to one decimal place. Zero when there is no debt.
func PercentagePaid(debts []models.Debt) float64 {
	total := decimal.Zero
	balance := decimal.Zero
	for _, d := range debts {
		total = total.Add(d.TotalAmount)
		balance = balance.Add(d.CurrentBalance)
	}
	if total.IsZero() {
		return 0
	}
	pct := total.Sub(balance).Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64()
	return math.Round(pct*10) / 10
}

// NextDueDate projects a day-of-month onto the next concrete date on or
// after today. Days past the end of a month clamp to its last day, so a
// due day of 31 falls due on Feb 28 (29 in leap years).
func NextDueDate(today time.Time, dueDay int) time.Time {
	year, month, _ := today.Date()

	due := time.Date(year, month, clampDay(year, month, dueDay), 0, 0, 0, 0, time.UTC)
	start := time.Date(year, month, today.Day(), 0, 0, 0, 0, time.UTC)
	if due.Before(start) {
		year, month = nextMonth(year, month)
		due = time.Date(year, month, clampDay(year, month, dueDay), 0, 0, 0, 0, time.UTC)
	}
	return due
}

// UpcomingPayments returns the debts whose next due date falls within
// windowDays of today, sorted by due date. The window crosses month
// boundaries correctly: day-of-month values are projected onto real
// calendar dates before comparing.
func UpcomingPayments(debts []models.Debt, today time.Time, windowDays int) []UpcomingPayment {
	upcoming := make([]UpcomingPayment, 0, len(debts))
	for _, d := range debts {
		if d.DueDay < 1 || d.DueDay > 31 {
			continue
		}
		due := NextDueDate(today, d.DueDay)
		days := DaysUntil(today, due)
		if days <= windowDays {
			upcoming = append(upcoming, UpcomingPayment{Debt: d, DueDate: due, DaysAway: days})
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		if !upcoming[i].DueDate.Equal(upcoming[j].DueDate) {
			return upcoming[i].DueDate.Before(upcoming[j].DueDate)
		}
		return upcoming[i].Debt.Name < upcoming[j].Debt.Name
	})
	return upcoming
}

// TotalUpcoming sums the minimum payments of an upcoming-payment set
func TotalUpcoming(upcoming []UpcomingPayment) decimal.Decimal {
	total := decimal.Zero
	for _, up := range upcoming {
		total = total.Add(up.Debt.MinimumPayment)
	}
	return total
}

func clampDay(year int, month time.Month, day int) int {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		return last
	}
	return day
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}
