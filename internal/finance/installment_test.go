package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrazka/lifeboard/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRemainingBalanceFromCounters(t *testing.T) {
	plan := models.InstallmentPlan{
		TotalAmount:       decimal.NewFromInt(1200),
		InstallmentAmount: decimal.NewFromInt(100),
		InstallmentsTotal: 12,
		InstallmentsPaid:  3,
	}

	got := RemainingBalance(plan, nil)
	if !got.Equal(decimal.NewFromInt(900)) {
		t.Errorf("RemainingBalance = %s, want 900", got)
	}
	if pct := ProgressPercent(plan, nil); pct != 25 {
		t.Errorf("ProgressPercent = %d, want 25", pct)
	}
}

func TestRemainingBalanceNeverNegative(t *testing.T) {
	plan := models.InstallmentPlan{
		TotalAmount:       decimal.NewFromInt(500),
		InstallmentAmount: decimal.NewFromInt(100),
		InstallmentsTotal: 6,
		InstallmentsPaid:  6, // overpaid relative to total
	}

	got := RemainingBalance(plan, nil)
	if got.IsNegative() {
		t.Errorf("RemainingBalance = %s, want >= 0", got)
	}
	if !got.Equal(decimal.Zero) {
		t.Errorf("RemainingBalance = %s, want 0", got)
	}
}

func TestRemainingBalanceScheduleTakesPrecedence(t *testing.T) {
	plan := models.InstallmentPlan{
		TotalAmount:       decimal.NewFromInt(500),
		InstallmentAmount: decimal.NewFromInt(100),
		InstallmentsTotal: 5,
		InstallmentsPaid:  4, // disagrees with the schedule below
	}
	schedule := make([]models.Installment, 5)
	for i := range schedule {
		schedule[i] = models.Installment{
			Sequence: i + 1,
			Amount:   decimal.NewFromInt(100),
			DueDate:  date(2026, time.January, 1).AddDate(0, i, 0),
			Paid:     i < 2,
		}
	}

	if got := RemainingBalance(plan, schedule); !got.Equal(decimal.NewFromInt(300)) {
		t.Errorf("RemainingBalance = %s, want 300 from unpaid schedule rows", got)
	}
	if got := PaidCount(plan, schedule); got != 2 {
		t.Errorf("PaidCount = %d, want 2 from schedule", got)
	}
	if got := ProgressPercent(plan, schedule); got != 40 {
		t.Errorf("ProgressPercent = %d, want 40", got)
	}
}

func TestProgressPercentZeroTotal(t *testing.T) {
	plan := models.InstallmentPlan{InstallmentsTotal: 0, InstallmentsPaid: 3}
	if got := ProgressPercent(plan, nil); got != 0 {
		t.Errorf("ProgressPercent with zero total = %d, want 0", got)
	}
}

func TestProgressPercentBounds(t *testing.T) {
	plan := models.InstallmentPlan{InstallmentsTotal: 4, InstallmentsPaid: 9}
	if got := ProgressPercent(plan, nil); got != 100 {
		t.Errorf("ProgressPercent = %d, want clamped to 100", got)
	}
}

func TestClassifyDue(t *testing.T) {
	today := date(2026, time.March, 15)

	tests := []struct {
		name string
		due  *time.Time
		want DueState
	}{
		{"no due date", nil, DueState{Kind: NoDueDate}},
		{"due today", ptr(date(2026, time.March, 15)), DueState{Kind: DueToday}},
		{"due tomorrow", ptr(date(2026, time.March, 16)), DueState{Kind: DueTomorrow}},
		{"due in five days", ptr(date(2026, time.March, 20)), DueState{Kind: DueInDays, Days: 5}},
		{"one day late", ptr(date(2026, time.March, 14)), DueState{Kind: Overdue, Days: 1}},
		{"ten days late", ptr(date(2026, time.March, 5)), DueState{Kind: Overdue, Days: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDue(today, tt.due)
			if got != tt.want {
				t.Errorf("ClassifyDue = %+v, want %+v", got, tt.want)
			}
			// classification is pure: same inputs, same answer
			if again := ClassifyDue(today, tt.due); again != got {
				t.Errorf("ClassifyDue not idempotent: %+v then %+v", got, again)
			}
		})
	}
}

func TestClassifyDueIgnoresTimeOfDay(t *testing.T) {
	// 23:59 today vs 00:01 tomorrow is still one calendar day apart
	today := time.Date(2026, time.March, 15, 23, 59, 0, 0, time.UTC)
	due := time.Date(2026, time.March, 16, 0, 1, 0, 0, time.UTC)

	got := ClassifyDue(today, &due)
	if got.Kind != DueTomorrow {
		t.Errorf("ClassifyDue = %+v, want DueTomorrow", got)
	}
}

func TestIsDueSoon(t *testing.T) {
	for diff, want := range map[int]bool{-1: false, 0: true, 1: true, 3: true, 4: false} {
		if got := IsDueSoon(diff); got != want {
			t.Errorf("IsDueSoon(%d) = %v, want %v", diff, got, want)
		}
	}
}

func TestDerivePlanStatus(t *testing.T) {
	today := date(2026, time.March, 15)

	tests := []struct {
		name    string
		paid    int
		total   int
		nextDue *time.Time
		want    models.PlanStatus
	}{
		{"all paid", 12, 12, nil, models.PlanCompleted},
		{"all paid wins over stale due date", 12, 12, ptr(date(2026, time.January, 1)), models.PlanCompleted},
		{"past due", 3, 12, ptr(date(2026, time.March, 10)), models.PlanOverdue},
		{"due today still active", 3, 12, ptr(date(2026, time.March, 15)), models.PlanActive},
		{"future due", 3, 12, ptr(date(2026, time.April, 15)), models.PlanActive},
		{"no due date", 3, 12, nil, models.PlanActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DerivePlanStatus(tt.paid, tt.total, tt.nextDue, today); got != tt.want {
				t.Errorf("DerivePlanStatus = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDueStateString(t *testing.T) {
	tests := []struct {
		state DueState
		want  string
	}{
		{DueState{Kind: NoDueDate}, "no due date set"},
		{DueState{Kind: DueToday}, "due today"},
		{DueState{Kind: DueTomorrow}, "due tomorrow"},
		{DueState{Kind: DueInDays, Days: 7}, "due in 7 days"},
		{DueState{Kind: Overdue, Days: 1}, "overdue by 1 day"},
		{DueState{Kind: Overdue, Days: 4}, "overdue by 4 days"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func ptr(t time.Time) *time.Time { return &t }
