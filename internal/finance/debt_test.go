package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrazka/lifeboard/internal/models"
)

func TestTotalDebtAndPercentagePaid(t *testing.T) {
	debts := []models.Debt{
		{TotalAmount: decimal.NewFromInt(1000), CurrentBalance: decimal.NewFromInt(1000)},
		{TotalAmount: decimal.NewFromInt(500), CurrentBalance: decimal.Zero},
	}

	if got := TotalDebt(debts); !got.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("TotalDebt = %s, want 1000", got)
	}
	if got := PercentagePaid(debts); got != 33.3 {
		t.Errorf("PercentagePaid = %v, want 33.3", got)
	}
}

func TestPercentagePaidEmpty(t *testing.T) {
	if got := PercentagePaid(nil); got != 0 {
		t.Errorf("PercentagePaid(nil) = %v, want 0", got)
	}
}

func TestNextDueDate(t *testing.T) {
	tests := []struct {
		name   string
		today  time.Time
		dueDay int
		want   time.Time
	}{
		{"later this month", date(2026, time.March, 10), 25, date(2026, time.March, 25)},
		{"today", date(2026, time.March, 10), 10, date(2026, time.March, 10)},
		{"already passed, rolls to next month", date(2026, time.March, 20), 5, date(2026, time.April, 5)},
		{"december rolls to january", date(2026, time.December, 30), 5, date(2027, time.January, 5)},
		{"day 31 clamps in february", date(2026, time.February, 1), 31, date(2026, time.February, 28)},
		{"day 31 clamps in leap february", date(2028, time.February, 1), 31, date(2028, time.February, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextDueDate(tt.today, tt.dueDay); !got.Equal(tt.want) {
				t.Errorf("NextDueDate = %s, want %s", got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestUpcomingPaymentsCrossesMonthBoundary(t *testing.T) {
	// today is the 28th; a 15-day window must pick up early-next-month due
	// days even though their day-of-month is numerically smaller
	today := date(2026, time.March, 28)
	debts := []models.Debt{
		{Name: "car loan", DueDay: 5, MinimumPayment: decimal.NewFromInt(250)},
		{Name: "credit card", DueDay: 30, MinimumPayment: decimal.NewFromInt(100)},
		{Name: "mortgage", DueDay: 20, MinimumPayment: decimal.NewFromInt(900)},
	}

	upcoming := UpcomingPayments(debts, today, 15)
	if len(upcoming) != 2 {
		t.Fatalf("got %d upcoming payments, want 2", len(upcoming))
	}
	if upcoming[0].Debt.Name != "credit card" {
		t.Errorf("first upcoming = %s, want credit card (Mar 30)", upcoming[0].Debt.Name)
	}
	if upcoming[1].Debt.Name != "car loan" {
		t.Errorf("second upcoming = %s, want car loan (Apr 5)", upcoming[1].Debt.Name)
	}
	if upcoming[1].DaysAway != 8 {
		t.Errorf("car loan DaysAway = %d, want 8", upcoming[1].DaysAway)
	}

	if got := TotalUpcoming(upcoming); !got.Equal(decimal.NewFromInt(350)) {
		t.Errorf("TotalUpcoming = %s, want 350", got)
	}
}

func TestUpcomingPaymentsSkipsInvalidDueDay(t *testing.T) {
	today := date(2026, time.March, 1)
	debts := []models.Debt{
		{Name: "bad", DueDay: 0},
		{Name: "also bad", DueDay: 32},
	}
	if got := UpcomingPayments(debts, today, 15); len(got) != 0 {
		t.Errorf("got %d upcoming payments, want 0", len(got))
	}
}

func TestUpcomingPaymentsSortedByDate(t *testing.T) {
	today := date(2026, time.March, 1)
	debts := []models.Debt{
		{Name: "b", DueDay: 10},
		{Name: "a", DueDay: 3},
		{Name: "c", DueDay: 10},
	}

	upcoming := UpcomingPayments(debts, today, 30)
	if len(upcoming) != 3 {
		t.Fatalf("got %d upcoming payments, want 3", len(upcoming))
	}
	order := []string{"a", "b", "c"}
	for i, want := range order {
		if upcoming[i].Debt.Name != want {
			t.Errorf("upcoming[%d] = %s, want %s", i, upcoming[i].Debt.Name, want)
		}
	}
}
