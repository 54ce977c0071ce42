package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/arrazka/lifeboard/internal/finance"
	"github.com/arrazka/lifeboard/internal/models"
	"github.com/arrazka/lifeboard/internal/repository"
)

// RateConverter translates amounts between currencies. Implemented by the
// FX rates client; faked in tests.
type RateConverter interface {
	Convert(amount float64, from, to string) (float64, error)
}

// DashboardService assembles the landing-page summary
type DashboardService struct {
	users        *repository.UserRepository
	accounts     *AccountService
	transactions *TransactionService
	installments *InstallmentService
	debts        *DebtService
	prayers      *PrayerService
	quran        *QuranService
	rates        RateConverter
	log          *logrus.Logger
}

func NewDashboardService(
	users *repository.UserRepository,
	accounts *AccountService,
	transactions *TransactionService,
	installments *InstallmentService,
	debts *DebtService,
	prayers *PrayerService,
	quran *QuranService,
	rates RateConverter,
	log *logrus.Logger,
) *DashboardService {
	return &DashboardService{
		users:        users,
		accounts:     accounts,
		transactions: transactions,
		installments: installments,
		debts:        debts,
		prayers:      prayers,
		quran:        quran,
		rates:        rates,
		log:          log,
	}
}

// Dashboard is the aggregate view for the landing page
type Dashboard struct {
	BaseCurrency        string                 `json:"base_currency"`
	TotalBalance        decimal.Decimal        `json:"total_balance"`
	TotalBalanceDisplay string                 `json:"total_balance_display"`
	Accounts            []models.Account       `json:"accounts"`
	Month               *models.MonthlySummary `json:"month"`
	Plans               []PlanOverview         `json:"plans"`
	Debts               *DebtSummary           `json:"debts"`
	PrayerToday         *models.PrayerLog      `json:"prayer_today"`
	QuranProgress       *QuranProgress         `json:"quran_progress"`
	Alerts              []string               `json:"alerts"`
}

// Summary builds the full dashboard for one user as of today
func (s *DashboardService) Summary(ctx context.Context, userID int64, today time.Time) (*Dashboard, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	base := user.BaseCurrency

	accounts, err := s.accounts.ListAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Sum balances in the base currency; a dead FX feed downgrades
	// foreign accounts to a warning instead of failing the page
	total := decimal.Zero
	var alerts []string
	for _, account := range accounts {
		if account.Currency == base {
			total = total.Add(account.Balance)
			continue
		}
		converted, err := s.rates.Convert(account.Balance.InexactFloat64(), account.Currency, base)
		if err != nil {
			s.log.Warnf("Skipping account %s in total: %v", account.Name, err)
			alerts = append(alerts, fmt.Sprintf("%s excluded from total: no %s/%s rate", account.Name, account.Currency, base))
			continue
		}
		total = total.Add(decimal.NewFromFloat(converted))
	}

	month, err := s.transactions.MonthlySummary(ctx, userID, today.Year(), today.Month())
	if err != nil {
		return nil, err
	}

	plans, err := s.installments.ListPlans(ctx, userID, base, today)
	if err != nil {
		return nil, err
	}
	for _, plan := range plans {
		if plan.Plan.Status == models.PlanOverdue {
			alerts = append(alerts, fmt.Sprintf("%s installment is %s", plan.Plan.ItemName, plan.DueLabel))
		} else if plan.DueSoon {
			alerts = append(alerts, fmt.Sprintf("%s installment is %s", plan.Plan.ItemName, plan.DueLabel))
		}
	}

	debts, err := s.debts.Summary(ctx, userID, base, today)
	if err != nil {
		return nil, err
	}
	for _, up := range debts.Upcoming {
		if finance.IsDueSoon(up.DaysAway) {
			alerts = append(alerts, fmt.Sprintf("%s payment due %s", up.Debt.Name, up.DueDate.Format("Jan 2")))
		}
	}

	prayerToday, err := s.prayers.GetLog(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	quranProgress, err := s.quran.Progress(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		BaseCurrency:        base,
		TotalBalance:        total,
		TotalBalanceDisplay: finance.FormatAmount(total, base),
		Accounts:            accounts,
		Month:               month,
		Plans:               plans,
		Debts:               debts,
		PrayerToday:         prayerToday,
		QuranProgress:       quranProgress,
		Alerts:              alerts,
	}, nil
}
