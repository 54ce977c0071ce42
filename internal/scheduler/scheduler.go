// Package scheduler runs the nightly maintenance job: refreshing stored
// plan statuses from their derived projection and mailing payment
// reminders for anything overdue or due within the next three days.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/arrazka/lifeboard/internal/finance"
	"github.com/arrazka/lifeboard/internal/models"
	"github.com/arrazka/lifeboard/internal/repository"
	"github.com/arrazka/lifeboard/internal/utils/email"
)

// jobTimeout bounds one full run across all users
const jobTimeout = 5 * time.Minute

// Scheduler owns the cron instance and the nightly job
type Scheduler struct {
	cron   *cron.Cron
	users  *repository.UserRepository
	plans  *repository.InstallmentRepository
	debts  *repository.DebtRepository
	sender *email.Sender
	log    *logrus.Logger
}

func New(users *repository.UserRepository, plans *repository.InstallmentRepository, debts *repository.DebtRepository, sender *email.Sender, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		users:  users,
		plans:  plans,
		debts:  debts,
		sender: sender,
		log:    log,
	}
}

// Start registers the job under the given cron expression and starts the
// cron loop
func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, s.RunDaily)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Infof("Reminder scheduler started: %s", spec)
	return nil
}

// Stop waits for a running job before shutting the cron loop down
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// RunDaily refreshes statuses and sends reminders for every user
func (s *Scheduler) RunDaily() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	today := time.Now()

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		s.log.Errorf("Reminder run failed to list users: %v", err)
		return
	}

	for _, user := range users {
		if err := s.processUser(ctx, user, today); err != nil {
			s.log.Errorf("Reminder run failed for user %d: %v", user.ID, err)
		}
	}
}

func (s *Scheduler) processUser(ctx context.Context, user models.User, today time.Time) error {
	plans, err := s.plans.ListPlans(ctx, user.ID)
	if err != nil {
		return err
	}

	for _, plan := range plans {
		schedule, err := s.plans.ListInstallments(ctx, plan.ID)
		if err != nil {
			return err
		}

		paid := finance.PaidCount(plan, schedule)
		derived := finance.DerivePlanStatus(paid, plan.InstallmentsTotal, plan.NextDueDate, today)
		if derived != plan.Status {
			if err := s.plans.UpdatePlanStatus(ctx, plan.ID, derived); err != nil {
				return err
			}
			s.log.Infof("Plan %s status refreshed: %s -> %s", plan.ID, plan.Status, derived)
		}

		if derived == models.PlanCompleted || plan.NextDueDate == nil {
			continue
		}
		diff := finance.DaysUntil(today, *plan.NextDueDate)
		if diff < 0 || finance.IsDueSoon(diff) {
			item := plan.ItemName + " (" + plan.Merchant + ")"
			if err := s.sender.SendPaymentReminder(user.Email, user.Username, item,
				*plan.NextDueDate, plan.InstallmentAmount, user.BaseCurrency, diff < 0); err != nil {
				s.log.Warnf("Reminder mail for plan %s not sent: %v", plan.ID, err)
			}
		}
	}

	debts, err := s.debts.ListDebts(ctx, user.ID)
	if err != nil {
		return err
	}
	for _, up := range finance.UpcomingPayments(debts, today, 3) {
		if up.Debt.CurrentBalance.IsZero() {
			continue
		}
		if err := s.sender.SendPaymentReminder(user.Email, user.Username, up.Debt.Name,
			up.DueDate, up.Debt.MinimumPayment, user.BaseCurrency, false); err != nil {
			s.log.Warnf("Reminder mail for debt %s not sent: %v", up.Debt.ID, err)
		}
	}

	return nil
}
