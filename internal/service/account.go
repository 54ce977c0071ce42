package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/arrazka/lifeboard/internal/models"
	"github.com/arrazka/lifeboard/internal/repository"
)

// AccountService handles money account management
type AccountService struct {
	accounts *repository.AccountRepository
	log      *logrus.Logger
}

func NewAccountService(accounts *repository.AccountRepository, log *logrus.Logger) *AccountService {
	return &AccountService{accounts: accounts, log: log}
}

// CreateAccount creates a new account for the user
func (s *AccountService) CreateAccount(ctx context.Context, userID int64, name, accountType, currency string, openingBalance decimal.Decimal) (*models.Account, error) {
	if name == "" {
		return nil, fmt.Errorf("account name is required")
	}
	switch accountType {
	case models.AccountCash, models.AccountBank, models.AccountEWallet:
	default:
		return nil, fmt.Errorf("invalid account type: %s", accountType)
	}
	if currency == "" {
		return nil, fmt.Errorf("currency is required")
	}

	account := &models.Account{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     name,
		Type:     accountType,
		Currency: currency,
		Balance:  openingBalance,
	}

	if err := s.accounts.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	s.log.Infof("Account created for user %d: %s (%s)", userID, account.Name, account.Currency)
	return account, nil
}

// ListAccounts returns the user's accounts
func (s *AccountService) ListAccounts(ctx context.Context, userID int64) ([]models.Account, error) {
	return s.accounts.ListAccounts(ctx, userID)
}

// GetAccount returns one account owned by the user
func (s *AccountService) GetAccount(ctx context.Context, userID int64, id uuid.UUID) (*models.Account, error) {
	return s.accounts.GetAccount(ctx, userID, id)
}

// DeleteAccount removes an account owned by the user
func (s *AccountService) DeleteAccount(ctx context.Context, userID int64, id uuid.UUID) error {
	if err := s.accounts.DeleteAccount(ctx, userID, id); err != nil {
		return err
	}
	s.log.Infof("Account %s deleted for user %d", id, userID)
	return nil
}
