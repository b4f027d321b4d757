package service

import (
	"github.com/ubelabs/expense-tracker/internal/models"
	"github.com/ubelabs/expense-tracker/internal/utils"
)

// SavingList carries a user's savings goals converted to a display currency
type SavingList struct {
	Savings      []models.SavingView
	CurrencySign string
}

// ListSavings retrieves a user's savings goals with amounts converted to
// the given currency. Savings stays nil when the user has none.
func (s *Service) ListSavings(username, currencyCode string) (*SavingList, error) {
	currency, err := s.repo.GetCurrency(currencyCode)
	if err != nil {
		return nil, err
	}

	savings, err := s.repo.ListSavings(username)
	if err != nil {
		return nil, err
	}

	list := &SavingList{CurrencySign: currency.Sign}
	for _, goal := range savings {
		list.Savings = append(list.Savings, models.SavingView{
			Sequence:      goal.Sequence,
			Name:          goal.Name,
			Description:   goal.Description,
			CurrentAmount: utils.Convert(goal.CurrentAmount, currency.DollarToCurrency),
			TargetAmount:  utils.Convert(goal.TargetAmount, currency.DollarToCurrency),
			Deadline:      utils.FormatDate(goal.Deadline, s.loc),
			Progress:      utils.Progress(goal.CurrentAmount, goal.TargetAmount),
		})
	}
	return list, nil
}

// CreateSaving validates and stores a new savings goal. Amounts arrive in USD.
func (s *Service) CreateSaving(username string, goal *models.Saving) error {
	if err := validateSaving(goal); err != nil {
		return err
	}
	if err := s.repo.CreateSaving(username, goal); err != nil {
		return err
	}
	s.log.Infof("Saving created for %s: %s (sequence %d)", username, goal.Name, goal.Sequence)
	return nil
}

// UpdateSaving validates and updates a savings goal by sequence number
func (s *Service) UpdateSaving(username string, sequence int64, goal *models.Saving) error {
	if err := validateSaving(goal); err != nil {
		return err
	}
	if err := s.repo.UpdateSaving(username, sequence, goal); err != nil {
		return err
	}
	s.log.Infof("Saving %d updated for %s", sequence, username)
	return nil
}

// DeleteSaving removes a savings goal by sequence number
func (s *Service) DeleteSaving(username string, sequence int64) error {
	if err := s.repo.DeleteSaving(username, sequence); err != nil {
		return err
	}
	s.log.Infof("Saving %d deleted for %s", sequence, username)
	return nil
}

// validateSaving rejects zero/negative targets at write time so progress
// computation never divides by zero.
func validateSaving(goal *models.Saving) error {
	if goal.Name == "" {
		return invalid("saving name is required")
	}
	if goal.TargetAmount <= 0 {
		return invalid("saving target amount must be greater than zero")
	}
	if goal.CurrentAmount < 0 {
		return invalid("saving current amount must not be negative")
	}
	return nil
}
