package services

import (
	"github.com/TheLastAirbenderAng/payment-calculator/models"
	"github.com/TheLastAirbenderAng/payment-calculator/utils"
)

// EntryStorage defines the persistence operations the entry service needs.
type EntryStorage interface {
	Create(ownerID string, entry *models.Entry) (string, error)
	ListAll(ownerID string) ([]*models.Entry, error)
	GetOne(ownerID, entryID string) (*models.Entry, bool, error)
	Remove(ownerID, entryID string) (bool, error)
	MarkPaid(ownerID, entryID string) (bool, error)
}

// EntryService orchestrates entry creation and retrieval. Repository
// failures pass through to the caller unmodified.
type EntryService struct {
	repo EntryStorage
	calc *CalculationService
}

// NewEntryService creates a new entry service
func NewEntryService(repo EntryStorage, calc *CalculationService) *EntryService {
	return &EntryService{repo: repo, calc: calc}
}

// CreateEntry validates the request, computes the breakdown, and persists a
// new entry with the total frozen at save time. Only the valid subset of
// items is stored; the creation timestamp is assigned by the database.
func (s *EntryService) CreateEntry(ownerID string, request *models.CreateEntryRequest) (*models.Entry, *models.Breakdown, error) {
	if err := utils.ValidateRequired(request.Situation, "situation"); err != nil {
		return nil, nil, err
	}
	if err := utils.ValidateRequired(request.PayerName, "payer name"); err != nil {
		return nil, nil, err
	}
	if !s.calc.HasValidItems(request.Items) {
		return nil, nil, utils.NewValidationError(utils.ErrNoValidItems)
	}

	pendingDebt := float64(request.PendingDebt)
	breakdown := s.calc.ComputeBreakdown(request.Items, request.AdditionalCharges, pendingDebt)
	currency := utils.NormalizeCurrency(request.Currency)
	s.calc.WithApproxConversion(breakdown, currency)

	entry := &models.Entry{
		ID:                   utils.GenerateID(),
		Situation:            request.Situation,
		PayerName:            request.PayerName,
		Currency:             currency,
		Items:                s.calc.ValidItems(request.Items),
		HasAdditionalCharges: request.AdditionalCharges != nil,
		AdditionalCharges:    request.AdditionalCharges,
		PendingDebt:          breakdown.PendingDebt,
		CalculatedTotal:      breakdown.Total,
	}

	if _, err := s.repo.Create(ownerID, entry); err != nil {
		return nil, nil, err
	}
	return entry, breakdown, nil
}

// ImportEntries bulk-imports entries from a legacy export. Records keep
// their original creation time and settlement state; a missing settlement
// flag has already been defaulted to unpaid during decoding.
//
/// Each record is stored independently: on a mid-batch failure the entries
// already written stay persisted, and the returned count tells the caller
// how many made it in before the error.
func (s *EntryService) ImportEntries(ownerID string, entries []models.Entry) (int, error) {
	if err := utils.ValidateNotEmpty(entries, "entries"); err != nil {
		return 0, err
	}

	imported := 0
	for i := range entries {
		entry := entries[i]
		if entry.ID == "" {
			entry.ID = utils.GenerateID()
		}
		entry.Currency = utils.NormalizeCurrency(entry.Currency)
		if _, err := s.repo.Create(ownerID, &entry); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}

// ListEntries returns all entries for an owner, newest first
func (s *EntryService) ListEntries(ownerID string) ([]*models.Entry, error) {
	entries, err := s.repo.ListAll(ownerID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*models.Entry{}
	}
	return entries, nil
}

// GetEntry returns a single entry, or a not-found error
func (s *EntryService) GetEntry(ownerID, entryID string) (*models.Entry, error) {
	entry, found, err := s.repo.GetOne(ownerID, entryID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, utils.NewNotFoundError("Entry")
	}
	return entry, nil
}

// DeleteEntry removes an entry owned by the caller
func (s *EntryService) DeleteEntry(ownerID, entryID string) error {
	removed, err := s.repo.Remove(ownerID, entryID)
	if err != nil {
		return err
	}
	if !removed {
		return utils.NewNotFoundError("Entry")
	}
	return nil
}

// MarkEntryPaid flips the settlement flag on an entry and returns the
// updated record.
func (s *EntryService) MarkEntryPaid(ownerID, entryID string) (*models.Entry, error) {
	updated, err := s.repo.MarkPaid(ownerID, entryID)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, utils.NewNotFoundError("Entry")
	}
	return s.GetEntry(ownerID, entryID)
}
