// repository/entry_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/TheLastAirbenderAng/payment-calculator/models"
)

// EntryRepository handles database operations for entries
type EntryRepository struct {
	DB *sql.DB
}

// NewEntryRepository creates a new EntryRepository
func NewEntryRepository(db *sql.DB) *EntryRepository {
	return &EntryRepository{DB: db}
}

// Create saves an entry and its items for an owner. When the entry carries
// no creation time the database assigns one; imports keep the original.
func (r *EntryRepository) Create(ownerID string, entry *models.Entry) (string, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	var serviceCharge, deliveryFee sql.NullFloat64
	var splitAmong sql.NullInt64
	if entry.AdditionalCharges != nil {
		serviceCharge = sql.NullFloat64{Float64: float64(entry.AdditionalCharges.ServiceCharge), Valid: true}
		deliveryFee = sql.NullFloat64{Float64: float64(entry.AdditionalCharges.DeliveryFee), Valid: true}
		splitAmong = sql.NullInt64{Int64: int64(entry.AdditionalCharges.SplitAmong), Valid: true}
	}

	var createdAt time.Time
	if entry.CreatedAt.IsZero() {
		err = tx.QueryRow(
			`INSERT INTO entries
			 (id, owner_id, situation, payer_name, currency, has_additional_charges,
			  service_charge, delivery_fee, split_among, pending_debt, calculated_total,
			  is_paid, paid_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			 RETURNING created_at`,
			entry.ID, ownerID, entry.Situation, entry.PayerName, entry.Currency,
			entry.HasAdditionalCharges, serviceCharge, deliveryFee, splitAmong,
			entry.PendingDebt, entry.CalculatedTotal, entry.IsPaid, entry.PaidAt,
		).Scan(&createdAt)
	} else {
		createdAt = entry.CreatedAt.Time
		_, err = tx.Exec(
			`INSERT INTO entries
			 (id, owner_id, situation, payer_name, currency, has_additional_charges,
			  service_charge, delivery_fee, split_among, pending_debt, calculated_total,
			  is_paid, paid_at, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			entry.ID, ownerID, entry.Situation, entry.PayerName, entry.Currency,
			entry.HasAdditionalCharges, serviceCharge, deliveryFee, splitAmong,
			entry.PendingDebt, entry.CalculatedTotal, entry.IsPaid, entry.PaidAt,
			createdAt,
		)
	}
	if err != nil {
		return "", fmt.Errorf("failed to insert entry: %v", err)
	}
	entry.CreatedAt = models.FlexTime{Time: createdAt}

	for _, item := range entry.Items {
		_, err = tx.Exec(
			`INSERT INTO entry_items (entry_id, name, price, quantity)
			 VALUES ($1, $2, $3, $4)`,
			entry.ID, item.Name, float64(item.Price), int(item.Quantity),
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert entry item: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %v", err)
	}
	return entry.ID, nil
}

const entryColumns = `id, situation, payer_name, currency, has_additional_charges,
	service_charge, delivery_fee, split_among, pending_debt, calculated_total,
	is_paid, paid_at, created_at`

// ListAll retrieves all entries for an owner, newest first
func (r *EntryRepository) ListAll(ownerID string) ([]*models.Entry, error) {
	rows, err := r.DB.Query(
		`SELECT `+entryColumns+` FROM entries
		 WHERE owner_id = $1 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %v", err)
	}
	defer rows.Close()

	var entries []*models.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %v", err)
	}

	for _, entry := range entries {
		if err := r.loadItems(entry); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// GetOne retrieves a single entry by ID, scoped to the owner. The second
// return value reports whether the entry exists.
func (r *EntryRepository) GetOne(ownerID, entryID string) (*models.Entry, bool, error) {
	row := r.DB.QueryRow(
		`SELECT `+entryColumns+` FROM entries
		 WHERE owner_id = $1 AND id = $2`,
		ownerID, entryID,
	)
	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if err := r.loadItems(entry); err != nil {
		return nil, false, err
	}
	return entry, true, nil
}

// Remove deletes an entry. Returns false when the entry does not exist or
// belongs to another owner.
func (r *EntryRepository) Remove(ownerID, entryID string) (bool, error) {
	result, err := r.DB.Exec(
		"DELETE FROM entries WHERE owner_id = $1 AND id = $2",
		ownerID, entryID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete entry: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check delete result: %v", err)
	}
	return affected > 0, nil
}

// MarkPaid flips the settlement flag and stamps the payment time. These are
// the only two columns that ever change after creation.
func (r *EntryRepository) MarkPaid(ownerID, entryID string) (bool, error) {
	result, err := r.DB.Exec(
		`UPDATE entries SET is_paid = TRUE, paid_at = now()
		 WHERE owner_id = $1 AND id = $2`,
		ownerID, entryID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark entry paid: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check update result: %v", err)
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanEntry reads one entry row. Legacy columns that may be NULL (is_paid
// on imported rows, the charges trio) resolve to their defaults here so the
// rest of the system sees plain values.
func scanEntry(row rowScanner) (*models.Entry, error) {
	var entry models.Entry
	var serviceCharge, deliveryFee sql.NullFloat64
	var splitAmong sql.NullInt64
	var isPaid sql.NullBool
	var paidAt sql.NullTime

	err := row.Scan(
		&entry.ID, &entry.Situation, &entry.PayerName, &entry.Currency,
		&entry.HasAdditionalCharges, &serviceCharge, &deliveryFee, &splitAmong,
		&entry.PendingDebt, &entry.CalculatedTotal, &isPaid, &paidAt,
		&entry.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan entry: %v", err)
	}

	entry.IsPaid = isPaid.Valid && isPaid.Bool
	if paidAt.Valid {
		t := paidAt.Time
		entry.PaidAt = &t
	}
	if entry.HasAdditionalCharges {
		entry.AdditionalCharges = &models.AdditionalCharges{
			ServiceCharge: models.FlexAmount(serviceCharge.Float64),
			DeliveryFee:   models.FlexAmount(deliveryFee.Float64),
			SplitAmong:    models.FlexCount(splitAmong.Int64),
		}
	}
	return &entry, nil
}

func (r *EntryRepository) loadItems(entry *models.Entry) error {
	rows, err := r.DB.Query(
		"SELECT name, price, quantity FROM entry_items WHERE entry_id = $1 ORDER BY id",
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get entry items: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var price float64
		var quantity int
		if err := rows.Scan(&name, &price, &quantity); err != nil {
			return fmt.Errorf("failed to scan entry item: %v", err)
		}
		entry.Items = append(entry.Items, models.LineItem{
			Name:     name,
			Price:    models.FlexAmount(price),
			Quantity: models.FlexCount(quantity),
		})
	}
	return rows.Err()
}
