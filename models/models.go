// models/models.go
package models

import "time"

// User represents an authenticated account. The rest of the system only
// ever sees its ID as an opaque owner key.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"displayName"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewUser creates a new User instance
func NewUser(id, email, displayName, passwordHash string) *User {
	return &User{
		ID:           id,
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}

// LineItem represents one row of an itemized expense. Numeric fields accept
// numbers or numeric strings; a zero quantity is allowed and simply
// contributes nothing to the subtotal.
type LineItem struct {
	Name     string     `json:"name"`
	Price    FlexAmount `json:"price"`
	Quantity FlexCount  `json:"quantity"`
}

// AdditionalCharges are shared costs split evenly among a group.
type AdditionalCharges struct {
	ServiceCharge FlexAmount `json:"serviceCharge"`
	DeliveryFee   FlexAmount `json:"deliveryFee"`
	SplitAmong    FlexCount  `json:"splitAmong"`
}

// Breakdown is the transient result of one calculation, prior to any
// persistence. ApproxPhpTotal is populated for USD calculations from the
// static approximate rate.
type Breakdown struct {
	ItemsSubtotal  float64  `json:"itemsSubtotal"`
	ChargesShare   float64  `json:"chargesShare"`
	PendingDebt    float64  `json:"pendingDebt"`
	Total          float64  `json:"total"`
	ApproxPhpTotal *float64 `json:"approxPhpTotal,omitempty"`
}

// Entry is a persisted record of one split expense and its settlement
// status. Only IsPaid and PaidAt mutate after creation.
type Entry struct {
	ID                   string             `json:"id"`
	Situation            string             `json:"situation"`
	PayerName            string             `json:"payerName"`
	Currency             string             `json:"currency"`
	Items                []LineItem         `json:"items"`
	HasAdditionalCharges bool               `json:"hasAdditionalCharges"`
	AdditionalCharges    *AdditionalCharges `json:"additionalCharges"`
	PendingDebt          float64            `json:"pendingDebt"`
	CalculatedTotal      float64            `json:"calculatedTotal"`
	IsPaid               bool               `json:"isPaid"`
	PaidAt               *time.Time         `json:"paidAt,omitempty"`
	CreatedAt            FlexTime           `json:"createdAt"`
}

// ReportRow holds the derived display fields for one entry, in export
// column order.
type ReportRow struct {
	Date      string  `json:"date"`
	Situation string  `json:"situation"`
	Payer     string  `json:"payer"`
	Total     float64 `json:"total"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"`
	Items     string  `json:"items"`
}

// Summary holds aggregate stats over a user's entries.
type Summary struct {
	TotalEntries int     `json:"totalEntries"`
	UnpaidCount  int     `json:"unpaidCount"`
	PaidCount    int     `json:"paidCount"`
	TotalOwed    float64 `json:"totalOwed"`
	TotalPaid    float64 `json:"totalPaid"`
}

// RegisterRequest request model
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"displayName" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// LoginRequest request model
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse response model
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// CalculateRequest request model for the guest calculation endpoint.
// Nothing is required: malformed input degrades instead of failing.
type CalculateRequest struct {
	Items    []LineItem         `json:"items"`
	Charges  *AdditionalCharges `json:"charges"`
	Currency string             `json:"currency"`
}

// CreateEntryRequest request model
type CreateEntryRequest struct {
	Situation         string             `json:"situation" binding:"required"`
	PayerName         string             `json:"payerName" binding:"required"`
	Currency          string             `json:"currency"`
	Items             []LineItem         `json:"items"`
	AdditionalCharges *AdditionalCharges `json:"additionalCharges"`
	PendingDebt       FlexAmount         `json:"pendingDebt"`
}

// ImportEntriesRequest request model for bulk-importing legacy exports.
// Entries may carry wrapper-object timestamps and may lack isPaid.
type ImportEntriesRequest struct {
	Entries []Entry `json:"entries" binding:"required"`
}

// ImportEntriesResponse response model
type ImportEntriesResponse struct {
	Imported int `json:"imported"`
}

// CreateEntryResponse response model
type CreateEntryResponse struct {
	ID        string     `json:"id"`
	Breakdown *Breakdown `json:"breakdown"`
}

// ThemePreference request/response model
type ThemePreference struct {
	Theme string `json:"theme" binding:"required"`
}
