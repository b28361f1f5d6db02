package utils

const (
	// Supported currencies
	CurrencyPHP = "PHP"
	CurrencyUSD = "USD"

	// UsdToPhpRate is a static approximate conversion rate used for the
	// informational figure on USD breakdowns. Live conversion is out of scope.
	UsdToPhpRate = 56.0

	// Settlement status labels
	StatusPaid   = "Paid"
	StatusUnpaid = "Unpaid"

	// Status filter modes
	FilterAll    = "all"
	FilterPaid   = "paid"
	FilterUnpaid = "unpaid"

	// Themes
	ThemeLight = "light"
	ThemeDark  = "dark"

	// HTTP status messages
	ErrInvalidRequest = "Invalid request"
	ErrUnauthorized   = "Authentication required"
	ErrNoValidItems   = "At least one item with a name and a positive price is required"

	// Precision for monetary calculations
	MoneyPrecision = 100.0
)
