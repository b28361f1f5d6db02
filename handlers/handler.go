package handlers

import (
	"github.com/TheLastAirbenderAng/payment-calculator/auth"
	"github.com/TheLastAirbenderAng/payment-calculator/services"
)

// Handler carries all service dependencies. It is constructed once at
// startup and injected into the routes; nothing here is package-global.
type Handler struct {
	Authenticator *auth.PasswordAuthenticator
	JWT           *auth.JWTManager
	Calculation   *services.CalculationService
	Entries       *services.EntryService
	Reports       *services.ReportService
	Export        *services.ExportService
	Excel         *services.ExcelService
	Theme         *services.ThemeService
}

// NewHandler creates a new handler with its service dependencies
func NewHandler(
	authenticator *auth.PasswordAuthenticator,
	jwtManager *auth.JWTManager,
	calculation *services.CalculationService,
	entries *services.EntryService,
	reports *services.ReportService,
	export *services.ExportService,
	excel *services.ExcelService,
	theme *services.ThemeService,
) *Handler {
	return &Handler{
		Authenticator: authenticator,
		JWT:           jwtManager,
		Calculation:   calculation,
		Entries:       entries,
		Reports:       reports,
		Export:        export,
		Excel:         excel,
		Theme:         theme,
	}
}
