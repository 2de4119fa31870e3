// Package cli provides the command-line interface for the kursziel application.
package cli

import (
	"github.com/finwatch/kursziel/internal/app"
)

// Global reference - commands run one at a time, so a single slot is enough
var globalApp *app.Application

// SetApp stores the Application for commands to access
func SetApp(a *app.Application) {
	globalApp = a
}

// GetApp retrieves the stored Application
func GetApp() *app.Application {
	return globalApp
}
