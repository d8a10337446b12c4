// Package domain defines core data models and interfaces shared across the app.
// It contains credential variants, the credential store contract and the typed
// errors stores report; no concrete implementations live here.
package domain
