// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (payload/state) and contracts (interfaces) only.
package domain
