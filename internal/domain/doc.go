// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (coordinates, angular systems, results), the error
// taxonomy, and storage contracts only.
package domain
