package ui

import "vregress/internal/domain"

// Viewer displays check results in an interactive TUI
type Viewer interface {
	View(results *domain.CheckOutput) error
}
