// Package ui provides shared layout constants for UI components.
package ui

const (
	// BorderHeight is the vertical space consumed by a panel border.
	BorderHeight = 2

	// HeaderHeight is the space for the header line and its separator.
	HeaderHeight = 2

	// StatusHeight is the space for the status/help bar.
	StatusHeight = 1

	// PanelOverhead is the total vertical overhead of the explorer panel.
	// Visible tree rows = panel height - PanelOverhead.
	PanelOverhead = BorderHeight + HeaderHeight + StatusHeight
)
