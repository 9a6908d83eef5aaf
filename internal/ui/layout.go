package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the compact header
	// badge replaces the full one.
	LayoutCompactWidth = 100

	// SidebarWidth is the sidebar's outer width when it is shown.
	SidebarWidth = 24
)

// Timing constants.
const (
	// AddedFlash is how long an add button reads "Added".
	AddedFlash = 1500 * time.Millisecond

	// BadgePulse is how long the cart badge stays highlighted after an add.
	BadgePulse = 200 * time.Millisecond

	// StatusTimeout is how long a footer message stays up.
	StatusTimeout = 4 * time.Second

	// ActivityLines is how much of the log file the activity view reads.
	ActivityLines = 300
)
