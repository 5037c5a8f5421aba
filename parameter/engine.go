package parameter

import "time"

// Frame loop
const (
	// FrameInterval paces hosts that drive their own ticker (~60 FPS)
	FrameInterval = 16 * time.Millisecond
	// EventQueueSize buffers input events between frames
	EventQueueSize = 256
)

// Terminal surface
const (
	// TerminalUnitsPerColumn is how many surface units one character column spans
	TerminalUnitsPerColumn = 4.0
	// TerminalUnitsPerSubRow is how many surface units one half-block row spans (two per character row)
	TerminalUnitsPerSubRow = 4.0
)

// Config slider bounds, mirrored from the control panel
const (
	ColumnsMin        = 1
	ColumnsMax        = 100
	RowsMin           = 1
	RowsMax           = 100
	CellSizeMin       = 1.0
	CellSizeMax       = 30.0
	CrosshairSpeedMax = 5.0
)

// Dev server
const (
	DevServerDefaultPort  = 3000
	ReloadDebounce        = 150 * time.Millisecond
	ReloadEventPath       = "/__livereload"
	ReloadSocketPath      = "/__livereload/ws"
	SnapshotPath          = "/snapshot.png"
	SnapshotMaxFrames     = 2000
	SnapshotMaxDimension  = 4096
	ShutdownGracePeriod   = 5 * time.Second
	SSEKeepAliveInterval  = 15 * time.Second
	ReloadClientQueueSize = 8
)
