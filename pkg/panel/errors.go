package panel

import "errors"

var (
	// ErrNotBoardFile is returned when the source path does not name a
	// .kicad_pcb file.
	ErrNotBoardFile = errors.New("source is not a .kicad_pcb file")

	// ErrBothModes is returned when both an explicit copy count and a
	// target panel envelope are supplied.
	ErrBothModes = errors.New("specify number of boards or size of panel, not both")

	// ErrNoMode is returned when neither sizing mode is supplied.
	ErrNoMode = errors.New("specify number of boards or size of panel")

	// ErrRailTooNarrow is returned when rail text or a rail title is
	// requested on a rail below the minimum width for text.
	ErrRailTooNarrow = errors.New("rail width must be at least 2mm if using rail text")

	// ErrPanelTooSmall is returned when the grid computes to zero copies
	// in either axis.
	ErrPanelTooSmall = errors.New("panel size is too small for board")

	// ErrNoOutline is returned when the source board has no outline
	// geometry to derive a cell size from.
	ErrNoOutline = errors.New("no board outline found")

	// ErrUnknownLayer is returned when a requested layer does not exist
	// in the board.
	ErrUnknownLayer = errors.New("layer not found in board")
)
