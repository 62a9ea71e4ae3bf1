// Package joy implements the sampling and enumeration engine for
// joystick devices exposed through the winmm multimedia subsystem.
package joy

import "errors"

var (
	// ErrNotFound is returned by Caps when no device occupies the slot.
	ErrNotFound = errors.New("no device in slot")

	// ErrReadFailed is returned by State when a poll fails.
	ErrReadFailed = errors.New("joystick read failed")

	// ErrUnsupported is returned by backends on platforms without winmm.
	ErrUnsupported = errors.New("winmm subsystem not available on this platform")
)

// Caps describes the static capabilities of one device slot.
type Caps struct {
	ID         uint
	Name       string
	VendorID   uint16
	ProductID  uint16
	Axes       uint
	Buttons    uint
	MaxAxes    uint
	MaxButtons uint
}

// State is one instantaneous snapshot of a device's axes and buttons.
// Axis values are the raw unsigned magnitudes the subsystem reports.
type State struct {
	X, Y, Z, R, U, V uint32
	Buttons          uint32
}

// Subsystem is the slice of the OS joystick API the engine needs.
// The windows backend wraps winmm.dll; tests provide fakes.
type Subsystem interface {
	// NumDevices reports how many device slots the subsystem supports.
	// Slots are addressed [0, NumDevices).
	NumDevices() uint

	// Caps queries static capabilities for a slot. Empty slots return
	// ErrNotFound.
	Caps(id uint) (Caps, error)

	// State polls the instantaneous position and button mask for a slot
	// known to exist. Transient failures return ErrReadFailed.
	State(id uint) (State, error)
}
