//go:build linux

// Package virtual creates the uinput gamepad fixture that the Wine-side
// scan and sample commands are pointed at.
package virtual

import (
	"fmt"
	"time"

	"github.com/ThomasT75/uinput"
)

// walkButtons is the press order for the exercise routine.
var walkButtons = []int{
	uinput.ButtonSouth,
	uinput.ButtonEast,
	uinput.ButtonNorth,
	uinput.ButtonWest,
	uinput.ButtonBumperLeft,
	uinput.ButtonBumperRight,
	uinput.ButtonSelect,
	uinput.ButtonStart,
	uinput.ButtonThumbLeft,
	uinput.ButtonThumbRight,
}

// Gamepad is a virtual joystick device registered with the kernel.
type Gamepad struct {
	pad  uinput.Gamepad
	name string
}

// Create registers a new virtual gamepad with the given identity. The
// default identity (vendor 0x1234, product 0xBEAD, a "vJoy" name) is
// what the catalog scanner's selector recognizes.
func Create(name string, vendor, product uint16) (*Gamepad, error) {
	pad, err := uinput.CreateGamepad("/dev/uinput", []byte(name), vendor, product)
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual gamepad: %w", err)
	}
	return &Gamepad{pad: pad, name: name}, nil
}

// Name returns the display name the device was registered with.
func (g *Gamepad) Name() string {
	return g.name
}

// Exercise walks every button through a press/release cycle and sweeps
// both sticks min, max, center, pausing settle between steps so a
// concurrent sampler observes each state. One full pass.
func (g *Gamepad) Exercise(settle time.Duration) error {
	for _, btn := range walkButtons {
		if err := g.pad.ButtonDown(btn); err != nil {
			return fmt.Errorf("button press: %w", err)
		}
		time.Sleep(settle)
		if err := g.pad.ButtonUp(btn); err != nil {
			return fmt.Errorf("button release: %w", err)
		}
		time.Sleep(settle)
	}

	sweep := []struct{ x, y float32 }{
		{-1, -1},
		{1, 1},
		{0, 0},
	}
	for _, s := range sweep {
		if err := g.pad.LeftStickMove(s.x, s.y); err != nil {
			return fmt.Errorf("left stick move: %w", err)
		}
		if err := g.pad.RightStickMove(s.x, s.y); err != nil {
			return fmt.Errorf("right stick move: %w", err)
		}
		time.Sleep(settle)
	}
	return nil
}

// Close unregisters the device.
func (g *Gamepad) Close() error {
	return g.pad.Close()
}
