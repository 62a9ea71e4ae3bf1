//go:build !linux

package virtual

import (
	"errors"
	"time"
)

// ErrUnsupported is returned on platforms without uinput.
var ErrUnsupported = errors.New("virtual gamepad requires linux uinput")

// Gamepad is unavailable off Linux; the Wine side of the harness only
// observes devices, it never creates them.
type Gamepad struct{}

func Create(name string, vendor, product uint16) (*Gamepad, error) {
	return nil, ErrUnsupported
}

func (g *Gamepad) Name() string { return "" }

func (g *Gamepad) Exercise(settle time.Duration) error { return ErrUnsupported }

func (g *Gamepad) Close() error { return nil }
