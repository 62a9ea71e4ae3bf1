//go:build windows

package joy

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	maxPNameLen              = 32
	maxJoystickOEMVXDNameLen = 260

	joyErrNoError = 0
	joyReturnAll  = 0xFF
)

// joycaps mirrors JOYCAPSW from mmsystem.h.
type joycaps struct {
	wMid        uint16
	wPid        uint16
	szPname     [maxPNameLen]uint16
	wXmin       uint32
	wXmax       uint32
	wYmin       uint32
	wYmax       uint32
	wZmin       uint32
	wZmax       uint32
	wNumButtons uint32
	wPeriodMin  uint32
	wPeriodMax  uint32
	wRmin       uint32
	wRmax       uint32
	wUmin       uint32
	wUmax       uint32
	wVmin       uint32
	wVmax       uint32
	wCaps       uint32
	wMaxAxes    uint32
	wNumAxes    uint32
	wMaxButtons uint32
	szRegKey    [maxPNameLen]uint16
	szOEMVxD    [maxJoystickOEMVXDNameLen]uint16
}

// joyinfoex mirrors JOYINFOEX from mmsystem.h.
type joyinfoex struct {
	dwSize         uint32
	dwFlags        uint32
	dwXpos         uint32
	dwYpos         uint32
	dwZpos         uint32
	dwRpos         uint32
	dwUpos         uint32
	dwVpos         uint32
	dwButtons      uint32
	dwButtonNumber uint32
	dwPOV          uint32
	dwReserved1    uint32
	dwReserved2    uint32
}

var (
	winmm              = windows.NewLazySystemDLL("winmm.dll")
	procJoyGetNumDevs  = winmm.NewProc("joyGetNumDevs")
	procJoyGetDevCapsW = winmm.NewProc("joyGetDevCapsW")
	procJoyGetPosEx    = winmm.NewProc("joyGetPosEx")
)

// winmmSubsystem is the production Subsystem backed by winmm.dll.
type winmmSubsystem struct{}

// Open returns the winmm-backed Subsystem.
func Open() (Subsystem, error) {
	if err := winmm.Load(); err != nil {
		return nil, err
	}
	return winmmSubsystem{}, nil
}

func (winmmSubsystem) NumDevices() uint {
	r1, _, _ := procJoyGetNumDevs.Call()
	return uint(r1)
}

func (winmmSubsystem) Caps(id uint) (Caps, error) {
	var caps joycaps
	ret, _, _ := procJoyGetDevCapsW.Call(
		uintptr(id),
		uintptr(unsafe.Pointer(&caps)),
		unsafe.Sizeof(caps),
	)
	if ret != joyErrNoError {
		return Caps{}, ErrNotFound
	}
	return Caps{
		ID:         id,
		Name:       windows.UTF16ToString(caps.szPname[:]),
		VendorID:   caps.wMid,
		ProductID:  caps.wPid,
		Axes:       uint(caps.wNumAxes),
		Buttons:    uint(caps.wNumButtons),
		MaxAxes:    uint(caps.wMaxAxes),
		MaxButtons: uint(caps.wMaxButtons),
	}, nil
}

func (winmmSubsystem) State(id uint) (State, error) {
	var info joyinfoex
	info.dwSize = uint32(unsafe.Sizeof(info))
	info.dwFlags = joyReturnAll
	ret, _, _ := procJoyGetPosEx.Call(uintptr(id), uintptr(unsafe.Pointer(&info)))
	if ret != joyErrNoError {
		return State{}, ErrReadFailed
	}
	return State{
		X:       info.dwXpos,
		Y:       info.dwYpos,
		Z:       info.dwZpos,
		R:       info.dwRpos,
		U:       info.dwUpos,
		V:       info.dwVpos,
		Buttons: info.dwButtons,
	}, nil
}
