//go:build !windows

package joy

// Open fails on platforms without winmm.dll. The scan and sample
// commands only make sense inside a Wine/Windows environment; on the
// Linux side this tool's job is creating the virtual fixture.
func Open() (Subsystem, error) {
	return nil, ErrUnsupported
}
