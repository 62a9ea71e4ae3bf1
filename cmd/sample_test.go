package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winediag/joyharness/internal/joy"
)

// fakeSubsystem scripts the winmm responses for command-level tests.
type fakeSubsystem struct {
	num        uint
	caps       map[uint]joy.Caps
	states     []fakeState
	stateCalls int
}

type fakeState struct {
	st  joy.State
	err error
}

func (f *fakeSubsystem) NumDevices() uint { return f.num }

func (f *fakeSubsystem) Caps(id uint) (joy.Caps, error) {
	c, ok := f.caps[id]
	if !ok {
		return joy.Caps{}, joy.ErrNotFound
	}
	return c, nil
}

func (f *fakeSubsystem) State(id uint) (joy.State, error) {
	i := f.stateCalls
	f.stateCalls++
	if i >= len(f.states) {
		return joy.State{}, joy.ErrReadFailed
	}
	return f.states[i].st, f.states[i].err
}

func noSleep(time.Duration) {}

func fixtureCaps() map[uint]joy.Caps {
	return map[uint]joy.Caps{
		0: {
			ID: 0, Name: "vJoy Device",
			VendorID: 0x1234, ProductID: 0xBEAD,
			Axes: 8, Buttons: 32, MaxAxes: 6, MaxButtons: 32,
		},
	}
}

func TestRunSampleReport(t *testing.T) {
	sub := &fakeSubsystem{
		caps: fixtureCaps(),
		states: []fakeState{
			{st: joy.State{X: 100, Y: 200, Z: 300, R: 400, Buttons: 0x00000001}},
			{st: joy.State{X: 500, Y: 600, Z: 700, R: 800, Buttons: 0x00000004}},
		},
	}

	var buf bytes.Buffer
	err := runSample(sub, &buf, 0, 2, 0, noSleep)
	require.NoError(t, err)

	assert.Equal(t,
		"JOY_ID=0\n"+
			"JOY_NAME=vJoy Device\n"+
			"JOY_VID=0x1234\n"+
			"JOY_PID=0xBEAD\n"+
			"JOY_AXES=8\n"+
			"JOY_BUTTONS=32\n"+
			"SAMPLES=2\n"+
			"DELAY_MS=0\n"+
			"SAMPLE_0_X=100\n"+
			"SAMPLE_0_Y=200\n"+
			"SAMPLE_0_Z=300\n"+
			"SAMPLE_0_R=400\n"+
			"SAMPLE_0_BUTTONS=0x00000001\n"+
			"SAMPLE_1_X=500\n"+
			"SAMPLE_1_Y=600\n"+
			"SAMPLE_1_Z=700\n"+
			"SAMPLE_1_R=800\n"+
			"SAMPLE_1_BUTTONS=0x00000004\n"+
			"READ_SUCCESS=2\n"+
			"READ_ERRORS=0\n"+
			"X_MIN=100\n"+
			"X_MAX=500\n"+
			"X_RANGE=400\n"+
			"Y_MIN=200\n"+
			"Y_MAX=600\n"+
			"Y_RANGE=400\n"+
			"Z_MIN=300\n"+
			"Z_MAX=700\n"+
			"Z_RANGE=400\n"+
			"R_MIN=400\n"+
			"R_MAX=800\n"+
			"R_RANGE=400\n"+
			"BUTTONS_PRESSED=0x00000005\n"+
			"BUTTON_COUNT=2\n",
		buf.String())
}

func TestRunSampleNoDevice(t *testing.T) {
	sub := &fakeSubsystem{caps: map[uint]joy.Caps{}}

	var buf bytes.Buffer
	err := runSample(sub, &buf, 3, 10, 50, noSleep)

	assert.Error(t, err)
	assert.Equal(t, "ERROR=NO_DEVICE\nJOY_ID=3\n", buf.String())
	assert.Zero(t, sub.stateCalls, "no polls after a failed capability query")
}

func TestRunSampleAllReadsFail(t *testing.T) {
	sub := &fakeSubsystem{
		caps: fixtureCaps(),
		states: []fakeState{
			{err: joy.ErrReadFailed},
			{err: joy.ErrReadFailed},
			{err: joy.ErrReadFailed},
		},
	}

	var buf bytes.Buffer
	err := runSample(sub, &buf, 0, 3, 0, noSleep)

	assert.Error(t, err, "pure read-failure session exits nonzero")
	out := buf.String()
	assert.Contains(t, out, "READ_SUCCESS=0\n")
	assert.Contains(t, out, "READ_ERRORS=3\n")
	for _, key := range []string{"_MIN", "_MAX", "_RANGE", "BUTTONS_PRESSED", "BUTTON_COUNT", "SAMPLE_"} {
		assert.NotContains(t, out, key, "aggregates must be suppressed without successful reads")
	}
}

func TestRunSamplePartialFailureStillReports(t *testing.T) {
	sub := &fakeSubsystem{
		caps: fixtureCaps(),
		states: []fakeState{
			{st: joy.State{X: 10, Buttons: 0x7}},
			{err: joy.ErrReadFailed},
		},
	}

	var buf bytes.Buffer
	err := runSample(sub, &buf, 0, 2, 0, noSleep)

	assert.Error(t, err, "any failed poll degrades the run")
	out := buf.String()
	assert.Contains(t, out, "READ_SUCCESS=1\n")
	assert.Contains(t, out, "READ_ERRORS=1\n")
	assert.Contains(t, out, "BUTTONS_PRESSED=0x00000007\n")
	assert.Contains(t, out, "BUTTON_COUNT=3\n")
}

func TestRunSampleZeroSamples(t *testing.T) {
	sub := &fakeSubsystem{caps: fixtureCaps()}

	var buf bytes.Buffer
	err := runSample(sub, &buf, 0, 0, 50, noSleep)

	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "SAMPLES=0\n")
	assert.Contains(t, out, "READ_SUCCESS=0\n")
	assert.Contains(t, out, "READ_ERRORS=0\n")
	assert.NotContains(t, out, "X_MIN")
}

func TestPositionalParsing(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"12", 12},
		{"0", 0},
		{"abc", 0},
		{"", 0},
		{"7x", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseInt(tt.in), "parseInt(%q)", tt.in)
	}

	assert.Equal(t, uint(5), parseUint("5"))
	assert.Equal(t, uint(0), parseUint("-5"))
	assert.Equal(t, uint(0), parseUint("junk"))
}
