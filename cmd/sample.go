package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/winediag/joyharness/internal/config"
	"github.com/winediag/joyharness/internal/joy"
	"github.com/winediag/joyharness/internal/logger"
	"github.com/winediag/joyharness/internal/report"
)

var sampleInteractive bool

var sampleCmd = &cobra.Command{
	Use:   "sample [deviceId] [samples] [delay_ms]",
	Short: "Poll one joystick device and aggregate axis/button behavior",
	Long: `Sample validates that the device slot exists, then polls its live state
a fixed number of times at a fixed cadence. Each successful poll widens
the per-axis min/max envelope and ORs the button mask into a cumulative
set; failed polls are counted. The final report is KEY=VALUE lines.

Exits nonzero when the device is absent or any poll failed.`,
	Args: cobra.MaximumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults := config.Get().Sampling

		id := uint(0)
		samples := defaults.Samples
		delayMS := defaults.DelayMS
		if len(args) > 0 {
			id = parseUint(args[0])
		}
		if len(args) > 1 {
			samples = parseInt(args[1])
		}
		if len(args) > 2 {
			delayMS = parseInt(args[2])
		}

		sub, err := joy.Open()
		if err != nil {
			return err
		}

		if sampleInteractive {
			picked, err := pickDevice(sub)
			if err != nil {
				return err
			}
			id = picked
		}

		return runSample(sub, os.Stdout, id, samples, delayMS, nil)
	},
}

func init() {
	sampleCmd.Flags().BoolVarP(&sampleInteractive, "interactive", "i", false,
		"pick the device from a list instead of using the positional id")
	rootCmd.AddCommand(sampleCmd)
}

// parseInt follows atoi conventions: non-numeric input yields 0.
func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func parseUint(s string) uint {
	v, _ := strconv.Atoi(s)
	if v < 0 {
		return 0
	}
	return uint(v)
}

// runSample produces the full sampling report on w. The returned error
// is non-nil when the run must exit nonzero: device absent, or at least
// one poll failed.
func runSample(sub joy.Subsystem, w io.Writer, id uint, samples, delayMS int, sleep func(time.Duration)) error {
	rep := report.New(w)

	caps, err := sub.Caps(id)
	if err != nil {
		rep.Put("ERROR", "NO_DEVICE")
		rep.Put("JOY_ID", id)
		return fmt.Errorf("no device in slot %d: %w", id, err)
	}

	rep.Put("JOY_ID", id)
	rep.Put("JOY_NAME", caps.Name)
	rep.Hex16("JOY_VID", caps.VendorID)
	rep.Hex16("JOY_PID", caps.ProductID)
	rep.Put("JOY_AXES", caps.Axes)
	rep.Put("JOY_BUTTONS", caps.Buttons)
	rep.Put("SAMPLES", samples)
	rep.Put("DELAY_MS", delayMS)

	sess := joy.Sample(sub, id, joy.SampleOptions{
		Samples: samples,
		Delay:   time.Duration(delayMS) * time.Millisecond,
		Sleep:   sleep,
		OnSample: func(i int, st joy.State) {
			prefix := fmt.Sprintf("SAMPLE_%d", i)
			rep.Put(prefix+"_X", st.X)
			rep.Put(prefix+"_Y", st.Y)
			rep.Put(prefix+"_Z", st.Z)
			rep.Put(prefix+"_R", st.R)
			rep.Hex32(prefix+"_BUTTONS", st.Buttons)
		},
	})

	rep.Put("READ_SUCCESS", sess.Success)
	rep.Put("READ_ERRORS", sess.Errors)

	if sess.Success > 0 {
		putAxis(rep, "X", sess.X)
		putAxis(rep, "Y", sess.Y)
		putAxis(rep, "Z", sess.Z)
		putAxis(rep, "R", sess.R)
		rep.Hex32("BUTTONS_PRESSED", sess.ButtonsEverPressed)
		rep.Put("BUTTON_COUNT", sess.ButtonCount())
	}

	if sess.Errors > 0 {
		return fmt.Errorf("%d of %d reads failed", sess.Errors, samples)
	}
	return nil
}

func putAxis(rep *report.Writer, name string, r joy.AxisRange) {
	rep.Put(name+"_MIN", r.Min)
	rep.Put(name+"_MAX", r.Max)
	rep.Put(name+"_RANGE", r.Range())
}

// pickDevice presents an interactive selection over the occupied slots.
func pickDevice(sub joy.Subsystem) (uint, error) {
	res := joy.Scan(sub, matcherFromConfig())
	if len(res.Found) == 0 {
		return 0, fmt.Errorf("no joystick devices found")
	}

	// If only one device, use it automatically
	if len(res.Found) == 1 {
		logger.Infof("Auto-selected device %d: %s", res.Found[0].ID, res.Found[0].Name)
		return res.Found[0].ID, nil
	}

	options := make([]huh.Option[uint], len(res.Found))
	for i, caps := range res.Found {
		label := fmt.Sprintf("%d: %s (%d buttons, %d axes)",
			caps.ID, caps.Name, caps.Buttons, caps.Axes)
		options[i] = huh.NewOption(label, caps.ID)
	}

	var selected uint
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[uint]().
				Title("Select Joystick Device").
				Description("Choose the device slot to sample").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return 0, fmt.Errorf("device selection cancelled: %w", err)
	}
	return selected, nil
}
