package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/winediag/joyharness/internal/config"
	"github.com/winediag/joyharness/internal/joy"
	"github.com/winediag/joyharness/internal/logger"
	"github.com/winediag/joyharness/internal/report"
)

var scanPretty bool

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Enumerate joystick devices and locate the test fixture",
	Long: `Scan queries capabilities for every device slot the winmm subsystem
reports and selects the test fixture among them by name or VID/PID.
Output is one KEY=VALUE line per fact; --pretty renders a table instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sub, err := joy.Open()
		if err != nil {
			return err
		}
		res := joy.Scan(sub, matcherFromConfig())
		if scanPretty {
			printScanTable(os.Stdout, res)
			return nil
		}
		renderScan(os.Stdout, res)
		return nil
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanPretty, "pretty", false, "render a human-readable table")
	rootCmd.AddCommand(scanCmd)
}

// matcherFromConfig builds the selector identity rule from the loaded
// configuration.
func matcherFromConfig() joy.Matcher {
	sel := config.Get().Selector
	return joy.Matcher{
		NameContains: sel.NameContains,
		VendorID:     sel.VendorID,
		ProductID:    sel.ProductID,
	}
}

// renderScan emits the machine-readable catalog report.
func renderScan(w io.Writer, res joy.ScanResult) {
	rep := report.New(w)
	rep.Put("NUM_DEVS", res.NumDevices)

	for _, caps := range res.Found {
		prefix := fmt.Sprintf("JOY_%d", caps.ID)
		rep.Put(prefix+"_NAME", caps.Name)
		rep.Put(prefix+"_BUTTONS", caps.Buttons)
		rep.Put(prefix+"_AXES", caps.Axes)
		rep.Put(prefix+"_MAXBUTTONS", caps.MaxButtons)
		rep.Put(prefix+"_MAXAXES", caps.MaxAxes)
		rep.Hex16(prefix+"_VID", caps.VendorID)
		rep.Hex16(prefix+"_PID", caps.ProductID)
	}

	rep.Put("FOUND_COUNT", len(res.Found))
	testFound := 0
	if res.Selection.Found {
		testFound = 1
	}
	rep.Put("TEST_FOUND", testFound)
	rep.Put("TEST_BUTTONS", res.Selection.Buttons)
	rep.Put("TEST_AXES", res.Selection.Axes)
}

// printScanTable renders the catalog for humans.
func printScanTable(w io.Writer, res joy.ScanResult) {
	rows := [][]string{}
	for _, caps := range res.Found {
		rows = append(rows, []string{
			fmt.Sprintf("%d", caps.ID),
			caps.Name,
			fmt.Sprintf("0x%04X", caps.VendorID),
			fmt.Sprintf("0x%04X", caps.ProductID),
			fmt.Sprintf("%d/%d", caps.Axes, caps.MaxAxes),
			fmt.Sprintf("%d/%d", caps.Buttons, caps.MaxButtons),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("SLOT", "NAME", "VID", "PID", "AXES", "BUTTONS").
		Rows(rows...)

	fmt.Fprintln(w, t.String())
	if res.Selection.Found {
		fmt.Fprintf(w, "Test fixture found: %d buttons, %d axes\n",
			res.Selection.Buttons, res.Selection.Axes)
	} else {
		fmt.Fprintln(w, "Test fixture not found")
	}
	logger.Debugf("scanned %d slots, %d occupied", res.NumDevices, len(res.Found))
}
