package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/winediag/joyharness/internal/config"
	"github.com/winediag/joyharness/internal/logger"
	"github.com/winediag/joyharness/internal/virtual"
)

var (
	virtualName     string
	virtualVendor   uint16
	virtualProduct  uint16
	virtualExercise bool
	virtualSettle   time.Duration
	virtualHold     time.Duration
)

var virtualCmd = &cobra.Command{
	Use:   "virtual",
	Short: "Create the virtual test gamepad fixture (Linux only)",
	Long: `Virtual registers a uinput gamepad with the identity the scan selector
recognizes, holds it alive for --hold, and optionally exercises every
button and both sticks so a concurrent sample run inside Wine observes
nonzero axis ranges and button presses.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		vcfg := config.Get().Virtual
		name := vcfg.Name
		vendor := vcfg.VendorID
		product := vcfg.ProductID
		if cmd.Flags().Changed("name") {
			name = virtualName
		}
		if cmd.Flags().Changed("vendor") {
			vendor = virtualVendor
		}
		if cmd.Flags().Changed("product") {
			product = virtualProduct
		}

		pad, err := virtual.Create(name, vendor, product)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := pad.Close(); cerr != nil {
				logger.Errorf("closing virtual gamepad: %v", cerr)
			}
		}()

		logger.Infof("Created virtual gamepad %q (0x%04X:0x%04X)", name, vendor, product)
		fmt.Printf("VIRTUAL_NAME=%s\n", name)
		fmt.Printf("VIRTUAL_VID=0x%04X\n", vendor)
		fmt.Printf("VIRTUAL_PID=0x%04X\n", product)

		deadline := time.Now().Add(virtualHold)
		if virtualExercise {
			passes := 0
			for time.Now().Before(deadline) {
				if err := pad.Exercise(virtualSettle); err != nil {
					return fmt.Errorf("exercise failed: %w", err)
				}
				passes++
			}
			fmt.Printf("EXERCISE_PASSES=%d\n", passes)
		} else {
			time.Sleep(time.Until(deadline))
		}
		return nil
	},
}

func init() {
	virtualCmd.Flags().StringVar(&virtualName, "name", "", "device display name")
	virtualCmd.Flags().Uint16Var(&virtualVendor, "vendor", 0, "vendor id")
	virtualCmd.Flags().Uint16Var(&virtualProduct, "product", 0, "product id")
	virtualCmd.Flags().BoolVar(&virtualExercise, "exercise", false,
		"walk all buttons and sweep both sticks while held")
	virtualCmd.Flags().DurationVar(&virtualSettle, "settle", 20*time.Millisecond,
		"pause between exercise steps")
	virtualCmd.Flags().DurationVar(&virtualHold, "hold", 30*time.Second,
		"how long to keep the device registered")
	rootCmd.AddCommand(virtualCmd)
}
