package main

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/sonido-hann/algorithms/spectral"
	"github.com/RyanBlaney/sonido-hann/algorithms/windowing"
	"github.com/RyanBlaney/sonido-hann/logging"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hannwin",
	Short: "Hann window generation and normalization utilities",
	Long: `hannwin generates Hann window coefficient sequences and the
sum-of-squares normalization factors used when reconstructing
overlapped, windowed signal segments.`,
	SilenceUsage: true,
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Print the Hann window coefficients for a length",
	RunE: func(cmd *cobra.Command, args []string) error {
		length, err := cmd.Flags().GetInt("length")
		if err != nil {
			return err
		}

		window, err := windowing.GetHannWindow(length)
		if err != nil {
			return err
		}

		for _, v := range window {
			fmt.Printf("%.8f\n", v)
		}
		return nil
	},
}

var sumsqCmd = &cobra.Command{
	Use:   "sumsq",
	Short: "Print the sum-of-squares normalization factor for a length",
	RunE: func(cmd *cobra.Command, args []string) error {
		length, err := cmd.Flags().GetInt("length")
		if err != nil {
			return err
		}

		window, err := windowing.GetHannWindow(length)
		if err != nil {
			return err
		}

		fmt.Printf("%.8f\n", windowing.GetHannWindowSumSquares(window))
		return nil
	},
}

var leakageCmd = &cobra.Command{
	Use:   "leakage",
	Short: "Compare spectral leakage of a rectangular and a Hann-windowed tone",
	RunE: func(cmd *cobra.Command, args []string) error {
		length, err := cmd.Flags().GetInt("length")
		if err != nil {
			return err
		}
		cycles, err := cmd.Flags().GetFloat64("cycles")
		if err != nil {
			return err
		}

		window, err := windowing.GetHannWindow(length)
		if err != nil {
			return err
		}

		signal := make([]float64, length)
		for i := range signal {
			signal[i] = math.Sin(2 * math.Pi * cycles * float64(i) / float64(length))
		}

		windowed, err := spectral.ApplyWindow(signal, window)
		if err != nil {
			return err
		}

		rectangular := spectral.LeakageRatio(spectral.PowerSpectrum(signal))
		hann := spectral.LeakageRatio(spectral.PowerSpectrum(windowed))

		logging.Info("spectral leakage", logging.Fields{
			"length":      length,
			"cycles":      cycles,
			"rectangular": fmt.Sprintf("%.6f", rectangular),
			"hann":        fmt.Sprintf("%.6f", hann),
		})
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logging.Fatal(err, "command failed")
	}
}

func init() {
	rootCmd.PersistentFlags().Int("length", 1024, "window length in samples")
	leakageCmd.Flags().Float64("cycles", 20.5, "tone frequency in cycles per window")
	rootCmd.AddCommand(windowCmd, sumsqCmd, leakageCmd)
}
