package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/decker502/wheel/pkg/config"
	"github.com/decker502/wheel/pkg/wheel"
	"github.com/spf13/cobra"
)

var (
	simulateWheelID string
	simulateSpins   int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Spin a wheel many times without rendering and print statistics",
	Long: `Simulate runs complete spins headlessly (60 ticks per second of animation) and
reports how often each section won, plus the average spin length.`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	flags := simulateCmd.Flags()
	flags.StringVar(&simulateWheelID, "wheel", "", "id of the wheel to spin (default: first wheel)")
	flags.IntVar(&simulateSpins, "spins", 1000, "number of spins")
	rootCmd.AddCommand(simulateCmd)
}

// simulationReport 多次旋转的统计
type simulationReport struct {
	Wheel     *config.WheelConfig
	Spins     int
	Wins      []int // 按扇区索引计数
	AvgTicks  float64
	AvgTravel float64
	MinTicks  int
	MaxTicks  int
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if simulateSpins <= 0 {
		return fmt.Errorf("--spins must be positive, got %d", simulateSpins)
	}

	rng := wheel.NewRand(seed)
	wc, err := loadWheel(simulateWheelID, rng)
	if err != nil {
		return err
	}

	report, err := simulateWheel(wc, simulateSpins, rng)
	if err != nil {
		return err
	}
	return report.Write(cmd.OutOrStdout())
}

// simulateWheel 连续旋转 spins 次，每次从上一次停止的位置开始
func simulateWheel(wc *config.WheelConfig, spins int, rng wheel.RandSource) (*simulationReport, error) {
	model, err := wheel.NewModel(wc.WheelSections(), wc.Physics, rng)
	if err != nil {
		return nil, fmt.Errorf("wheel %q: %w", wc.ID, err)
	}
	report := &simulationReport{
		Wheel: wc,
		Spins: spins,
		Wins:  make([]int, model.State.SectionCount()),
	}

	totalTicks, totalTravel := 0, 0.0
	for i := 0; i < spins; i++ {
		sim, err := model.Simulate()
		if err != nil {
			return nil, err
		}
		report.Wins[sim.Result.Index]++
		totalTicks += sim.Ticks
		totalTravel += sim.Travel

		if i == 0 || sim.Ticks < report.MinTicks {
			report.MinTicks = sim.Ticks
		}
		if sim.Ticks > report.MaxTicks {
			report.MaxTicks = sim.Ticks
		}
	}

	report.AvgTicks = float64(totalTicks) / float64(spins)
	report.AvgTravel = totalTravel / float64(spins)
	return report, nil
}

// Write 以表格形式输出统计
func (r *simulationReport) Write(w io.Writer) error {
	fmt.Fprintf(w, "wheel %q: %d spins, %.1f ticks on average (min %d, max %d), %.2f turns on average\n\n",
		r.Wheel.ID, r.Spins, r.AvgTicks, r.MinTicks, r.MaxTicks, r.AvgTravel/wheel.TwoPi)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSECTION\tWINS\tSHARE")
	for i, s := range r.Wheel.WheelSections() {
		share := 100 * float64(r.Wins[i]) / float64(r.Spins)
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.1f%%\n", i, s.Label, r.Wins[i], share)
	}
	return tw.Flush()
}
