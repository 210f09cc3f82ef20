// Command peltbench is the thin external driver around the pelt engine:
// it parses CLI flags (or an optional YAML config file), reads a
// row-major CSV signal from a file or stdin, and prints the resulting
// changepoint sequence. It owns none of the algorithm — array
// conversion and option parsing only, per the engine's documented scope.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pelt/accum"
	"github.com/katalvlaran/pelt/costfn"
	"github.com/katalvlaran/pelt/pelt"
)

// fileConfig mirrors the flag surface for --config file.yaml. Zero
// values mean "not set, keep the flag default/CLI value".
type fileConfig struct {
	Penalty          float64 `yaml:"penalty"`
	Jump             int     `yaml:"jump"`
	MinSegmentLength int     `yaml:"min_segment_length"`
	CostFn           string  `yaml:"cost_fn"`
	SumMode          string  `yaml:"sum_mode"`
	KeepInitialZero  bool    `yaml:"keep_initial_zero"`
	Parallel         bool    `yaml:"parallel"`
}

var (
	penalty          float64
	jump             int
	minSegmentLength int
	costFnName       string
	sumModeName      string
	keepInitialZero  bool
	parallel         bool
	configPath       string
	verbose          bool
)

var rootCmd = &cobra.Command{
	Use:   "peltbench",
	Short: "Drive the PELT changepoint engine against a CSV signal",
}

var predictCmd = &cobra.Command{
	Use:   "predict [file]",
	Short: "Detect changepoints in a row-major CSV signal read from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPredict,
}

func init() {
	predictCmd.Flags().Float64Var(&penalty, "penalty", 1.0, "per-segment penalty")
	predictCmd.Flags().IntVar(&jump, "jump", 1, "candidate endpoint grid spacing")
	predictCmd.Flags().IntVar(&minSegmentLength, "min-segment-length", 1, "minimum admissible segment length")
	predictCmd.Flags().StringVar(&costFnName, "cost", "l2", "cost function: l1 or l2")
	predictCmd.Flags().StringVar(&sumModeName, "sum-mode", "naive", "accumulator: naive or kahan")
	predictCmd.Flags().BoolVar(&keepInitialZero, "keep-initial-zero", false, "prepend 0 to the changepoint sequence")
	predictCmd.Flags().BoolVar(&parallel, "parallel", false, "evaluate the inner candidate scan concurrently")
	predictCmd.Flags().StringVar(&configPath, "config", "", "optional YAML file whose non-zero values override these flags")
	predictCmd.Flags().BoolVar(&verbose, "verbose", false, "log engine configuration and timing")

	rootCmd.AddCommand(predictCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPredict(_ *cobra.Command, args []string) error {
	if configPath != "" {
		if err := loadConfigFile(configPath); err != nil {
			return err
		}
	}
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	rows, err := readSignal(args)
	if err != nil {
		return err
	}

	kind, err := parseCostFn(costFnName)
	if err != nil {
		return err
	}
	mode, err := parseSumMode(sumModeName)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"penalty":            penalty,
		"jump":               jump,
		"min_segment_length": minSegmentLength,
		"cost_fn":            costFnName,
		"sum_mode":           sumModeName,
		"parallel":           parallel,
	}).Debug("configured engine")

	engine := pelt.New(
		pelt.WithJump(jump),
		pelt.WithMinSegmentLength(minSegmentLength),
		pelt.WithCostFn(kind),
		pelt.WithSumMode(mode),
		pelt.WithKeepInitialZero(keepInitialZero),
		pelt.WithParallel(parallel),
	)

	start := time.Now()
	changepoints, err := engine.Predict(rows, penalty)
	if err != nil {
		return fmt.Errorf("predict: %w", err)
	}
	logrus.WithField("elapsed", time.Since(start)).Debug("predict finished")

	fmt.Println(changepoints)

	return nil
}

func loadConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if cfg.Jump != 0 {
		jump = cfg.Jump
	}
	if cfg.MinSegmentLength != 0 {
		minSegmentLength = cfg.MinSegmentLength
	}
	if cfg.CostFn != "" {
		costFnName = cfg.CostFn
	}
	if cfg.SumMode != "" {
		sumModeName = cfg.SumMode
	}
	if cfg.Penalty != 0 {
		penalty = cfg.Penalty
	}
	keepInitialZero = keepInitialZero || cfg.KeepInitialZero
	parallel = parallel || cfg.Parallel

	return nil
}

func parseCostFn(name string) (costfn.Kind, error) {
	switch strings.ToLower(name) {
	case "l1":
		return costfn.L1, nil
	case "l2", "":
		return costfn.L2, nil
	default:
		return 0, fmt.Errorf("unknown cost function %q (want l1 or l2)", name)
	}
}

func parseSumMode(name string) (accum.Mode, error) {
	switch strings.ToLower(name) {
	case "kahan":
		return accum.Kahan, nil
	case "naive", "":
		return accum.Naive, nil
	default:
		return 0, fmt.Errorf("unknown sum mode %q (want naive or kahan)", name)
	}
}

// readSignal parses a row-major CSV signal (one sample per line,
// comma-separated dimensions) from args[0] if given, else stdin.
func readSignal(args []string) ([][]float64, error) {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var rows [][]float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("parse value %q: %w", field, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return rows, nil
}
