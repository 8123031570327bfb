package run

import (
	"fmt"
	"os"
	"time"

	"github.com/ValentinKolb/serbench/cmd/util"
	"github.com/ValentinKolb/serbench/lib/bench"
	"github.com/ValentinKolb/serbench/lib/common"
	"github.com/ValentinKolb/serbench/lib/format"
	"github.com/ValentinKolb/serbench/lib/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	// RunCmd represents the run command
	RunCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run a serialization benchmark",
		Long: `Run a single serialization benchmark: measure the latency and the
per-operation memory allocation of one load or dump operation for the
configured format, medium and direction.`,
		RunE:    run,
		PreRunE: processConfig,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// add flags
	key := "format"
	RunCmd.Flags().String(key, "json", util.WrapString("Format to benchmark (see `serbench formats`)"))
	key = "io"
	RunCmd.Flags().String(key, "buffer", util.WrapString("IO medium to benchmark against (buffer, file)"))
	key = "command"
	RunCmd.Flags().String(key, "read", util.WrapString("Direction of the benchmarked operation (read, write)"))
	key = "api"
	RunCmd.Flags().String(key, "load_dump", util.WrapString("Serialization API under test (load_dump)"))
	key = "input"
	RunCmd.Flags().String(key, "", util.WrapString("Input file in the format under test. Read benchmarks deserialize it, write benchmarks take their data object from it"))
	key = "warmups"
	RunCmd.Flags().Int(key, 10, util.WrapString("Number of untimed invocations before measurement"))
	key = "iterations"
	RunCmd.Flags().Int(key, 10, util.WrapString("Number of timed samples to collect"))
	key = "no-gc"
	RunCmd.Flags().Bool(key, false, util.WrapString("Disable the garbage collector during the timing phase"))
	key = "min-sample-time"
	RunCmd.Flags().Duration(key, bench.DefaultCalibrationThreshold, util.WrapString("Minimum duration one timed sample must reach during batch calibration"))
	key = "no-mem"
	RunCmd.Flags().Bool(key, false, util.WrapString("Skip the memory profiling phase"))
	key = "csv"
	RunCmd.Flags().String(key, "", util.WrapString("Optional path to save the benchmark result as CSV"))
	key = "prom"
	RunCmd.Flags().String(key, "", util.WrapString("Optional path to save the benchmark result in Prometheus exposition format"))
	key = "log-level"
	RunCmd.Flags().String(key, "info", util.WrapString("Log level (debug, info, warn, error)"))
}

func processConfig(cmd *cobra.Command, _ []string) error {
	return util.BindCommandFlags(cmd)
}

func run(_ *cobra.Command, _ []string) error {
	logger, err := common.NewLogger(viper.GetString("log-level"))
	if err != nil {
		return err
	}
	defer logger.Sync()

	spec, err := util.GetBenchmarkSpec()
	if err != nil {
		return err
	}

	logger.Debug("benchmark configuration assembled", zap.String("spec", spec.String()))

	var tracer bench.IMemTracer
	if viper.GetBool("no-mem") {
		tracer = bench.NewNoopTracer()
	}

	runner := bench.NewRunner(bench.RunnerConfig{
		CalibrationThreshold: viper.GetDuration("min-sample-time"),
		Tracer:               tracer,
	})

	logger.Info("running benchmark",
		zap.String("format", spec.Format),
		zap.String("io", string(spec.IOType)),
		zap.String("command", string(spec.Command)),
		zap.Int("iterations", spec.Iterations),
	)

	start := time.Now()
	result, err := runner.Run(spec)
	if err != nil {
		return err
	}
	logger.Debug("benchmark finished", zap.Duration("total", time.Since(start)))

	// print the report
	summary := report.NewSummary(spec, result, format.IsBinary(spec.Format))
	fmt.Println()
	summary.WriteText(os.Stdout)

	// Write results to csv if specified
	if csvPath := viper.GetString("csv"); csvPath != "" {
		if err := report.WriteCSV(csvPath, summary); err != nil {
			return fmt.Errorf("failed to export results to CSV: %v", err)
		}
		logger.Info("results exported", zap.String("csv", csvPath))
	}

	// Write results in Prometheus exposition format if specified
	if promPath := viper.GetString("prom"); promPath != "" {
		if err := report.WritePrometheusFile(promPath, summary); err != nil {
			return fmt.Errorf("failed to export results to Prometheus file: %v", err)
		}
		logger.Info("results exported", zap.String("prom", promPath))
	}

	return nil
}
