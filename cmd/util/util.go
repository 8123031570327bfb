package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/ValentinKolb/serbench/lib/common"
	"github.com/ValentinKolb/serbench/lib/format"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("serbench")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// GetBenchmarkSpec reads the benchmark configuration from viper.
// For write benchmarks the in-memory data object is obtained by decoding
// the input file with the configured codec; this setup cost is paid here,
// outside any measurement.
func GetBenchmarkSpec() (*common.BenchmarkSpec, error) {
	spec := &common.BenchmarkSpec{
		IOType:     common.IOType(viper.GetString("io")),
		Command:    common.Command(viper.GetString("command")),
		API:        common.API(viper.GetString("api")),
		InputFile:  viper.GetString("input"),
		Format:     viper.GetString("format"),
		Warmups:    viper.GetInt("warmups"),
		Iterations: viper.GetInt("iterations"),
		DisableGC:  viper.GetBool("no-gc"),
	}

	if spec.Command == common.CmdWrite {
		if spec.InputFile == "" {
			return nil, fmt.Errorf("write benchmarks need an input file to take the data object from")
		}

		codec, err := format.Get(spec.Format)
		if err != nil {
			return nil, err
		}

		data, err := os.ReadFile(spec.InputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}

		obj, err := codec.DecodeBuffer(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode input file as %s: %w", spec.Format, err)
		}
		spec.DataObject = obj
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return spec, nil
}
