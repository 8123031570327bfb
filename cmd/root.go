package cmd

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/serbench/cmd/run"
	"github.com/ValentinKolb/serbench/lib/format"
	"github.com/spf13/cobra"
)

const (
	Version = "0.3.1"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "serbench",
		Short: "serialization benchmark harness",
		Long: fmt.Sprintf(`serbench (v%s)

A benchmark harness for serialization formats. Measures the latency and
per-operation memory allocation of load/dump operations against in-memory
buffers and files.`, Version),
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of serbench",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("serbench v%s\n", Version)
		},
	}

	// formatsCmd lists the registered serialization formats
	formatsCmd = &cobra.Command{
		Use:   "formats",
		Short: "List the available serialization formats",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range format.Names() {
				class := "text"
				if format.IsBinary(name) {
					class = "binary"
				}
				fmt.Printf("%-10s%s\n", name, class)
			}
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(run.RunCmd)
	RootCmd.AddCommand(formatsCmd)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
