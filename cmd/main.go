package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesoslab/beatbridge/cmd/cli"
	"github.com/mesoslab/beatbridge/pkg/logger"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "beatbridge",
	Short: "Mesos container logger bridging task output to filebeat",
	Long: `beatbridge runs once per logged stream inside a Mesos task sandbox.
It reads the stream on stdin and, depending on the task's executor
metadata, ships it through a supervised filebeat process, appends it to a
sidecar file, or passes it through to stdout.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logLevel)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cli.RunBridge()
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the filebeat config this environment would produce",
	Run: func(cmd *cobra.Command, args []string) {
		cli.RunRender()
	},
}

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Write the default index templates into the sandbox and exit",
	Run: func(cmd *cobra.Command, args []string) {
		cli.RunProvision()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level: debug, info, warn, error")
}

func main() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(provisionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
