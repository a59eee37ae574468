package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvincent/patlog/config"
	"github.com/mvincent/patlog/core"
	"github.com/mvincent/patlog/formatter"
)

var checkCmd = &cobra.Command{
	Use:   "check <pattern>",
	Short: "Compile a pattern and report errors",
	Long:  `Compile a pattern and report whether the error flag was set.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f := formatter.NewPatternFormatter(args[0])
		if f.IsError() {
			cmd.PrintErrf("pattern has errors: %s\n", f.Pattern())
			cmd.PrintErrf("rendered markers: %s\n", f.Format(nil, core.InfoLevel, sampleEvent()))
			os.Exit(1)
		}
		cmd.Printf("pattern ok: %s\n", f.Pattern())
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview [pattern]",
	Short: "Render a sample event with a pattern",
	Long:  `Render a fixed sample event with the given pattern (default pattern when omitted).`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := formatter.DefaultPattern
		if len(args) == 1 {
			pattern = args[0]
		}
		f := formatter.NewPatternFormatter(pattern)
		if f.IsError() {
			cmd.PrintErrln("warning: pattern has errors, markers appear in the output")
		}
		ev := sampleEvent()
		cmd.Print(f.Format(ev.Owner, ev.Level, ev))
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration commands",
}

var configTestCmd = &cobra.Command{
	Use:   "test <file>",
	Short: "Validate a YAML logger configuration",
	Long:  `Load a YAML logger configuration and run strict validation.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(args[0])
		if err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}
		if err := cfg.Validate(); err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}
		cmd.Printf("config ok: %d logger(s)\n", len(cfg.Loggers))
	},
}

func init() {
	configCmd.AddCommand(configTestCmd)
}

type sampleLogger string

func (n sampleLogger) Name() string { return string(n) }

func sampleEvent() *core.Event {
	ev := core.NewEvent(sampleLogger("root"), core.InfoLevel,
		"main.go", 42, 1500, 7, 9, time.Now().Unix(), "worker-1")
	ev.AppendString("sample message")
	return ev
}
