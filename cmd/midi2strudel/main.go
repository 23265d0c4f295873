// Package main is the entry point for midi2strudel CLI
package main

import (
	"fmt"
	"os"

	"github.com/james-see/midi2strudel/pkg/api"
	"github.com/james-see/midi2strudel/pkg/converter"
	"github.com/james-see/midi2strudel/pkg/tui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	modeName     string
	configFile   string
	defaultTempo float64
	verbose      bool
	serverPort   int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "midi2strudel",
	Short: "Convert MIDI files to Strudel patterns",
	Long: `midi2strudel reads a standard MIDI file, pairs its note-on and note-off
messages and prints the notes as a Strudel pattern.

Two output modes are available:
  basic  n("C4 E4").dur("1.0 0.5")
  mini   note("C4@1.0 E4@0.5").cpm(480.0)

Examples:
  midi2strudel convert song.mid
  midi2strudel convert song.mid --mode mini
  midi2strudel tui
  midi2strudel serve --port 8080`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetOutput(cmd.ErrOrStderr())
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <input.mid>",
	Short: "Convert a MIDI file and print the Strudel pattern",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&modeName, "mode", "m", string(converter.ModeBasic), "Output mode (basic, mini)")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML options file")
	rootCmd.PersistentFlags().Float64Var(&defaultTempo, "default-tempo", converter.DefaultTempo, "Tempo in BPM when the file has none")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log note pairing diagnostics")

	// serve command
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	// Add commands
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadOptions merges the options file with any flags set on the command line
func loadOptions(cmd *cobra.Command) (converter.Options, error) {
	opts := converter.DefaultOptions()
	if configFile != "" {
		var err error
		if opts, err = converter.LoadOptions(configFile); err != nil {
			return opts, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		mode, err := converter.ParseMode(modeName)
		if err != nil {
			return opts, err
		}
		opts.Mode = mode
	}
	if flags.Changed("default-tempo") {
		opts.DefaultTempo = defaultTempo
	}
	return opts, opts.Validate()
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	res, err := converter.New(opts).ConvertFile(args[0])
	if err != nil {
		return err
	}

	if err := res.WriteReport(cmd.ErrOrStderr()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Pattern)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	return tui.Run(opts)
}

func runServe(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	fmt.Printf("Starting API server on port %d...\n", serverPort)
	return api.StartServer(serverPort, opts)
}
