package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"termtactoe/config"
	"termtactoe/rules"
	"termtactoe/types"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagPlayerX    string
	flagPlayerO    string
	flagQuickStart bool
	flagFocus      bool
	flagNoSound    bool
	flagConfig     string
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "termtactoe",
		Short:         "Two-player tic-tac-toe in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	root.Flags().StringVar(&flagPlayerX, "x", "", "name of the X player (moves first)")
	root.Flags().StringVar(&flagPlayerO, "o", "", "name of the O player")
	root.Flags().BoolVar(&flagQuickStart, "play", false, "start a match immediately, skipping the setup screen")
	root.Flags().BoolVar(&flagFocus, "focus", false, "start in focus mode (board only)")
	root.Flags().BoolVar(&flagNoSound, "no-sound", false, "disable the terminal bell cues")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default $XDG_CONFIG_HOME/termtactoe/config.json)")

	root.AddCommand(evalCmd(), envCmd(), versionCmd())
	return root
}

func loadConfig() (*config.Config, error) {
	if flagConfig != "" {
		return config.LoadConfig(flagConfig)
	}
	return config.InitConfig()
}

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval BOARD",
		Short: "Evaluate a board written as XXX/OO./...",
		Example: `  termtactoe eval XXX/OO./...
  termtactoe eval "XOX/OXO/OXO"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return evalBoard(cmd.OutOrStdout(), args[0])
		},
	}
}

// evalBoard parses notation and writes the outcome report to w.
func evalBoard(w io.Writer, notation string) error {
	board, err := types.ParseBoard(notation)
	if err != nil {
		return err
	}
	outcome := rules.Evaluate(board)

	fmt.Fprintf(w, "board:   %s\n", board)
	fmt.Fprintf(w, "outcome: %s\n", outcome.Kind)
	if outcome.Kind == types.Win {
		line := make([]string, 0, types.Size)
		for _, p := range outcome.Line {
			line = append(line, p.String())
		}
		fmt.Fprintf(w, "winner:  %s\n", outcome.Winner)
		fmt.Fprintf(w, "line:    %s\n", strings.Join(line, " "))
	}
	if !outcome.Terminal() {
		fmt.Fprintf(w, "next:    %s\n", board.NextMark())
	}
	return nil
}

func envCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the supported environment overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := config.Env()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "termtactoe %s\n", Version)
		},
	}
}
