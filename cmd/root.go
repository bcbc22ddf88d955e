package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jsphweid/keywheel/chord"
	"github.com/jsphweid/keywheel/constants"
	"github.com/jsphweid/keywheel/key"
	"github.com/jsphweid/keywheel/search"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   = slog.Default()
	engine   *search.Engine
)

var rootCmd = &cobra.Command{
	Use:   "keywheel",
	Short: "Finds chords and keys on the circle of fifths",
	Long: `keywheel names the chord made by a set of notes and finds the first
major key, going round the circle of fifths from C, that contains it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(logLevel)
		if err != nil {
			return err
		}
		logger = l
		engine = search.New(chord.NewDictionary(), key.NewCircle(), logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "debug, info, warn or error")
}

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("bad log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
