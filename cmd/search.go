package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jsphweid/keywheel/model"
	"github.com/spf13/cobra"
)

var (
	searchMidi bool
	searchJSON bool
)

func init() {
	searchCmd.Flags().BoolVar(&searchMidi, "midi", false, "read the arguments as MIDI key numbers")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print the result as JSON")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <notes...>",
	Short: "Names the chord made by some notes",
	Long: `Names the chord made by some notes and the key it belongs to.

  keywheel search C E G
  keywheel search "C Eb Gb Bbb D"
  keywheel search --midi 60 64 67`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := runSearch(args, searchMidi)
		if err != nil {
			return err
		}
		if searchJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(toSearchResponse(res))
		}
		printResult(cmd.OutOrStdout(), res)
		return nil
	},
}

func runSearch(args []string, asMidi bool) (model.SearchResult, error) {
	if !asMidi {
		return engine.Find(strings.Join(args, " ")), nil
	}

	keys := make([]uint8, 0, len(args))
	for _, arg := range args {
		k, err := strconv.ParseUint(arg, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("bad midi key %q: %w", arg, err)
		}
		keys = append(keys, uint8(k))
	}
	return engine.FindMIDI(keys)
}

func printChord(w io.Writer, root string, def model.ChordDefinition, notes []string) {
	fmt.Fprintf(w, "  %v (%v)\n", model.FullName(root, def), def.Name)
	fmt.Fprintf(w, "  degrees: %v\n", strings.Join(def.Degrees, " · "))
	fmt.Fprintf(w, "  notes:   %v\n", strings.Join(notes, " - "))
}

func printResult(w io.Writer, res model.SearchResult) {
	switch r := res.(type) {
	case model.ChordInKey:
		fmt.Fprintf(w, "%v %v Major\n", r.Message(), r.Key.Major)
		printChord(w, r.Root, r.Definition, r.Notes)
	case model.NonDiatonicChord:
		fmt.Fprintln(w, r.Message())
		printChord(w, r.Root, r.Definition, r.Notes)
		fmt.Fprintf(w, "  no major key holds it, highlighting the root at position %v\n", r.Index)
	default:
		fmt.Fprintln(w, res.Message())
	}
}
