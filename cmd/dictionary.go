package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/keywheel/chord"
	"github.com/jsphweid/keywheel/model"
	"github.com/jsphweid/keywheel/pitch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(dictionaryCmd)
}

var dictionaryCmd = &cobra.Command{
	Use:   "dictionary [root] [symbol]",
	Short: "Prints every chord quality built on a root",
	Long: `Prints every chord quality in the dictionary built on a root (C by default).
With a symbol only that chord is printed, "" is the major triad.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "C"
		if len(args) > 0 {
			root = args[0]
		}
		if err := validateRoot(root); err != nil {
			return err
		}

		if len(args) == 2 {
			entry, err := lookupChord(engine.Dictionary(), root, args[1])
			if err != nil {
				return err
			}
			printEntry(cmd.OutOrStdout(), root, entry)
			return nil
		}

		printDictionary(cmd.OutOrStdout(), toDictionaryResponse(engine.Dictionary(), root))
		return nil
	},
}

func validateRoot(root string) error {
	if _, ok := pitch.FromName(root); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidRoot, root)
	}
	return nil
}

func lookupChord(dict *chord.Dictionary, root string, symbol string) (model.DictionaryEntry, error) {
	def, ok := dict.Definition(symbol)
	if !ok {
		return model.DictionaryEntry{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	return toDictionaryEntry(dict, root, def), nil
}

func printEntry(w io.Writer, root string, c model.DictionaryEntry) {
	fmt.Fprintf(w, "  %-14v %-26v %v\n", root+c.Symbol, c.Name, strings.Join(c.Notes, " - "))
}

func printDictionary(w io.Writer, dict model.DictionaryResponse) {
	for i, category := range dict.Categories {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, strings.ToUpper(category.Name))
		for _, c := range category.Chords {
			printEntry(w, dict.Root, c)
		}
	}
}
