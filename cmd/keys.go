package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jsphweid/keywheel/key"
	"github.com/jsphweid/keywheel/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(keyCmd)
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Lists the circle of fifths",
	Long:  `Lists the twelve major keys in circle order with their relative minors`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printKeys(cmd.OutOrStdout(), engine.Circle())
	},
}

var keyCmd = &cobra.Command{
	Use:   "key <name|index>",
	Short: "Shows a key and its diatonic chords",
	Long:  `Shows a key and its diatonic chords. The key can be a note name (enharmonics work) or a circle position 0-11.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := lookupKey(engine.Circle(), args[0])
		if err != nil {
			return err
		}
		printKey(cmd.OutOrStdout(), engine.Circle(), k)
		return nil
	},
}

func lookupKey(circle *key.Circle, arg string) (model.Key, error) {
	if index, err := strconv.Atoi(arg); err == nil {
		k, ok := circle.Key(index)
		if !ok {
			return model.Key{}, fmt.Errorf("%w: %v", ErrInvalidKey, index)
		}
		return k, nil
	}
	k, ok := circle.ByName(arg)
	if !ok {
		return model.Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, arg)
	}
	return k, nil
}

func signatureLabel(k model.Key) string {
	count, glyph := k.Accidentals()
	if count == 0 {
		return "none"
	}
	return fmt.Sprintf("%v%v", count, glyph)
}

func printKeys(w io.Writer, circle *key.Circle) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POS\tMAJOR\tMINOR\tSIGNATURE")
	for _, k := range circle.Keys() {
		fmt.Fprintf(tw, "%v\t%v\t%v\t%v\n", k.Index, k.Major, k.Minor, signatureLabel(k))
	}
	tw.Flush()
}

func printKey(w io.Writer, circle *key.Circle, k model.Key) {
	fmt.Fprintf(w, "Key of %v\n", k.Major)
	fmt.Fprintf(w, "Relative Minor: %v\n", k.Minor)
	fmt.Fprintf(w, "Key Signature: %v\n\n", signatureLabel(k))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range circle.DiatonicChords(k.Index) {
		fmt.Fprintf(tw, "%v\t%v\t%v\n", c.Numeral, c.Name, strings.Join(c.Notes, " - "))
	}
	tw.Flush()
}
