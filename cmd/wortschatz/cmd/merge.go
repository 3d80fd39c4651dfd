package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <sprache> [datei...]",
	Short: "Externe Wortlisten in eine Sprache einpflegen",
	Long: `Pflegt die Wörter der angegebenen Dateien in die Wortliste der
Sprache ein. Anschließend wird die Liste normalisiert, dedupliziert und
nach den Kollationsregeln der Sprache sortiert.

Ist eine der Dateien nicht lesbar, bricht der Vorgang ab, bevor etwas
geschrieben wird. Die Zieldatei bleibt dann unverändert.

Beispiele:
  wortschatz merge de neue_woerter.txt
  wortschatz merge en liste1.txt liste2.txt
  wortschatz merge de  # entspricht: wortschatz sort de`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	code := args[0]
	extraPaths := args[1:]

	p, _, err := setup()
	if err != nil {
		printError("Initialisierung fehlgeschlagen", err)
		return err
	}

	if err := p.Merge(code, extraPaths); err != nil {
		printError(fmt.Sprintf("Merge in %q fehlgeschlagen", code), err)
		return err
	}

	fmt.Printf("%d Datei(en) in %q eingepflegt.\n", len(extraPaths), code)
	return nil
}
