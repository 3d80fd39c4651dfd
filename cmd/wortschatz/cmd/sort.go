package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sortCmd = &cobra.Command{
	Use:   "sort <sprache>",
	Short: "Wortliste einer Sprache normalisieren und sortieren",
	Long: `Normalisiert die Wortliste der angegebenen Sprache (Unicode NFC),
entfernt Duplikate und sortiert nach den Kollationsregeln der Sprache.
Die Datei wird vollständig neu geschrieben.

Beispiele:
  wortschatz sort de
  wortschatz sort en --root ./daten`,
	Args: cobra.ExactArgs(1),
	RunE: runSort,
}

var sortAllCmd = &cobra.Command{
	Use:   "sort-all",
	Short: "Alle registrierten Wortlisten sortieren",
	Long: `Normalisiert und sortiert die Wortlisten aller registrierten
Sprachen in deterministischer Reihenfolge. Bricht beim ersten Fehler ab.

Beispiele:
  wortschatz sort-all
  wortschatz sort-all --root ./daten`,
	Args: cobra.NoArgs,
	RunE: runSortAll,
}

func init() {
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(sortAllCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	code := args[0]

	p, _, err := setup()
	if err != nil {
		printError("Initialisierung fehlgeschlagen", err)
		return err
	}

	if err := p.Sort(code); err != nil {
		printError(fmt.Sprintf("Sortieren von %q fehlgeschlagen", code), err)
		return err
	}

	fmt.Printf("Wortliste %q sortiert.\n", code)
	return nil
}

func runSortAll(cmd *cobra.Command, args []string) error {
	p, reg, err := setup()
	if err != nil {
		printError("Initialisierung fehlgeschlagen", err)
		return err
	}

	if err := p.SortAll(); err != nil {
		printError("Sortieren fehlgeschlagen", err)
		return err
	}

	fmt.Printf("%d Wortlisten sortiert.\n", reg.Len())
	return nil
}
