package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/wortschatz/internal/collation"
	"github.com/msto63/wortschatz/internal/registry"
	"github.com/msto63/wortschatz/internal/store"
)

var langsCmd = &cobra.Command{
	Use:   "langs",
	Short: "Registrierte Sprachen anzeigen",
	Long: `Zeigt alle registrierten Sprachcodes mit ihren Wortlisten-Dateien
und ob Kollationsregeln für den Code verfügbar sind.

Beispiele:
  wortschatz langs
  wortschatz langs --root ./daten`,
	Args: cobra.NoArgs,
	RunE: runLangs,
}

func init() {
	rootCmd.AddCommand(langsCmd)
}

func runLangs(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings()
	if err != nil {
		printError("Konfiguration konnte nicht geladen werden", err)
		return err
	}

	reg, err := registry.Load(s.root)
	if err != nil {
		printError("Registry konnte nicht geladen werden", err)
		return err
	}

	st := store.New(reg)
	cap := collation.NewCLDR()

	fmt.Printf("Registrierte Sprachen (%d):\n", reg.Len())
	for _, code := range reg.Codes() {
		path, err := st.Path(code)
		if err != nil {
			return err
		}
		collStatus := "Kollation verfügbar"
		if !cap.Available(code) {
			collStatus = "keine Kollation"
		}
		fmt.Printf("  %-8s %s (%s)\n", code, path, collStatus)
	}
	return nil
}
