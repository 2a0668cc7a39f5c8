package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/holonet/internal/store"
)

func newExportCmd(a *app) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write people and planets to JSONL files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.openStore()
			if err != nil {
				return err
			}
			defer b.Detach()

			stats, err := store.ExportCatalog(cmd.Context(), b, dir)
			if err != nil {
				return sysError("export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d people and %d planets to %s\n", stats.People, stats.Planets, dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "export", "directory for people.jsonl and planets.jsonl")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Insert people and planets from JSONL files",
		Long:  "Insert the records of people.jsonl and planets.jsonl. New ids are assigned;\nmalformed lines and records without a name are skipped.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.openStore()
			if err != nil {
				return err
			}
			defer b.Detach()

			stats, err := store.ImportCatalog(cmd.Context(), b, dir)
			if err != nil {
				return sysError("import: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d people and %d planets (%d skipped)\n", stats.People, stats.Planets, stats.Skipped)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "export", "directory holding people.jsonl and planets.jsonl")
	return cmd
}
