package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/pillars/internal/db"
	"github.com/ziadkadry99/pillars/internal/export"
	"github.com/ziadkadry99/pillars/internal/progress"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to a SQLite database",
	Long:  `Writes every pillar with its sections, stats and related links into a SQLite file. An existing export in the same file is replaced.`,
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("out", "pillars.db", "SQLite database file to write")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	database, err := db.Open(out)
	if err != nil {
		return err
	}
	defer database.Close()

	exp := export.New(database, progress.NewReporter("Exporting pillars"))
	if err := exp.Export(cmd.Context(), c); err != nil {
		return err
	}

	logger.Info("catalog exported", zap.String("path", database.Path()), zap.Int("pillars", c.Len()))
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d pillars to %s\n", c.Len(), out)
	return nil
}
