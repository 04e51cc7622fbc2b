package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/pillars/internal/catalog"
	"github.com/ziadkadry99/pillars/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize pillars configuration with an interactive wizard",
	Long: `Runs an interactive wizard and writes a .pillars.yml file.

With --catalog, the built-in curriculum is also written to the given YAML
file so it can be edited and loaded back through catalog_file.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().String("catalog", "", "also write the built-in catalog to this YAML file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := config.RunWizard(cfgFile); err != nil {
		return err
	}
	return writeStarterCatalog(cmd)
}

func writeStarterCatalog(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		return nil
	}
	if err := catalog.WriteFile(catalog.Default(), path); err != nil {
		return fmt.Errorf("writing starter catalog: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote built-in catalog to %s\n", path)
	return nil
}
