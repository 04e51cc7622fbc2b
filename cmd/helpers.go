package cmd

import (
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/ziadkadry99/pillars/internal/catalog"
	"github.com/ziadkadry99/pillars/internal/config"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `pillars init` to create a config file", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return c, nil
}

// loadCatalog resolves the configured catalog source. A directory wins over a
// single file; with neither set the built-in curriculum is used.
func loadCatalog(c *config.Config) (*catalog.Catalog, error) {
	var (
		cat *catalog.Catalog
		err error
	)
	switch {
	case c.CatalogDir != "":
		cat, err = catalog.LoadDir(c.CatalogDir)
	case c.CatalogFile != "":
		cat, err = catalog.LoadFile(c.CatalogFile)
	default:
		cat = catalog.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("loading catalog (%s): %w", c.CatalogSource(), err)
	}
	logger.Debug("catalog loaded",
		zap.String("source", c.CatalogSource()),
		zap.Int("pillars", cat.Len()))
	return cat, nil
}

// parseID parses a pillar id argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid pillar id %q: must be an integer", arg)
	}
	return id, nil
}

// printSummary writes a one-line pillar summary.
func printSummary(w io.Writer, p catalog.Pillar) {
	fmt.Fprintf(w, "%d. %-28s %-12s %s\n", p.ID, p.Title, p.DifficultyLabel(), p.Path)
}
