package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/pillars/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every pillar in curriculum order",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a pillar and its neighbours",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var nextCmd = &cobra.Command{
	Use:   "next <id>",
	Short: "Print the pillar after the given one",
	Long:  `Prints the pillar that follows <id> in curriculum order, or "none" when <id> is the last pillar or unknown.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runNext,
}

var prevCmd = &cobra.Command{
	Use:     "prev <id>",
	Aliases: []string{"previous"},
	Short:   "Print the pillar before the given one",
	Long:    `Prints the pillar that precedes <id> in curriculum order, or "none" when <id> is the first pillar or unknown.`,
	Args:    cobra.ExactArgs(1),
	RunE:    runPrev,
}

var searchCmd = &cobra.Command{
	Use:   "search <terms...>",
	Short: "Find pillars whose title, description or section titles match all terms",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(listCmd, showCmd, nextCmd, prevCmd, searchCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	for _, p := range c.All() {
		printSummary(cmd.OutOrStdout(), p)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	nav, ok := c.Neighbors(id)
	if !ok {
		return fmt.Errorf("pillar %d not found", id)
	}

	out := cmd.OutOrStdout()
	p := nav.Current
	fmt.Fprintf(out, "%d. %s\n", p.ID, p.Title)
	fmt.Fprintf(out, "   %s\n\n", p.Description)
	fmt.Fprintf(out, "Difficulty: %s\n", p.DifficultyLabel())
	if p.ReadMinutes > 0 {
		fmt.Fprintf(out, "Reading time: %d min\n", p.ReadMinutes)
	}
	fmt.Fprintf(out, "Path: %s\n", p.Path)
	if len(p.Sections) > 0 {
		fmt.Fprintf(out, "Sections: %s\n", strings.Join(p.SectionIDs(), ", "))
	}
	fmt.Fprintf(out, "Previous: %s\n", neighbourLabel(nav.Previous))
	fmt.Fprintf(out, "Next: %s\n", neighbourLabel(nav.Next))
	return nil
}

func runNext(cmd *cobra.Command, args []string) error {
	return printNeighbour(cmd, args[0], (*catalog.Catalog).Next)
}

func runPrev(cmd *cobra.Command, args []string) error {
	return printNeighbour(cmd, args[0], (*catalog.Catalog).Previous)
}

// printNeighbour prints the result of a Next/Previous lookup. An unknown id
// and a catalog boundary both print "none".
func printNeighbour(cmd *cobra.Command, arg string, lookup func(*catalog.Catalog, int) (catalog.Pillar, bool)) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	p, ok := lookup(c, id)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "none")
		return nil
	}
	printSummary(cmd.OutOrStdout(), p)
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	results := c.Search(strings.Join(args, " "))
	if len(results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No matching pillars.")
		return nil
	}
	for _, p := range results {
		printSummary(cmd.OutOrStdout(), p)
	}
	return nil
}

func neighbourLabel(p *catalog.Pillar) string {
	if p == nil {
		return "none"
	}
	return fmt.Sprintf("%d. %s", p.ID, p.Title)
}
