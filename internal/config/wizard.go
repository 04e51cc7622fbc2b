package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// catalogChoices are the catalog sources offered by the wizard.
var catalogChoices = []string{
	"built-in — the standard eight-pillar curriculum",
	"file     — a single YAML catalog file",
	"dir      — a directory with one YAML file per pillar",
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to pillars! Let's configure your catalog server.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Catalog source.
	sourcePrompt := promptui.Select{
		Label: "Select catalog source",
		Items: catalogChoices,
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("catalog selection: %w", err)
	}
	switch sourceIdx {
	case 1:
		p := promptui.Prompt{Label: "Catalog file", Default: "pillars.yml"}
		if cfg.CatalogFile, err = p.Run(); err != nil {
			return nil, fmt.Errorf("catalog file: %w", err)
		}
	case 2:
		p := promptui.Prompt{Label: "Catalog directory", Default: "pillars"}
		if cfg.CatalogDir, err = p.Run(); err != nil {
			return nil, fmt.Errorf("catalog dir: %w", err)
		}
	}

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 3. CORS.
	corsPrompt := promptui.Select{
		Label: "Allow requests from any origin?",
		Items: []string{"no  — localhost only", "yes — any origin (development)"},
	}
	corsIdx, _, err := corsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("cors selection: %w", err)
	}
	cfg.AllowAllOrigins = corsIdx == 1

	// 4. Static site output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static site",
		Default: cfg.OutputDir,
	}
	if cfg.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// validatePort is the promptui validator for the port question.
func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 0 || n > 65535 {
		return fmt.Errorf("port must be between 0 and 65535")
	}
	return nil
}
