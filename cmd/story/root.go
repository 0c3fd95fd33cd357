package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vellum-ui/vellum"
	"github.com/vellum-ui/vellum/internal/logger"
	"github.com/vellum-ui/vellum/story"
	"github.com/vellum-ui/vellum/ui"
)

type rootFlags struct {
	themeFile string
	logLevel  string
	listOnly  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "story",
		Short:         "Browse the vellum component catalog in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags)
		},
	}

	cmd.Flags().StringVar(&flags.themeFile, "theme", "", "path to a YAML theme file")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&flags.listOnly, "list", false, "print story names and exit")
	return cmd
}

func run(flags *rootFlags) error {
	log, err := logger.New(logger.Options{Level: flags.logLevel, Console: true})
	if err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}

	registry := story.DefaultRegistry()
	if flags.listOnly {
		for _, s := range registry.All() {
			fmt.Printf("%-24s %s\n", s.Name, s.Description)
		}
		return nil
	}

	browser, err := story.NewBrowser(registry, log)
	if err != nil {
		return err
	}

	if flags.themeFile != "" {
		theme, rules, err := loadThemeFile(flags.themeFile)
		if err != nil {
			return err
		}
		if err := browser.UseTheme(theme, rules); err != nil {
			return err
		}
	}

	return browser.Run()
}

// loadThemeFile loads a YAML theme, registers the kit kinds the file
// did not override, and layers the file's rules over the kit defaults.
func loadThemeFile(path string) (*vellum.Theme, *vellum.RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading theme file: %w", err)
	}
	theme, overlay, err := vellum.LoadTheme(data)
	if err != nil {
		return nil, nil, err
	}
	ui.RegisterKinds(theme)
	rules := ui.DefaultRules()
	rules.Append(overlay)
	return theme, rules, nil
}
