package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/initializ/bento/internal/tui"
	"github.com/initializ/bento/types"
	"github.com/initializ/bento/util"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	useDefaults bool
	forceInit   bool
)

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Scaffold a bento.yaml for the current project",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&useDefaults, "defaults", false, "skip the wizard and write a default config")
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	outPath := cfgFile
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(wd, outPath)
	}
	if _, err := os.Stat(outPath); err == nil && !forceInit {
		return fmt.Errorf("%s already exists; use --force to overwrite", outPath)
	}

	name := filepath.Base(wd)
	if len(args) == 1 {
		name = args[0]
	}

	cfg := &types.Config{
		AppID:   util.Slugify(name),
		Version: "0.1.0",
		Entry:   "main.py",
	}

	interactive := !useDefaults && term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	if interactive {
		model, err := tea.NewProgram(tui.NewWizardModel(tui.DetectTheme(themeOverride))).Run()
		if err != nil {
			return fmt.Errorf("init wizard: %w", err)
		}
		wiz := model.(tui.WizardModel)
		if wiz.Aborted() {
			return fmt.Errorf("init cancelled")
		}
		res := wiz.Result()
		cfg.AppID = util.Slugify(res.AppID)
		cfg.Entry = res.Entry
		cfg.Dependencies = res.Dependencies
	}

	if cfg.AppID == "" {
		return fmt.Errorf("application name %q reduces to an empty app_id", name)
	}
	cfg.ApplyDefaults()

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Printf("Wrote %s\n", outPath)
	return nil
}
