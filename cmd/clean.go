package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/initializ/bento/config"
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the staging directory",
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	cfgPath := cfgFile
	if !filepath.IsAbs(cfgPath) {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfgPath = filepath.Join(wd, cfgPath)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	stagingDir := cfg.StagingDir
	if !filepath.IsAbs(stagingDir) {
		stagingDir = filepath.Join(filepath.Dir(cfgPath), stagingDir)
	}

	if err := os.RemoveAll(stagingDir); err != nil {
		return fmt.Errorf("removing staging dir %s: %w", stagingDir, err)
	}

	fmt.Printf("Removed %s\n", stagingDir)
	return nil
}
