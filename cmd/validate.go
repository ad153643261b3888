package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/initializ/bento/types"
	"github.com/initializ/bento/validate"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the bento.yaml config",
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfgPath := cfgFile
	if !filepath.IsAbs(cfgPath) {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfgPath = filepath.Join(wd, cfgPath)
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	// Schema pass first: catches unknown fields and type mismatches.
	schemaErrs, err := validate.ValidateConfigYAML(data)
	if err != nil {
		return err
	}
	for _, e := range schemaErrs {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", e)
	}

	cfg, parseErr := types.ParseConfig(data)
	if parseErr != nil {
		if len(schemaErrs) > 0 {
			return fmt.Errorf("config validation failed: %d error(s)", len(schemaErrs))
		}
		return parseErr
	}

	result := validate.ValidateConfig(cfg)
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", e)
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", w)
	}

	total := len(schemaErrs) + len(result.Errors)
	if total > 0 {
		return fmt.Errorf("config validation failed: %d error(s)", total)
	}

	fmt.Printf("%s is valid.\n", cfgPath)
	return nil
}
