package cmd

import (
	"fmt"

	"github.com/initializ/bento/archiver"
	"github.com/initializ/bento/types"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <archive>",
	Short: "Report the layout of a built archive",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	sum, err := archiver.Summarize(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d entries\n", args[0], sum.Entries)
	if sum.HasEntryPoint {
		fmt.Printf("entry point: %s\n", types.EntryFileName)
	}
	for _, d := range sum.TopLevelDirs {
		fmt.Printf("  %s/\n", d)
	}
	for _, f := range sum.TopLevelFiles {
		fmt.Printf("  %s\n", f)
	}

	if !sum.HasEntryPoint {
		return fmt.Errorf("%s has no %s at its root; it is not runnable", args[0], types.EntryFileName)
	}
	return nil
}
