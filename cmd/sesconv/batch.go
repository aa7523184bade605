package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ECB2020/Hobyah-sub001/internal/batch"
)

// batchCmd converts many files in parallel, one worker per CPU unless
// configured otherwise. A file that fails to decode is reported and
// does not stop the rest.
var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Convert several SES output files in parallel",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jobs := make([]batch.Job, len(args))
		for i, path := range args {
			jobs[i] = batch.Job{Path: path}
		}
		outcomes, err := batch.Run(cmd.Context(), jobs, cfg.Batch.Workers, processFile, logger)
		if err != nil {
			return err
		}
		if failed := batch.Failed(outcomes); failed > 0 {
			return fmt.Errorf("%d of %d files failed to decode", failed, len(outcomes))
		}
		return nil
	},
}

// watchCmd re-converts a file whenever the simulation rewrites it.
var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-convert a file every time it changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		debounce := time.Duration(cfg.Batch.DebounceMS) * time.Millisecond
		return batch.Watch(cmd.Context(), args[0], debounce, processFile, logger)
	},
}
