// Command bulkctl encodes values into frames, decodes frames and prints frame headers.
//
// Usage:
//
//	bulkctl encode --kind int32 --value 42 -o answer.frame
//	bulkctl encode --kind record --table Users --value 9 -o user.frame
//	bulkctl encode-ids --uvector 1,2,3 --compression zstd -o ids.frame
//	bulkctl decode --table Users user.frame
//	bulkctl inspect ids.frame
package main

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/grnbulk/bulk"
)

type globalOptions struct {
	verbose bool
	tables  []string
	logger  *zap.Logger
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "bulkctl",
		Short:         "Encode, decode and inspect typed value frames",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setupLogger()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return opts.syncLogger()
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log codec decisions to stderr")
	flags.StringArrayVar(&opts.tables, "table", nil,
		"Register a table as NAME[:hash|pat|nokey]; tables get ids from 256 in flag order")

	cmd.AddCommand(
		newEncodeCommand(opts),
		newEncodeIDsCommand(opts),
		newDecodeCommand(opts),
		newInspectCommand(),
	)

	return cmd
}

func (o *globalOptions) setupLogger() error {
	if !o.verbose {
		o.logger = nil
		bulk.SetLogger(nil)

		return nil
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	o.logger = logger
	bulk.SetLogger(logger)

	return nil
}

// syncLogger flushes the verbose logger. Syncing a terminal or pipe fails with EINVAL
// or ENOTTY on Linux, which is not worth failing the command for.
func (o *globalOptions) syncLogger() error {
	if o.logger == nil {
		return nil
	}

	err := o.logger.Sync()
	if err == nil || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}

	return fmt.Errorf("sync logger: %w", err)
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bulkctl: %v\n", err)
		os.Exit(1)
	}
}
