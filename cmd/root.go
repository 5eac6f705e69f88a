package cmd

import (
	"fmt"

	"codedump/pkg/dump"
	"codedump/pkg/logging"
	"codedump/pkg/version"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logger *zap.Logger

	outputPath string
	verbose    bool

	successColor = color.New(color.FgGreen)
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "codedump <directory>",
	Short: "codedump copies a directory's text files to the clipboard",
	Long: `codedump walks a directory tree, filters out ignored and binary files,
and copies the remaining text contents as one labeled document to the system
clipboard, ready to paste into a review or a prompt.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the root command with the given logger.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	// Misuse prints usage on stdout and exits successfully, it is not a failure.
	if len(args) != 1 {
		fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
		return nil
	}

	if verbose {
		if l, err := logging.Setup(true, "codedump", version.Get().Version); err == nil {
			logger = l
		}
	}

	summary, err := dump.Execute(dump.Arguments{
		Directory: args[0],
		Output:    outputPath,
		Verbose:   verbose,
	}, logger)
	if err != nil {
		return err
	}

	if outputPath != "" {
		successColor.Fprintf(cmd.OutOrStdout(),
			"Dump success, content in %s. Skipped %d binary/unreadable files.\n",
			outputPath, summary.Skipped)
	} else {
		successColor.Fprintf(cmd.OutOrStdout(),
			"Dump success, content in paste bin. Skipped %d binary/unreadable files.\n",
			summary.Skipped)
	}
	return nil
}

func init() {
	RootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the dump to a file instead of the clipboard")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
