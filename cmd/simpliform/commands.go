package main

import (
	"github.com/spf13/cobra"
)

type options struct {
	definition string
	input      string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "simpliform",
		Short: "Process and validate flat documents with form definitions",
		Long: `simpliform evaluates a flat mapping of named values through a form:
conversions, validations and dependencies between fields, reporting
messages for every invalid field.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Run a definition against an input file and print the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, opts)
		},
	}

	checkCmd.Flags().StringVarP(&opts.definition, "definition", "d", "", "path to the YAML definition file")
	checkCmd.Flags().StringVarP(&opts.input, "input", "i", "", "path to the YAML input file")
	_ = checkCmd.MarkFlagRequired("definition")
	_ = checkCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(checkCmd)

	return rootCmd
}
