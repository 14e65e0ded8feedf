package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bnkr/simpliform/form"
	"github.com/bnkr/simpliform/internal/config"
	"github.com/bnkr/simpliform/internal/logging"
)

// errInvalid is returned after the report of an invalid input is printed.
var errInvalid = errors.New("input is invalid")

type report struct {
	Valid    bool                `yaml:"valid"`
	Output   map[string]any      `yaml:"output"`
	Messages map[string][]string `yaml:"messages,omitempty"`
}

func runCheck(cmd *cobra.Command, opts *options) error {
	logger, err := logging.New(opts.logLevel, opts.logFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	def, err := config.LoadFile(opts.definition)
	if err != nil {
		return err
	}

	input, err := config.LoadInput(opts.input)
	if err != nil {
		return err
	}

	f, err := config.Build(def, form.WithLogger(logger))
	if err != nil {
		return err
	}

	if err := f.SetInput(input); err != nil {
		return err
	}

	output, err := f.Output()
	if err != nil {
		return err
	}

	msgs, err := f.Messages()
	if err != nil {
		return err
	}

	rep := report{
		Valid:    msgs.IsValid(),
		Output:   make(map[string]any, len(output)),
		Messages: msgs.ToFlatList(),
	}

	for name, value := range output {
		// durations read better as text than as nanoseconds
		if d, ok := value.(time.Duration); ok {
			value = d.String()
		}

		rep.Output[name] = value
	}

	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return err
	}

	if !rep.Valid {
		return errInvalid
	}

	return nil
}
