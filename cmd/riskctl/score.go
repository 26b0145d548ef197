package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MHK-404/Wellsure-backend/internal/assessment"
)

func newScoreCmd(tablePath *string) *cobra.Command {
	var required string

	cmd := &cobra.Command{
		Use:   "score [file]",
		Short: "Score an assessment JSON document (stdin when file is omitted or -)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			table, err := assessment.LoadTable(*tablePath)
			if err != nil {
				return err
			}
			svc := assessment.NewService(table, assessment.NewValidator(strings.Split(required, ",")...))

			raw := map[string]any{}
			dec := json.NewDecoder(bytes.NewReader(data))
			dec.UseNumber()
			if err := dec.Decode(&raw); err != nil {
				return fmt.Errorf("decode input: %w", err)
			}

			result, _, err := svc.Assess(raw)
			if err != nil {
				var verr *assessment.ValidationError
				if errors.As(err, &verr) {
					if werr := writeJSON(cmd.ErrOrStderr(), map[string]any{
						"error":         verr.Code,
						"missingFields": verr.MissingFields,
						"message":       verr.Message,
					}); werr != nil {
						return werr
					}
					return reportedError{err}
				}
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&required, "required", defaultRequired(), "comma-separated required fields (REQUIRED_FIELDS)")
	return cmd
}

func newTableCmd(tablePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the active scoring table as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := assessment.LoadTable(*tablePath)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(table); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

// defaultRequired mirrors the server's REQUIRED_FIELDS so both reject the same input.
func defaultRequired() string {
	if v := os.Getenv("REQUIRED_FIELDS"); v != "" {
		return v
	}
	return "age"
}

func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(args[0])
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
