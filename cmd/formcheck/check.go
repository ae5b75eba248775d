package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formcheck/pkg/validation"
)

var errInvalidSubmission = errors.New("submission is invalid")

var checkValues validation.Values

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate signup values and print the report",
	Long: `Runs the submit-time validation on the given values and prints the
per-field report as JSON. Exits non-zero when any field is invalid.

Example:
  formcheck check --username alice --email alice@example.com \
    --password password1 --confirm password1`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	report := validation.ValidateAll(checkValues)

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if !report.Valid {
		logger.Debug("check failed", zap.Any("issues", report.Messages()))
		return errInvalidSubmission
	}
	return nil
}
