package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formcheck/pkg/orchestrator"
	"github.com/goliatone/go-formcheck/pkg/render"
	"github.com/goliatone/go-formcheck/pkg/renderers/tui"
)

var (
	promptFormat string

	// promptDriver replaces the survey prompts in tests.
	promptDriver tui.PromptDriver
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Fill in the signup form in the terminal",
	Long: `Asks for each field in turn, repeating a question until the answer
passes validation. Accepted answers are printed without the passwords.`,
	Args: cobra.NoArgs,
	RunE: runPrompt,
}

func runPrompt(cmd *cobra.Command, args []string) error {
	format, ok := tui.ParseOutputFormat(promptFormat)
	if !ok {
		return fmt.Errorf("unknown output format %q", promptFormat)
	}
	renderer, err := tui.New(
		tui.WithPromptDriver(promptDriver),
		tui.WithOutputFormat(format),
		tui.WithTheme(tui.Theme{ErrorPrefix: "✗ "}),
	)
	if err != nil {
		return err
	}

	registry := render.NewRegistry()
	registry.MustRegister(renderer)
	orch := orchestrator.New(orchestrator.WithRegistry(registry))

	out, err := orch.Generate(cmd.Context(), orchestrator.Request{
		Source:        formSource(""),
		OperationID:   cfg.Form.OperationID,
		Renderer:      renderer.Name(),
		RenderOptions: render.RenderOptions{Success: cfg.Success()},
	})
	if errors.Is(err, tui.ErrAborted) {
		logger.Debug("prompt aborted")
		return nil
	}
	if err != nil {
		return err
	}
	logger.Debug("prompt completed", zap.String("format", string(format)))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
