package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	pkgopenapi "github.com/goliatone/go-formcheck/pkg/openapi"
	"github.com/goliatone/go-formcheck/pkg/orchestrator"
	"github.com/goliatone/go-formcheck/pkg/render"
	"github.com/goliatone/go-formcheck/pkg/renderers/vanilla"
)

var (
	renderRenderer  string
	renderOutput    string
	renderSource    string
	renderOperation string
	renderDocument  bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the form as static HTML",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	var vanillaOptions []vanilla.Option
	if renderDocument {
		vanillaOptions = append(vanillaOptions, vanilla.WithDocument(cfg.Form.Title))
	}
	html, err := vanilla.New(vanillaOptions...)
	if err != nil {
		return err
	}
	registry := render.NewRegistry()
	registry.MustRegister(html)

	gen := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithThemeSelection(cfg.ThemeSelection()),
	)

	operation := renderOperation
	if operation == "" {
		operation = cfg.Form.OperationID
	}
	output, err := gen.Generate(cmd.Context(), orchestrator.Request{
		Source:      formSource(renderSource),
		OperationID: operation,
		Renderer:    renderRenderer,
	})
	if err != nil {
		return fmt.Errorf("failed to generate form: %w", err)
	}

	if renderOutput != "" {
		if err := os.WriteFile(renderOutput, output, 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("form written", zap.String("path", renderOutput))
		return nil
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return err
}

// formSource picks the document named by raw, then the configured one. Nil
// selects the built-in signup document.
func formSource(raw string) pkgopenapi.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		path = strings.TrimSpace(cfg.Form.Document)
	}
	if path == "" {
		return nil
	}
	return pkgopenapi.SourceFromFile(path)
}
