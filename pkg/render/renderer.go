package render

import (
	"context"

	"github.com/goliatone/go-formcheck/pkg/model"
)

// Renderer converts a FormModel into a byte representation (HTML, a JSON
// payload collected from a terminal session, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.FormModel, options RenderOptions) ([]byte, error)
}
