package openapi

import (
	"context"
	"embed"

	"github.com/goliatone/go-formcheck/pkg/model"
)

// DefaultOperationID is the operation described by the embedded document.
const DefaultOperationID = "signup"

//go:embed signup.yaml
var embeddedDocuments embed.FS

// DefaultSource returns the embedded signup document.
func DefaultSource() Source {
	return SourceFromFS(embeddedDocuments, "signup.yaml")
}

// Default builds the embedded signup form.
func Default(ctx context.Context, decorators ...model.Decorator) (model.FormModel, error) {
	return Load(ctx, DefaultSource(), DefaultOperationID, decorators...)
}
