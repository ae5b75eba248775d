package openapi

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-formcheck/pkg/model"
)

// Source locates the raw bytes of an OpenAPI document.
type Source interface {
	Location() string
	Read(ctx context.Context) ([]byte, error)
}

type fileSource struct {
	path string
}

// SourceFromFile returns a Source reading a document from disk.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("openapi: read %s: %w", s.path, err)
	}
	return data, nil
}

type fsSource struct {
	fsys fs.FS
	name string
}

// SourceFromFS returns a Source reading name from fsys.
func SourceFromFS(fsys fs.FS, name string) Source {
	return fsSource{fsys: fsys, name: strings.TrimPrefix(name, "/")}
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.fsys == nil {
		return nil, errors.New("openapi: fs source has no filesystem")
	}
	data, err := fs.ReadFile(s.fsys, s.name)
	if err != nil {
		return nil, fmt.Errorf("openapi: read %s: %w", s.name, err)
	}
	return data, nil
}

// Load reads src and builds the form for operationID.
func Load(ctx context.Context, src Source, operationID string, decorators ...model.Decorator) (model.FormModel, error) {
	if src == nil {
		return model.FormModel{}, errors.New("openapi: source is nil")
	}
	raw, err := src.Read(ctx)
	if err != nil {
		return model.FormModel{}, err
	}
	return Build(ctx, raw, operationID, decorators...)
}
