package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formcheck/pkg/model"
)

const (
	extensionPrefix       = "x-formcheck-"
	extensionOrder        = extensionPrefix + "order"
	extensionLabel        = extensionPrefix + "label"
	extensionPlaceholder  = extensionPrefix + "placeholder"
	extensionAutocomplete = extensionPrefix + "autocomplete"
)

var (
	// ErrOperationNotFound is returned when the document lacks the requested
	// operationId.
	ErrOperationNotFound = errors.New("openapi: operation not found")
	// ErrNoRequestBody is returned when the operation has no usable body schema.
	ErrNoRequestBody = errors.New("openapi: operation has no request body schema")
)

var methods = []string{"POST", "PUT", "PATCH", "GET", "DELETE"}

// Build parses raw as an OpenAPI 3 document and converts operationID's request
// body into a form model. Decorators run after the model is assembled.
func Build(ctx context.Context, raw []byte, operationID string, decorators ...model.Decorator) (model.FormModel, error) {
	if err := ctx.Err(); err != nil {
		return model.FormModel{}, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return model.FormModel{}, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("openapi: load document: %w", err)
	}

	path, method, op := findOperation(doc, operationID)
	if op == nil {
		return model.FormModel{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	schema := requestSchema(op.RequestBody)
	if schema == nil || len(schema.Properties) == 0 {
		return model.FormModel{}, fmt.Errorf("%w: %q", ErrNoRequestBody, operationID)
	}

	form := model.FormModel{
		OperationID: operationID,
		Endpoint:    path,
		Method:      method,
		Summary:     op.Summary,
		Description: op.Description,
		Metadata:    stringExtensions(op.Extensions),
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	for _, name := range fieldOrder(op.Extensions, schema.Properties) {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		_, isRequired := required[name]
		form.Fields = append(form.Fields, convertField(name, ref.Value, isRequired))
	}

	if err := model.Decorate(&form, decorators...); err != nil {
		return model.FormModel{}, fmt.Errorf("openapi: decorate %q: %w", operationID, err)
	}
	return form, nil
}

func findOperation(doc *openapi3.T, operationID string) (string, string, *openapi3.Operation) {
	if doc == nil || doc.Paths == nil {
		return "", "", nil
	}
	paths := doc.Paths.Map()
	keys := make([]string, 0, len(paths))
	for key := range paths {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, path := range keys {
		item := paths[path]
		if item == nil {
			continue
		}
		for _, method := range methods {
			op := item.GetOperation(method)
			if op != nil && op.OperationID == operationID {
				return path, method, op
			}
		}
	}
	return "", "", nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/x-www-form-urlencoded", "application/json", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func fieldOrder(extensions map[string]any, properties openapi3.Schemas) []string {
	seen := make(map[string]struct{}, len(properties))
	var order []string
	for _, name := range stringList(extensions[extensionOrder]) {
		if _, ok := properties[name]; !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		order = append(order, name)
	}

	var rest []string
	for name := range properties {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

func convertField(name string, schema *openapi3.Schema, required bool) model.Field {
	field := model.Field{
		Name:         name,
		Type:         model.FieldTypeString,
		InputType:    inputType(schema.Format),
		Required:     required,
		Label:        firstNonEmpty(schema.Title, stringValue(schema.Extensions[extensionLabel])),
		Placeholder:  stringValue(schema.Extensions[extensionPlaceholder]),
		Description:  schema.Description,
		Autocomplete: stringValue(schema.Extensions[extensionAutocomplete]),
	}
	if schema.Type != nil && schema.Type.Is(openapi3.TypeBoolean) {
		field.Type = model.FieldTypeBoolean
		field.InputType = "checkbox"
	}

	if required {
		field.Validations = append(field.Validations, model.ValidationRule{Kind: model.ValidationRuleRequired})
	}
	if schema.MinLength > 0 {
		field.Validations = append(field.Validations, model.ValidationRule{
			Kind:   model.ValidationRuleMinLength,
			Params: map[string]string{"value": strconv.FormatUint(schema.MinLength, 10)},
		})
	}
	if schema.MaxLength != nil {
		field.Validations = append(field.Validations, model.ValidationRule{
			Kind:   model.ValidationRuleMaxLength,
			Params: map[string]string{"value": strconv.FormatUint(*schema.MaxLength, 10)},
		})
	}
	if schema.Pattern != "" {
		field.Validations = append(field.Validations, model.ValidationRule{
			Kind:   model.ValidationRulePattern,
			Params: map[string]string{"pattern": schema.Pattern},
		})
	}

	metadata := stringExtensions(schema.Extensions)
	for _, key := range []string{"label", "placeholder", "autocomplete"} {
		delete(metadata, key)
	}
	if len(metadata) > 0 {
		field.Metadata = metadata
	}
	return field
}

func inputType(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "password":
		return "password"
	case "email":
		return "email"
	default:
		return "text"
	}
}

// stringExtensions collects scalar x-formcheck-* extensions keyed without
// the prefix.
func stringExtensions(extensions map[string]any) map[string]string {
	out := make(map[string]string)
	for key, value := range extensions {
		if !strings.HasPrefix(key, extensionPrefix) {
			continue
		}
		name := strings.TrimPrefix(key, extensionPrefix)
		switch v := value.(type) {
		case string:
			out[name] = v
		case bool, float64, int:
			out[name] = fmt.Sprint(v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func stringValue(value any) string {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func stringList(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	default:
		return nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
