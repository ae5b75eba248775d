// Package openapi builds a model.FormModel from an OpenAPI 3 document. The
// operation's request body schema supplies the fields; formcheck specific
// presentation data (labels, placeholders, field order) is read from
// `x-formcheck-*` extensions. kin-openapi stays behind this package so
// renderers and handlers only see the model types.
package openapi
