// Package render encodes host-shaped configuration documents.
package render

import (
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	ferrors "github.com/kbchulan/clblogs/internal/foundation/errors"
	"github.com/kbchulan/clblogs/internal/foundation/normalization"
)

// Format is an output encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

var formatNormalizer = normalization.NewEnumNormalizer("output format", map[string]Format{
	"yaml": FormatYAML,
	"yml":  FormatYAML,
	"json": FormatJSON,
	"toml": FormatTOML,
}, FormatYAML)

// ParseFormat normalises a user supplied format name. An empty name selects
// YAML.
func ParseFormat(raw string) (Format, error) {
	if raw == "" {
		return FormatYAML, nil
	}
	f, err := formatNormalizer.NormalizeWithValidation(raw)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryValidation, "unsupported output format").
			WithContext("format", raw).Build()
	}
	return f, nil
}

// Formats lists the accepted format names.
func Formats() []string { return formatNormalizer.ValidValues() }

// Encode writes doc to w. Plain maps are written with sorted keys and *Map
// values in insertion order. TOML requires doc to be a table.
func Encode(w io.Writer, format Format, doc any) error {
	var err error
	switch format {
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err == nil {
			err = enc.Close()
		}
	case FormatJSON:
		stream := jsonAPI.BorrowStream(w)
		writeJSON(stream, doc)
		stream.WriteRaw("\n")
		if err = stream.Error; err == nil {
			err = stream.Flush()
		}
		jsonAPI.ReturnStream(stream)
	case FormatTOML:
		if _, ok := doc.([]any); ok {
			return ferrors.ValidationError("toml output needs a table at the top level").
				WithContext("format", string(format)).Build()
		}
		err = toml.NewEncoder(w).SetIndentTables(true).Encode(tomlValue(doc))
	default:
		return ferrors.ValidationError("unsupported output format").WithContext("format", string(format)).Build()
	}
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "encode document").
			WithContext("format", string(format)).Build()
	}
	return nil
}
