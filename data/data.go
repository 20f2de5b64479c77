// Package data embeds the default catalog and destination table together with
// the JSON schemas both files are validated against at startup.
package data

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed categories.json
var Categories []byte

//go:embed categories.schema.json
var CategoriesSchema []byte

//go:embed destinations.json
var Destinations []byte

//go:embed destinations.schema.json
var DestinationsSchema []byte

// Validate checks a JSON document against a JSON schema.
func Validate(schema, document []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("document does not match schema: %s", strings.Join(errs, "; "))
	}
	return nil
}
