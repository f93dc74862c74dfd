package transform

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/descriptor.schema.json
var descriptorSchema []byte

var (
	validate     = validator.New()
	schemaOnce   sync.Once
	schemaLoaded *gojsonschema.Schema
	schemaErr    error
)

// Validate checks ranges and enumerations of a typed descriptor.
func (d Descriptor) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("validate descriptor: %w", err)
	}
	return nil
}

// ValidateOverlay checks a single overlay item.
func ValidateOverlay(o Overlay) error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("validate overlay: %w", err)
	}
	return nil
}

// SchemaError lists every JSON Schema violation of a document.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	return "descriptor does not match schema: " + strings.Join(e.Problems, "; ")
}

// ValidateDocument checks a raw descriptor document against the embedded
// JSON Schema. Range checks on the decoded value are done by Validate.
func ValidateDocument(raw []byte) error {
	schemaOnce.Do(func() {
		schemaLoaded, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(descriptorSchema))
	})
	if schemaErr != nil {
		return fmt.Errorf("load descriptor schema: %w", schemaErr)
	}

	result, err := schemaLoaded.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("validate descriptor document: %w", err)
	}
	if !result.Valid() {
		se := &SchemaError{}
		for _, e := range result.Errors() {
			se.Problems = append(se.Problems, e.String())
		}
		return se
	}
	return nil
}

// IsSchemaError reports whether err came from schema validation.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
