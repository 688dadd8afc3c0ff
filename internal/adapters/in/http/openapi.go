package http

import (
	"context"
	"embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi/*.yaml
var openAPIFiles embed.FS

// OpenAPIDocument returns the raw embedded document for a service
// ("order" or "user").
func OpenAPIDocument(service string) ([]byte, error) {
	data, err := openAPIFiles.ReadFile("openapi/" + service + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("no openapi document for %q: %w", service, err)
	}
	return data, nil
}

// LoadOpenAPI parses and validates the embedded document for a service.
func LoadOpenAPI(ctx context.Context, service string) (*openapi3.T, error) {
	data, err := OpenAPIDocument(service)
	if err != nil {
		return nil, err
	}

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}
