package api

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/oapi-codegen/runtime"
)

//go:generate go tool oapi-codegen -config oapi-codegen.yaml openapi.yaml

// OpenAPISpec is the raw OpenAPI document served at /openapi.yaml.
//
//go:embed openapi.yaml
var OpenAPISpec []byte

// ErrInvalidID is returned when a path identifier is not a positive integer.
var ErrInvalidID = errors.New("invalid id")

// BindPathID decodes a simple-style path parameter into a positive ID.
func BindPathID(name, raw string) (ID, error) {
	var id ID
	err := runtime.BindStyledParameterWithOptions("simple", name, raw, &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidID, name, err)
	}
	if id == 0 {
		return 0, fmt.Errorf("%w: %s must be positive", ErrInvalidID, name)
	}
	return id, nil
}
