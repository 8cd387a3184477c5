package http

import (
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

var registerDocOnce sync.Once

// apiDoc serves the embedded OpenAPI document to the swagger UI.
type apiDoc struct {
	swagger *openapi3.T
}

func (d apiDoc) ReadDoc() string {
	raw, err := d.swagger.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(raw)
}

// registerDoc publishes the spec under swag's default instance name, which
// is what echoSwagger.WrapHandler reads doc.json from.
func registerDoc(swagger *openapi3.T) {
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, apiDoc{swagger: swagger})
	})
}
