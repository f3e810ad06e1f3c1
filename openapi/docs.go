package openapi

import (
	"context"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// DocsHandler returns an http.Handler serving the given OpenAPI document as
// JSON. The document is validated and encoded once, up front.
//
//	r.Handle("/openapi.json", openapi.DocsHandlerMust(doc))
func DocsHandler(s *openapi3.T) (http.Handler, error) {
	if err := s.Validate(context.Background()); err != nil {
		return nil, err
	}

	specJSON, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}

	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", MediaJSON)
		_, _ = w.Write(specJSON)
	}), nil
}

// DocsHandlerMust is like DocsHandler but panics on error.
func DocsHandlerMust(s *openapi3.T) http.Handler {
	h, err := DocsHandler(s)
	if err != nil {
		panic(err)
	}
	return h
}
