package openapi

import (
	"errors"
	"net/http"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

// Media types accepted for request bodies.
const (
	MediaJSON = "application/json"
	MediaForm = "application/x-www-form-urlencoded"
)

// Response describes an HTTP response with a description and body schemas.
type Response struct {
	Desc   string
	Bodies []*openapi3.SchemaRef
}

// Endpoint describes a single API operation for the convenience helpers
// [Get] and [Post].
type Endpoint struct {
	Summary     string
	Description string
	Request     *openapi3.SchemaRef // request body schema
	MediaTypes  []string            // request media types, JSON when empty
	Responses   map[string]Response // keyed by status code, e.g. "200", "4xx"
}

// NewRequestMust is like [NewRequest] but panics on error.
func NewRequestMust(schema *openapi3.SchemaRef, mediaTypes ...string) *openapi3.RequestBodyRef {
	o, err := NewRequest(schema, mediaTypes...)
	if err != nil {
		panic(err)
	}
	return o
}

// NewRequest builds a required request body carrying schema under each media
// type, JSON when none are given.
func NewRequest(schema *openapi3.SchemaRef, mediaTypes ...string) (*openapi3.RequestBodyRef, error) {
	if schema == nil {
		return nil, errors.New("no schema given")
	}
	if len(mediaTypes) == 0 {
		mediaTypes = []string{MediaJSON}
	}
	content := openapi3.Content{}
	for _, mt := range mediaTypes {
		content[mt] = &openapi3.MediaType{Schema: schema}
	}
	return &openapi3.RequestBodyRef{
		Value: &openapi3.RequestBody{
			Required: true,
			Content:  content,
		},
	}, nil
}

// NewResponseMust is like [NewResponse] but panics on error.
func NewResponseMust(vs map[string]Response) *openapi3.Responses {
	o, err := NewResponse(vs)
	if err != nil {
		panic(err)
	}
	return o
}

// NewResponse creates an OpenAPI responses object.
// Map key is status code (e.g. "200", "4xx").
func NewResponse(vs map[string]Response) (*openapi3.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}

	codes := make([]string, 0, len(vs))
	for code := range vs {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	opts := make([]openapi3.NewResponsesOption, 0, len(vs))
	for _, statusCode := range codes {
		desc := vs[statusCode].Desc
		resp := &openapi3.Response{Description: &desc}

		refs := vs[statusCode].Bodies
		switch len(refs) {
		case 0:
		case 1:
			resp.Content = openapi3.Content{MediaJSON: &openapi3.MediaType{Schema: refs[0]}}
		default:
			resp.Content = openapi3.Content{
				MediaJSON: &openapi3.MediaType{
					Schema: &openapi3.SchemaRef{Value: &openapi3.Schema{OneOf: refs}},
				},
			}
		}
		opts = append(opts, openapi3.WithName(statusCode, resp))
	}

	return openapi3.NewResponses(opts...), nil
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// AddPath registers op on doc s at path and method.
func AddPath(path, method string, s *openapi3.T, op *openapi3.Operation) {
	p := s.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}

	switch method {
	case http.MethodGet:
		p.Get = op
	case http.MethodPost:
		p.Post = op
	case http.MethodPut:
		p.Put = op
	case http.MethodPatch:
		p.Patch = op
	case http.MethodDelete:
		p.Delete = op
	}

	s.Paths.Set(path, p)
}

// addEndpoint builds an [openapi3.Operation] from ep and registers it at path+method.
func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) {
	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     ep.Summary,
		Description: ep.Description,
	}

	if ep.Request != nil {
		op.RequestBody = NewRequestMust(ep.Request, ep.MediaTypes...)
	}

	if len(ep.Responses) > 0 {
		op.Responses = NewResponseMust(ep.Responses)
	} else {
		op.Responses = openapi3.NewResponses()
	}

	AddPath(path, method, doc, op)
}

// Get registers a GET endpoint on doc.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPost, operationID, ep)
}
