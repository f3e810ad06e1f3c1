// Package openapi assembles OpenAPI 3 documents for endpoints that accept
// form candidates and answer with validated records or error trees built by
// [formvalidation].
//
// Use [DocBase] to create a base document, register endpoints with [Get] or
// [Post], and serve the document with [DocsHandlerMust]:
//
//	doc := openapi.DocBase("products", "Product form API", "1.0")
//	openapi.Post(doc, "/products", "createProduct", openapi.Endpoint{
//	    Request:    openapi.NewCandidateSchemaRef(schema),
//	    MediaTypes: []string{openapi.MediaForm, openapi.MediaJSON},
//	    Responses: map[string]openapi.Response{
//	        "201": {Desc: "Created", Bodies: []*openapi3.SchemaRef{openapi.NewSchemaRefForSchema(schema)}},
//	        "422": {Desc: "Invalid", Bodies: []*openapi3.SchemaRef{openapi.NewErrorSchemaRef(schema)}},
//	    },
//	})
//	http.Handle("/openapi.json", openapi.DocsHandlerMust(doc))
package openapi
