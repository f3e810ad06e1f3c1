// Package server exposes the product form over HTTP: a snapshot submit
// endpoint, a reactive validate endpoint and the OpenAPI document.
package server

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	v "github.com/Gobd/formvalidation"
	"github.com/Gobd/formvalidation/collect"
	"github.com/Gobd/formvalidation/openapi"
	"github.com/Gobd/formvalidation/product"
	"github.com/Gobd/formvalidation/session"
	"github.com/Gobd/formvalidation/touched"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	json "github.com/goccy/go-json"
)

const (
	maxBodyBytes   = 1 << 20
	mediaMultipart = "multipart/form-data"
)

// Options configures the handler.
type Options struct {
	// Submit is the schema for POST /products. Defaults to the snapshot
	// product schema.
	Submit *v.Schema
	// Live is the schema for POST /products/validate. Defaults to the
	// reactive product schema.
	Live *v.Schema
	// Submitter receives valid products. Defaults to logging them.
	Submitter session.Submitter
	Logger    *slog.Logger
}

type server struct {
	submitSchema v.Schema
	liveSchema   v.Schema
	submitter    session.Submitter
	logger       *slog.Logger
}

// New returns the HTTP handler.
func New(opts Options) (http.Handler, error) {
	s := &server{
		submitSchema: product.Schema(product.Snapshot),
		liveSchema:   product.Schema(product.Reactive),
		submitter:    opts.Submitter,
		logger:       opts.Logger,
	}
	if opts.Submit != nil {
		s.submitSchema = *opts.Submit
	}
	if opts.Live != nil {
		s.liveSchema = *opts.Live
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.submitter == nil {
		s.submitter = product.LogSubmitter{Logger: s.logger}
	}

	docs, err := openapi.DocsHandler(s.document())
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Post("/products", s.createProduct)
	r.Post("/products/validate", s.validateProduct)
	r.Method(http.MethodGet, "/openapi.json", docs)
	return r, nil
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.InfoContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

type (
	productResponse struct {
		Product product.Product `json:"product"`
	}

	errorsResponse struct {
		Errors v.ErrorTree `json:"errors"`
	}

	messageResponse struct {
		Error string `json:"error"`
	}

	validateRequest struct {
		Values  v.Candidate `json:"values"`
		Touched []string    `json:"touched"`
	}

	validateResponse struct {
		Valid     bool        `json:"valid"`
		Errors    v.ErrorTree `json:"errors"`
		Visible   v.ErrorTree `json:"visible"`
		Displayed []string    `json:"displayed"`
	}
)

// createProduct reads every value once, the way a snapshot form does on
// submit, and shows every error.
func (s *server) createProduct(w http.ResponseWriter, r *http.Request) {
	src, err := s.source(w, r)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, errUnsupportedMedia) {
			status = http.StatusUnsupportedMediaType
		}
		s.writeJSON(w, r, status, messageResponse{Error: err.Error()})
		return
	}

	res, err := session.Submit(r.Context(), s.submitSchema, src, s.submitter)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "submit product", slog.Any("error", err))
		s.writeJSON(w, r, http.StatusInternalServerError, messageResponse{Error: "submission failed"})
		return
	}
	if !res.OK() {
		s.writeJSON(w, r, http.StatusUnprocessableEntity, errorsResponse{Errors: touched.Visible(res.Errors, touched.All)})
		return
	}

	p, err := product.Decode(res.Record)
	if err != nil {
		s.writeJSON(w, r, http.StatusInternalServerError, messageResponse{Error: err.Error()})
		return
	}
	s.writeJSON(w, r, http.StatusCreated, productResponse{Product: p})
}

// validateProduct is one reactive round trip: the client sends its current
// values and touched fields, and gets back the full tree plus the part of it
// to display.
func (s *server) validateProduct(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.writeJSON(w, r, http.StatusBadRequest, messageResponse{Error: "invalid JSON body"})
		return
	}

	res := s.liveSchema.Validate(collect.Collect(s.liveSchema, collect.Map(req.Values)))
	policy := touched.New(req.Touched...)
	displayed := touched.Displayed(res.Errors, policy)
	if displayed == nil {
		displayed = []string{}
	}
	s.writeJSON(w, r, http.StatusOK, validateResponse{
		Valid:     res.OK(),
		Errors:    res.Errors,
		Visible:   touched.Visible(res.Errors, policy),
		Displayed: displayed,
	})
}

var errUnsupportedMedia = errors.New("unsupported content type")

func (s *server) source(w http.ResponseWriter, r *http.Request) (collect.Source, error) {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		mt = openapi.MediaForm
	}
	switch mt {
	case openapi.MediaJSON:
		var c v.Candidate
		if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&c); err != nil {
			return nil, errors.New("invalid JSON body")
		}
		return collect.Map(c), nil
	case openapi.MediaForm:
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			return nil, errors.New("invalid form body")
		}
		return collect.Form(r.PostForm), nil
	case mediaMultipart:
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return nil, errors.New("invalid form body")
		}
		return collect.Form(r.PostForm), nil
	}
	return nil, errUnsupportedMedia
}

func (s *server) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "encode response", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", openapi.MediaJSON)
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func (s *server) document() *openapi3.T {
	doc := openapi.DocBase("productform", "Validates product form submissions", "1.0.0")
	message := openapi3.NewSchemaRef("", openapi3.NewObjectSchema().WithProperty("error", openapi3.NewStringSchema()))

	openapi.Post(doc, "/products", "createProduct", openapi.Endpoint{
		Summary:    "Submit a product form",
		Request:    openapi.NewCandidateSchemaRef(s.submitSchema),
		MediaTypes: []string{openapi.MediaForm, openapi.MediaJSON},
		Responses: map[string]openapi.Response{
			"201": {Desc: "Product accepted", Bodies: []*openapi3.SchemaRef{wrap("product", openapi.NewSchemaRefForSchema(s.submitSchema))}},
			"400": {Desc: "Undecodable body", Bodies: []*openapi3.SchemaRef{message}},
			"422": {Desc: "Validation failed", Bodies: []*openapi3.SchemaRef{openapi.NewErrorSchemaRef(s.submitSchema)}},
			"500": {Desc: "Submission failed", Bodies: []*openapi3.SchemaRef{message}},
		},
	})

	tree := v.NewErrorTreeSchemaRef(s.liveSchema)
	live := openapi3.NewObjectSchema().
		WithProperty("valid", openapi3.NewBoolSchema()).
		WithProperty("displayed", openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema()))
	live.Properties["errors"] = tree
	live.Properties["visible"] = tree
	request := openapi3.NewObjectSchema().
		WithProperty("touched", openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema()))
	request.Properties["values"] = openapi.NewCandidateSchemaRef(s.liveSchema)

	openapi.Post(doc, "/products/validate", "validateProduct", openapi.Endpoint{
		Summary: "Validate current form values",
		Request: openapi3.NewSchemaRef("", request),
		Responses: map[string]openapi.Response{
			"200": {Desc: "Validation result", Bodies: []*openapi3.SchemaRef{openapi3.NewSchemaRef("", live)}},
			"400": {Desc: "Undecodable body", Bodies: []*openapi3.SchemaRef{message}},
		},
	})
	return doc
}

func wrap(key string, ref *openapi3.SchemaRef) *openapi3.SchemaRef {
	obj := openapi3.NewObjectSchema()
	obj.Properties = openapi3.Schemas{key: ref}
	obj.Required = []string{key}
	return openapi3.NewSchemaRef("", obj)
}
