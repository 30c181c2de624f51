// Package server exposes the renderers over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"log/slog"
	"net/http"
	"strings"

	"github.com/benoitkugler/svgscene/svgpdf"
	"github.com/benoitkugler/svgscene/svgraster"
	"github.com/benoitkugler/svgscene/svgscene"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const requestIDHeader = "X-Request-ID"

type ctxKey struct{}

// Options are the rendering defaults, overridable per request
// for the error mode.
type Options struct {
	ErrorMode    svgscene.ErrorMode
	StrokeWidth  float64
	Background   color.RGBA
	MaxBodyBytes int64
	MaxPixels    int64 // bound on raster canvases; 0 means unbounded
}

type Handler struct {
	opts Options
}

func NewHandler(opts Options) *Handler {
	return &Handler{opts: opts}
}

// NewRouter returns the routes of the service.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestID)
	r.HandleFunc("/healthz", h.Health).Methods("GET")
	r.HandleFunc("/render", h.Render).Methods("POST")
	return r
}

// requestID tags each request with an id, echoed in the
// response header and the logs.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		logger := slog.Default().With("request_id", id)
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, logger)))
	})
}

func loggerFrom(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// Render reads an SVG document from the body and answers with
// the rendered image. Query parameters: format (png, bmp, tiff, pdf)
// and mode (ignore, warn, strict).
func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r.Context())
	if h.opts.MaxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes)
	}

	query := r.URL.Query()
	mode := h.opts.ErrorMode
	if s := query.Get("mode"); s != "" {
		var err error
		if mode, err = svgscene.ParseErrorMode(s); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	format := strings.ToLower(query.Get("format"))
	var rasterFormat svgraster.Format
	if format != "pdf" {
		var err error
		if rasterFormat, err = svgraster.ParseFormat(format); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	doc, err := svgscene.ReadDocumentStreamLogger(r.Body, mode, logger)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "request too large", http.StatusRequestEntityTooLarge)
			return
		}
		logger.Info("invalid document", "error", err)
		http.Error(w, "invalid document: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	var out bytes.Buffer
	contentType, err := h.render(doc, format, rasterFormat, &out)
	if err != nil {
		if errors.Is(err, svgraster.ErrEmptyCanvas) || errors.Is(err, svgpdf.ErrEmptyCanvas) {
			http.Error(w, "empty document", http.StatusUnprocessableEntity)
			return
		}
		if errors.Is(err, svgraster.ErrCanvasTooLarge) {
			logger.Info("canvas too large", "error", err)
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		logger.Error("render document", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	logger.Info("rendered document", "format", format, "shapes", len(doc.Shapes), "bytes", out.Len())
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(out.Bytes())
}

// render encodes the document in `out` and returns its MIME type.
func (h *Handler) render(doc *svgscene.Document, format string, rasterFormat svgraster.Format, out *bytes.Buffer) (string, error) {
	if format == "pdf" {
		err := svgpdf.RenderDocument(doc, out, svgpdf.Options{
			StrokeWidth: h.opts.StrokeWidth,
			Background:  h.opts.Background,
			Compress:    true,
		})
		return "application/pdf", err
	}
	img, err := svgraster.RasterDocument(doc, svgraster.Options{
		StrokeWidth: h.opts.StrokeWidth,
		Background:  h.opts.Background,
		MaxPixels:   h.opts.MaxPixels,
	})
	if err != nil {
		return "", err
	}
	return rasterFormat.ContentType(), svgraster.Encode(out, img, rasterFormat)
}
