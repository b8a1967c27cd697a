package http

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/blogsmith"
)

// ShutdownTimeout is the time given for outstanding requests to finish
// before the server shuts down.
const ShutdownTimeout = 5 * time.Second

// maxRequestBytes caps request bodies.
const maxRequestBytes = 1 << 20

// Server exposes a blogsmith.Pipeline as a JSON API.
type Server struct {
	ln     net.Listener
	server *http.Server
	mux    *http.ServeMux

	// Bind address for the server's listener.
	Addr string

	Pipeline blogsmith.Pipeline
}

// NewServer returns a new Server serving p.
func NewServer(p blogsmith.Pipeline) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		Pipeline: p,
	}
	s.server = &http.Server{
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.mux.HandleFunc("POST /api/blog-generator", s.handleGenerate)
	s.mux.HandleFunc("POST /api/scrape", s.handleScrape)
	s.mux.HandleFunc("POST /api/generate-images", s.handleGenerateImages)
	s.mux.HandleFunc("POST /api/generate-blogs", s.handleGenerateBlogs)

	return s
}

// ServeHTTP routes requests to the API handlers.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Open begins listening on Addr and serving in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go func() { _ = s.server.Serve(s.ln) }()
	return nil
}

// URL returns the local base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

type urlRequest struct {
	URL string `json:"url"`
}

type scrapeResponse struct {
	Success bool                  `json:"success"`
	Data    *blogsmith.SourcePage `json:"data"`
}

type imagesRequest struct {
	ImagePrompts []string `json:"imagePrompts"`
}

type imagesResponse struct {
	Success bool                        `json:"success"`
	Images  []blogsmith.Illustration    `json:"images"`
	Stats   blogsmith.IllustrationStats `json:"stats"`
}

type blogsRequest struct {
	SourceContent *blogsmith.SourcePage `json:"sourceContent"`
}

type blogsResponse struct {
	Success  bool                `json:"success"`
	Blogs    []blogsmith.Article `json:"blogs"`
	Analysis blogsmith.Analysis  `json:"analysis"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req urlRequest
	if !decodeURLRequest(w, r, &req) {
		return
	}

	out := s.Pipeline.Generate(r.Context(), req.URL, nil)
	status := http.StatusOK
	if !out.Success {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, out)
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req urlRequest
	if !decodeURLRequest(w, r, &req) {
		return
	}

	page, err := s.Pipeline.Scrape(r.Context(), req.URL)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scrapeResponse{Success: true, Data: page})
}

func (s *Server) handleGenerateImages(w http.ResponseWriter, r *http.Request) {
	var req imagesRequest
	if err := decode(w, r, &req); err != nil || req.ImagePrompts == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Image prompts array is required"})
		return
	}

	batch := s.Pipeline.Illustrate(r.Context(), req.ImagePrompts)
	writeJSON(w, http.StatusOK, imagesResponse{
		Success: true,
		Images:  batch.Images,
		Stats:   batch.Stats,
	})
}

func (s *Server) handleGenerateBlogs(w http.ResponseWriter, r *http.Request) {
	var req blogsRequest
	if err := decode(w, r, &req); err != nil || req.SourceContent == nil || req.SourceContent.Body == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Source content is required"})
		return
	}

	batch, err := s.Pipeline.Draft(r.Context(), req.SourceContent)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, blogsResponse{
		Success:  true,
		Blogs:    batch.Articles,
		Analysis: batch.Analysis,
	})
}

// decodeURLRequest decodes a {url} body and writes a 400 response when the
// URL is missing or malformed. It reports whether the request may proceed.
func decodeURLRequest(w http.ResponseWriter, r *http.Request, req *urlRequest) bool {
	if err := decode(w, r, req); err != nil || req.URL == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "URL is required"})
		return false
	}
	if err := blogsmith.ValidateURL(req.URL); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid URL format"})
		return false
	}
	return true
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(v)
}

// writeError writes err with a status derived from its code.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if blogsmith.ErrorCode(err) == blogsmith.EINVALID {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorResponse{Error: blogsmith.ErrorMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
