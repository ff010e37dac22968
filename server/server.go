package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/kasuboski/streamportal/config"
	"github.com/kasuboski/streamportal/pkg/availability"
	"github.com/kasuboski/streamportal/pkg/logger"
	"github.com/kasuboski/streamportal/pkg/manager"
	"github.com/kasuboski/streamportal/pkg/pagination"
	"github.com/kasuboski/streamportal/pkg/ratelimit"
	"go.uber.org/zap"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_media_manager.go github.com/kasuboski/streamportal/server MediaManager

// MediaManager is what the api needs from the media manager
type MediaManager interface {
	SearchMovies(ctx context.Context, query, lang string) ([]manager.MovieSummary, error)
	SearchSeries(ctx context.Context, query, lang string) ([]manager.SeriesSummary, error)
	GetMovieDetails(ctx context.Context, id int, lang string) (*manager.MovieDetails, error)
	GetSeriesDetails(ctx context.Context, id int, lang string) (*manager.SeriesDetails, error)
}

type GenericResponse struct {
	Response any `json:"response"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SearchResponse struct {
	Results any              `json:"results"`
	Meta    *pagination.Meta `json:"meta,omitempty"`
}

type DetailsResponse struct {
	Details any `json:"details"`
}

// Server houses all dependencies for the api such as loggers, the media manager and the client rate limiter
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    MediaManager
	limiter    ratelimit.Limiter
	config     config.Server
}

// New creates a new api server
func New(logger *zap.SugaredLogger, manager MediaManager, limiter ratelimit.Limiter, cfg config.Server) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
		limiter:    limiter,
		config:     cfg,
	}
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	_, err = w.Write(b)
	return err
}

// Handler builds the router with its middleware
func (s Server) Handler() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware(), s.RateLimitMiddleware())

	rtr.HandleFunc("/health", s.Health()).Methods(http.MethodGet)
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)
	rtr.HandleFunc("/search", s.Search()).Methods(http.MethodPost)
	rtr.HandleFunc("/details", s.Details()).Methods(http.MethodPost)

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins(s.config.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With"}),
		handlers.ExposedHeaders([]string{processTimeHeader}),
		handlers.AllowCredentials(),
	)(rtr)

	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{s.baseLogger}),
	)(corsHandler)
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		s.baseLogger.Infow("serving...", "port", port, "allowed_origins", s.config.AllowedOrigins)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Health reports the api is up
func (s Server) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.FromCtx(r.Context()).Debug("health check requested")
		writeResponse(w, http.StatusOK, HealthResponse{
			Status:  "healthy",
			Message: "StreamPortal API is running",
		})
	}
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, http.StatusOK, GenericResponse{Response: "ok"})
	}
}

// Search finds movies or series in the catalog. Results can be paged with the page and pageSize query parameters.
func (s Server) Search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var request manager.SearchRequest
		if err := decodeBody(r, &request); err != nil {
			writeError(w, r, err)
			return
		}
		if err := request.Validate(); err != nil {
			writeError(w, r, err)
			return
		}

		page, err := ParsePaginationParams(r)
		if err != nil {
			writeError(w, r, &manager.ValidationError{Field: "page", Message: err.Error()})
			return
		}

		log := logger.FromCtx(ctx, "content_type", request.TypeOfContent, "search_query", request.TextSearch, "language", request.OptionLanguage)
		log.Infow("search request")

		var resp SearchResponse
		switch availability.Kind(request.TypeOfContent) {
		case availability.KindMovie:
			movies, err := s.manager.SearchMovies(ctx, request.TextSearch, request.OptionLanguage)
			if err != nil {
				log.Errorw("search failed", zap.Error(err))
				writeError(w, r, err)
				return
			}
			resp = searchResponse(movies, page)
		default:
			series, err := s.manager.SearchSeries(ctx, request.TextSearch, request.OptionLanguage)
			if err != nil {
				log.Errorw("search failed", zap.Error(err))
				writeError(w, r, err)
				return
			}
			resp = searchResponse(series, page)
		}

		if err := writeResponse(w, http.StatusOK, resp); err != nil {
			log.Errorw("failed to write response", zap.Error(err))
		}
	}
}

func searchResponse[T any](items []T, page pagination.Params) SearchResponse {
	resp := SearchResponse{Results: pagination.Slice(items, page)}
	if page.Enabled() {
		meta := page.BuildMeta(len(items))
		resp.Meta = &meta
	}
	return resp
}

// Details returns the catalog record of a title along with where the mirror streams it
func (s Server) Details() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var request manager.DetailsRequest
		if err := decodeBody(r, &request); err != nil {
			writeError(w, r, err)
			return
		}
		if err := request.Validate(); err != nil {
			writeError(w, r, err)
			return
		}

		ref := request.Ref()
		log := logger.FromCtx(ctx, "content_type", ref.Kind, "content_id", ref.ID, "language", request.OptionLanguage)
		log.Infow("details request")

		var details any
		var err error
		switch ref.Kind {
		case availability.KindMovie:
			details, err = s.manager.GetMovieDetails(ctx, ref.ID, request.OptionLanguage)
		default:
			details, err = s.manager.GetSeriesDetails(ctx, ref.ID, request.OptionLanguage)
		}
		if err != nil {
			log.Errorw("details retrieval failed", zap.Error(err))
			writeError(w, r, withResource(err, ref))
			return
		}

		if err := writeResponse(w, http.StatusOK, DetailsResponse{Details: details}); err != nil {
			log.Errorw("failed to write response", zap.Error(err))
		}
	}
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromCtx(r.Context()).Debugw("invalid request body", zap.Error(err))
		return &manager.ValidationError{Field: "body", Message: "Invalid request body"}
	}
	return nil
}

type recoveryLogger struct {
	log *zap.SugaredLogger
}

func (l recoveryLogger) Println(v ...any) {
	l.log.Errorw("recovered from panic", "panic", fmt.Sprint(v...))
}
