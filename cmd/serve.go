package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/keywheel/constants"
	"github.com/jsphweid/keywheel/midi"
	"github.com/jsphweid/keywheel/model"
	"github.com/jsphweid/keywheel/search"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var servePort int

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", constants.GetPort(), "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the search API",
	Long:  `Serves chord search, the circle of fifths and the chord dictionary over HTTP`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(servePort)
	},
}

type server struct {
	engine *search.Engine
	logger *slog.Logger
}

// NewRouter builds the HTTP API around engine. origins are the CORS allowed
// origins, "*" allows any.
func NewRouter(engine *search.Engine, logger *slog.Logger, origins []string) http.Handler {
	s := &server{engine: engine, logger: logger}

	router := mux.NewRouter().StrictSlash(true)
	router.Use(s.logRequests)
	router.HandleFunc("/health", s.handleHealth).Methods("GET")
	router.HandleFunc("/search", s.handleSearch).Methods("POST")
	router.HandleFunc("/keys", s.handleKeys).Methods("GET")
	router.HandleFunc("/keys/{index}", s.handleKey).Methods("GET")
	router.HandleFunc("/dictionary", s.handleDictionary).Methods("GET")
	router.HandleFunc("/chord", s.handleChord).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"X-Request-Id"},
	})
	return c.Handler(router)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		s.logger.Info("request",
			slog.String("request_id", id),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("took", time.Since(start)),
		)
	})
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// headers are already sent
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debug("could not write response", slog.Any("error", err))
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleSearch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxQueryLength)

	var input model.SearchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("could not read request body: %w", err))
		return
	}

	var res model.SearchResult
	switch {
	case len(input.Midi) > 0:
		var err error
		res, err = s.engine.FindMIDI(input.Midi)
		if errors.Is(err, midi.ErrKeyOutOfRange) {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		if err != nil {
			s.logger.Error("midi search failed", slog.Any("error", err))
			s.writeError(w, http.StatusInternalServerError, err)
			return
		}
	case input.Notes != "":
		res = s.engine.Find(input.Notes)
	default:
		s.writeError(w, http.StatusBadRequest, ErrEmptyQuery)
		return
	}

	s.writeJSON(w, http.StatusOK, toSearchResponse(res))
}

func (s *server) handleKeys(w http.ResponseWriter, r *http.Request) {
	keys := s.engine.Circle().Keys()
	res := make([]model.KeySummary, 0, len(keys))
	for _, k := range keys {
		res = append(res, toKeySummary(k))
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *server) handleKey(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("key index must be a number: %w", err))
		return
	}
	k, ok := s.engine.Circle().Key(index)
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Errorf("%w: %v", ErrInvalidKey, index))
		return
	}
	s.writeJSON(w, http.StatusOK, toKeyResponse(s.engine.Circle(), k))
}

func (s *server) handleDictionary(w http.ResponseWriter, r *http.Request) {
	root := r.URL.Query().Get("root")
	if root == "" {
		root = "C"
	}
	if err := validateRoot(root); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toDictionaryResponse(s.engine.Dictionary(), root))
}

// handleChord looks up one quality. A missing symbol is the major triad.
func (s *server) handleChord(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	root := query.Get("root")
	if root == "" {
		root = "C"
	}
	if err := validateRoot(root); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	entry, err := lookupChord(s.engine.Dictionary(), root, query.Get("symbol"))
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	s.writeJSON(w, http.StatusOK, entry)
}

func serve(port int) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      NewRouter(engine, logger, constants.GetAllowedOrigins()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
