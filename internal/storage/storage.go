package storage

import (
	"context"
	"crypto/sha1"
	"database/sql"
	"encoding/binary"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/XJIeI5/infixcalc/internal/calculator"
	datastructs "github.com/XJIeI5/infixcalc/internal/datastructs"
	"github.com/gorilla/mux"
)

type storage struct {
	router *mux.Router
	db     *sql.DB
	calc   *calculator.Calculator
	logger *slog.Logger

	workers   int
	exprQueue *datastructs.Queue[expr]
}

type Option func(*storage)

func WithCalculator(c *calculator.Calculator) Option {
	return func(s *storage) { s.calc = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *storage) { s.logger = l }
}

func WithWorkers(n int) Option {
	return func(s *storage) { s.workers = n }
}

func WithQueueSize(n int) Option {
	return func(s *storage) { s.exprQueue = datastructs.NewQueue[expr](n) }
}

// newStorage wires the routes and starts the calculation workers, which run
// until ctx is cancelled.
func newStorage(ctx context.Context, db *sql.DB, opts ...Option) *storage {
	s := &storage{
		db:        db,
		calc:      calculator.New(),
		logger:    slog.Default(),
		workers:   1,
		exprQueue: datastructs.NewQueue[expr](64),
	}
	for _, opt := range opts {
		opt(s)
	}

	// background processes
	for i := 0; i < s.workers; i++ {
		go s.calcExpressions(ctx)
	}

	r := mux.NewRouter()
	r.Use(requestLogger(s.logger))
	// expr handle
	r.HandleFunc("/eval", s.handleEvaluate).Methods("POST")
	r.HandleFunc("/add_expr", s.handleAddExpression).Methods("POST")
	r.HandleFunc("/get_result", s.handleGetResult).Methods("GET")
	r.HandleFunc("/expressions", s.handleListExpressions).Methods("GET")
	// service handle
	r.HandleFunc("/health", s.handleHealth).Methods("GET")

	s.router = r

	return s
}

func (s *storage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *storage) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.PingContext(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.Write([]byte("ok"))
}

func GetServer(ctx context.Context, addr string, port int, db *sql.DB, opts ...Option) *http.Server {
	var _addr string
	if strings.Contains(addr, "localhost") || strings.Contains(addr, "127.0.0.1") {
		_addr = fmt.Sprintf(":%d", port)
	} else {
		_addr = fmt.Sprintf("%s:%d", strings.TrimPrefix(addr, "http://"), port)
	}
	return &http.Server{
		Addr:    _addr,
		Handler: newStorage(ctx, db, opts...),
	}
}

type state string
type exprHash int64

func getHash(line string) exprHash {
	h := sha1.New()
	h.Write([]byte(line))
	return exprHash(binary.BigEndian.Uint32(h.Sum(nil)))
}

const (
	stateError      state = "error"
	stateInProgress state = "in progress"
	stateOK         state = "ok"
)

type expr struct {
	id      string
	postfix string
}

type expressionState struct {
	ID        string `json:"id"`
	Expr      string `json:"expr"`
	Postfix   string `json:"postfix"`
	State     state  `json:"state"`
	Result    string `json:"result,omitempty"`
	Error     string `json:"error,omitempty"`
	CreatedAt int64  `json:"created_at"`
}
