package storage

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/XJIeI5/infixcalc/internal/calcerr"
	"github.com/XJIeI5/infixcalc/internal/calculator"
	datastructs "github.com/XJIeI5/infixcalc/internal/datastructs"
	"github.com/XJIeI5/infixcalc/internal/evaluator"
)

const (
	defaultListLimit = 20
	maxListLimit     = 500
)

type exprRequest struct {
	Value string `json:"expr"`
}

type evalResponse struct {
	Expr    string `json:"expr"`
	Postfix string `json:"postfix"`
	Result  string `json:"result"`
}

type errorResponse struct {
	Error    string `json:"error"`
	Kind     string `json:"kind,omitempty"`
	Stage    string `json:"stage,omitempty"`
	Symbol   string `json:"symbol,omitempty"`
	Position int    `json:"position,omitempty"`
}

func (s *storage) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	_expr, ok := decodeExpr(w, r)
	if !ok {
		return
	}

	postfix, err := s.calc.Postfix(_expr.Value)
	if err != nil {
		writeCalcError(w, err)
		return
	}
	res, err := evaluator.Evaluate(postfix)
	if err != nil {
		writeCalcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, evalResponse{
		Expr:    _expr.Value,
		Postfix: postfix.String(),
		Result:  calculator.FormatResult(res),
	})
}

func (s *storage) handleAddExpression(w http.ResponseWriter, r *http.Request) {
	_expr, ok := decodeExpr(w, r)
	if !ok {
		return
	}

	parsedExpr, err := s.calc.Postfix(_expr.Value)
	if err != nil {
		writeCalcError(w, err)
		return
	}
	postfix := parsedExpr.String()

	id, created, err := storeExpressionState(r.Context(), s.db, stateInProgress, _expr.Value, postfix)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if !created {
		s.logger.Debug("expression already stored", "id", id)
		writeJSON(w, http.StatusOK, map[string]string{"id": id})
		return
	}

	if err := s.exprQueue.Enqueue(expr{id: id, postfix: postfix}); err != nil {
		// a rejected submission leaves no row behind
		if derr := deleteExpression(r.Context(), s.db, id); derr != nil {
			s.logger.Error("failed to drop unqueued expression", "id", id, "error", derr)
		}
		status := http.StatusInternalServerError
		if errors.Is(err, datastructs.ErrQueueFull) {
			status = http.StatusServiceUnavailable
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"id": id})
}

func (s *storage) handleGetResult(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing id"))
		return
	}

	st, err := getExpressionState(r.Context(), s.db, id)
	if errors.Is(err, errNoExpression) {
		writeError(w, http.StatusNotFound, errors.New("no expr with id "+id))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *storage) handleListExpressions(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, errors.New("limit must be a positive number"))
			return
		}
		limit = min(n, maxListLimit)
	}

	states, err := listExpressions(r.Context(), s.db, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, states)
}

func decodeExpr(w http.ResponseWriter, r *http.Request) (exprRequest, bool) {
	var _expr exprRequest
	if t := r.Header.Get("Content-Type"); t != "application/json" {
		writeError(w, http.StatusBadRequest, errors.New("content type must be application/json"))
		return _expr, false
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&_expr); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return _expr, false
	}
	return _expr, true
}

func writeCalcError(w http.ResponseWriter, err error) {
	var calcErr *calcerr.Error
	if !errors.As(err, &calcErr) {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:    calcErr.Error(),
		Kind:     calcErr.Kind.String(),
		Stage:    string(calcErr.Stage),
		Symbol:   calcErr.Symbol,
		Position: calcErr.Position,
	})
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
