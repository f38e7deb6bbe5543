package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

var errNoExpression = errors.New("no such expression")

// Open connects to the sqlite database at dsn and creates the tables.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err := createTables(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	const (
		expressionsTable = `
		CREATE TABLE IF NOT EXISTS expressions(
			id TEXT PRIMARY KEY,
			hash INTEGER NOT NULL,
			expression TEXT NOT NULL,
			postfixExpression TEXT NOT NULL,
			status TEXT NOT NULL,
			result TEXT NOT NULL DEFAULT '',
			error TEXT NOT NULL DEFAULT '',
			createdAt INTEGER NOT NULL
		);`

		hashIndex = `
		CREATE INDEX IF NOT EXISTS expressions_hash ON expressions(hash);`

		postfixIndex = `
		CREATE UNIQUE INDEX IF NOT EXISTS expressions_postfix ON expressions(postfixExpression);`
	)

	if _, err := db.ExecContext(ctx, expressionsTable); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, hashIndex); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, postfixIndex); err != nil {
		return err
	}
	return nil
}

// storeExpressionState inserts a new expression unless one with the same
// postfix form exists; created reports which id was returned.
func storeExpressionState(ctx context.Context, db *sql.DB, status state, infix string, _expr string) (id string, created bool, err error) {
	var q string = `
	INSERT INTO expressions (id, status, hash, expression, postfixExpression, createdAt) VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT(postfixExpression) DO NOTHING
	`

	id = uuid.NewString()
	res, err := db.ExecContext(ctx, q, id, status, getHash(_expr), infix, _expr, time.Now().UnixNano())
	if err != nil {
		return "", false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return "", false, err
	}
	if n == 1 {
		return id, true, nil
	}

	id, err = checkExpressionExists(ctx, db, _expr)
	if err != nil {
		return "", false, err
	}
	return id, false, nil
}

func deleteExpression(ctx context.Context, db *sql.DB, id string) error {
	var q string = `
	DELETE FROM expressions WHERE id = $1`
	_, err := db.ExecContext(ctx, q, id)
	return err
}

func updateExpressionState(ctx context.Context, db *sql.DB, id string, status state, result, errMsg string) error {
	var q string = `
	UPDATE expressions SET status = $1, result = $2, error = $3 WHERE id = $4
	`

	_, err := db.ExecContext(ctx, q, status, result, errMsg, id)
	return err
}

// checkExpressionExists returns the id of an earlier submission with the
// same postfix form.
func checkExpressionExists(ctx context.Context, db *sql.DB, _expr string) (string, error) {
	var q string = `
	SELECT id FROM expressions WHERE hash = $1 AND postfixExpression = $2 LIMIT 1
	`

	var id string
	err := db.QueryRowContext(ctx, q, getHash(_expr), _expr).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", errNoExpression
	}
	return id, err
}

func getExpressionState(ctx context.Context, db *sql.DB, id string) (expressionState, error) {
	var q string = `
	SELECT id, expression, postfixExpression, status, result, error, createdAt FROM expressions WHERE id = $1`

	var st expressionState
	err := db.QueryRowContext(ctx, q, id).Scan(&st.ID, &st.Expr, &st.Postfix, &st.State, &st.Result, &st.Error, &st.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return expressionState{}, errNoExpression
	}
	if err != nil {
		return expressionState{}, err
	}
	return st, nil
}

func listExpressions(ctx context.Context, db *sql.DB, limit int) ([]expressionState, error) {
	var q string = `
	SELECT id, expression, postfixExpression, status, result, error, createdAt FROM expressions
	ORDER BY createdAt DESC LIMIT $1
	`
	rows, err := db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]expressionState, 0)
	for rows.Next() {
		var st expressionState
		if err := rows.Scan(&st.ID, &st.Expr, &st.Postfix, &st.State, &st.Result, &st.Error, &st.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, st)
	}
	return res, rows.Err()
}
