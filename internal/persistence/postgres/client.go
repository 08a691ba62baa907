package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lib/pq"

	"jetfleet-backoffice/internal/logger"
	"jetfleet-backoffice/internal/persistence"
)

// Client implements the persistence contract directly against PostgreSQL
// for self-hosted deployments. It is column-name driven so it stays
// table-generic like the hosted REST surface.
type Client struct {
	db *sql.DB
}

func NewClient(db *sql.DB) *Client {
	return &Client{db: db}
}

func (c *Client) List(ctx context.Context, table string, opts ...persistence.ListOption) ([]persistence.Record, error) {
	options := persistence.ListOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	query := "SELECT * FROM " + pq.QuoteIdentifier(table)
	if options.OrderColumn != "" {
		dir := "ASC"
		if options.OrderDescending {
			dir = "DESC"
		}
		query += " ORDER BY " + pq.QuoteIdentifier(options.OrderColumn) + " " + dir
	}

	logger.PersistenceCall("list", table)
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		err = translateError(err)
		logger.PersistenceResult("list", table, err)
		return nil, err
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	logger.PersistenceResult("list", table, err, "count", len(records))
	return records, err
}

func (c *Client) Insert(ctx context.Context, table string, rec persistence.Record) (persistence.Record, error) {
	columns := sortedKeys(rec)
	placeholders := make([]string, len(columns))
	args := make([]any, len(columns))
	quoted := make([]string, len(columns))
	for i, col := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = rec[col]
		quoted[i] = pq.QuoteIdentifier(col)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		pq.QuoteIdentifier(table),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
	)

	logger.PersistenceCall("insert", table)
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		err = translateError(err)
		logger.PersistenceResult("insert", table, err)
		return nil, err
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		logger.PersistenceResult("insert", table, err)
		return nil, err
	}
	if len(records) == 0 {
		logger.PersistenceResult("insert", table, nil, "echoed", false)
		return nil, nil
	}
	logger.PersistenceResult("insert", table, nil, "echoed", true)
	return records[0], nil
}

func (c *Client) Update(ctx context.Context, table string, rec persistence.Record, id string) error {
	columns := sortedKeys(rec)
	assignments := make([]string, len(columns))
	args := make([]any, 0, len(columns)+1)
	for i, col := range columns {
		assignments[i] = fmt.Sprintf("%s = $%d", pq.QuoteIdentifier(col), i+1)
		args = append(args, rec[col])
	}
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d",
		pq.QuoteIdentifier(table),
		strings.Join(assignments, ", "),
		len(columns)+1,
	)

	logger.PersistenceCall("update", table, "id", id)
	_, err := c.db.ExecContext(ctx, query, args...)
	err = translateError(err)
	logger.PersistenceResult("update", table, err, "id", id)
	return err
}

func (c *Client) Delete(ctx context.Context, table string, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", pq.QuoteIdentifier(table))

	logger.PersistenceCall("delete", table, "id", id)
	_, err := c.db.ExecContext(ctx, query, id)
	err = translateError(err)
	logger.PersistenceResult("delete", table, err, "id", id)
	return err
}

func (c *Client) GetOne(ctx context.Context, table string, id string) (persistence.Record, error) {
	query := fmt.Sprintf("SELECT * FROM %s WHERE id = $1", pq.QuoteIdentifier(table))

	logger.PersistenceCall("getOne", table, "id", id)
	rows, err := c.db.QueryContext(ctx, query, id)
	if err != nil {
		err = translateError(err)
		logger.PersistenceResult("getOne", table, err, "id", id)
		return nil, err
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		logger.PersistenceResult("getOne", table, err, "id", id)
		return nil, err
	}
	if len(records) == 0 {
		logger.PersistenceResult("getOne", table, persistence.ErrNotFound, "id", id)
		return nil, persistence.ErrNotFound
	}
	logger.PersistenceResult("getOne", table, nil, "id", id)
	return records[0], nil
}

// scanRecords builds loosely-typed records from whatever columns the
// table happens to have.
func scanRecords(rows *sql.Rows) ([]persistence.Record, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var records []persistence.Record
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		rec := persistence.Record{}
		for i, col := range columns {
			switch v := values[i].(type) {
			case []byte:
				rec[col] = string(v)
			default:
				rec[col] = v
			}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func sortedKeys(rec persistence.Record) []string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// translateError maps driver errors onto the persistence sentinels.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "42P01" { // undefined_table
		return persistence.ErrResourceMissing
	}
	if errors.Is(err, sql.ErrNoRows) {
		return persistence.ErrNotFound
	}
	return err
}
