package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/revelaction/vclause/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type RowStore struct {
	pool *sqlitex.Pool
}

var _ storage.RowWriter = (*RowStore)(nil)
var _ storage.RowReader = (*RowStore)(nil)

func NewRowStore(pool *sqlitex.Pool) *RowStore {
	return &RowStore{pool: pool}
}

func (h *RowStore) CreateRun(run storage.Run) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	headers, err := json.Marshal(run.Headers)
	if err != nil {
		return err
	}

	err = sqlitex.Execute(conn, "INSERT INTO runs (id, corpus, headers, created) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
		Args: []any{run.Id, run.Corpus, string(headers), run.Created.UTC().Format(time.RFC3339Nano)},
	})
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	return nil
}

// WriteRows inserts the rows of a run in one transaction.
func (h *RowStore) WriteRows(runId string, rows []storage.Row) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	for _, row := range rows {
		vals, marshalErr := json.Marshal(row.Values)
		if marshalErr != nil {
			return marshalErr
		}

		err = sqlitex.Execute(conn, "INSERT INTO verb_rows (run_id, doc_id, sentence_id, verb_index, vals) VALUES (?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []any{runId, row.DocId, row.SentenceId, row.VerbIndex, string(vals)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert row: %w", err)
		}
	}

	return nil
}

func (h *RowStore) Runs() ([]storage.Run, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var runs []storage.Run
	err = sqlitex.Execute(conn, "SELECT id, corpus, headers, created FROM runs ORDER BY created DESC", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			run := storage.Run{
				Id:     stmt.ColumnText(0),
				Corpus: stmt.ColumnText(1),
			}

			if err := json.Unmarshal([]byte(stmt.ColumnText(2)), &run.Headers); err != nil {
				return fmt.Errorf("JSON decoding error: %w", err)
			}

			created, err := time.Parse(time.RFC3339Nano, stmt.ColumnText(3))
			if err != nil {
				return err
			}
			run.Created = created

			runs = append(runs, run)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return runs, nil
}

func (h *RowStore) Rows(runId string, fn func(storage.Row) error) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	return sqlitex.Execute(conn, "SELECT doc_id, sentence_id, verb_index, vals FROM verb_rows WHERE run_id = ? ORDER BY doc_id, sentence_id, verb_index", &sqlitex.ExecOptions{
		Args: []any{runId},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			row := storage.Row{
				DocId:      stmt.ColumnInt(0),
				SentenceId: stmt.ColumnInt(1),
				VerbIndex:  stmt.ColumnInt(2),
			}

			if err := json.Unmarshal([]byte(stmt.ColumnText(3)), &row.Values); err != nil {
				return fmt.Errorf("JSON decoding error: %w", err)
			}

			return fn(row)
		},
	})
}
