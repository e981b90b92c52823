package csv_file

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/exprtree/internal/domain"
	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
	"github.com/DjordjeVuckovic/exprtree/pkg/pagination"
	"github.com/google/uuid"
)

const DefaultPath = "history.csv"

var header = []string{"id", "source", "dialect", "expression", "postfix", "result", "error", "created_at"}

// Storer appends evaluations to a CSV file, writing the header when the file is new or empty.
type Storer struct {
	mu   sync.Mutex
	path string
}

func NewStorer(path string) *Storer {
	if path == "" {
		path = DefaultPath
	}
	return &Storer{path: path}
}

func (s *Storer) Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error) {
	evaluation = evaluation.WithDefaults(time.Now())
	if err := s.append([]domain.Evaluation{evaluation}); err != nil {
		return uuid.Nil, err
	}
	return evaluation.ID, nil
}

func (s *Storer) SaveBulk(ctx context.Context, evaluations []domain.Evaluation) error {
	now := time.Now()
	rows := make([]domain.Evaluation, len(evaluations))
	for i, e := range evaluations {
		rows[i] = e.WithDefaults(now)
	}
	return s.append(rows)
}

func (s *Storer) append(evaluations []domain.Evaluation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat history file: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("failed to write history header: %w", err)
		}
	}
	for _, e := range evaluations {
		if err := w.Write(toRow(e)); err != nil {
			return fmt.Errorf("failed to write evaluation %s: %w", e.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush history file: %w", err)
	}

	slog.Debug("Appended evaluations to csv history", "path", s.path, "count", len(evaluations))
	return nil
}

func (s *Storer) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Evaluation], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return pagination.PageSlice([]domain.Evaluation{}, page), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	records, err := readRecords(f)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Evaluation, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		e, err := fromRecord(records[i])
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}

	return pagination.PageSlice(items, page), nil
}

func readRecords(r io.Reader) ([]map[string]string, error) {
	csvReader := csv.NewReader(r)

	headers, err := csvReader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history header: %w", err)
	}

	var records []map[string]string
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read history row: %w", err)
		}

		record := make(map[string]string, len(headers))
		for i, h := range headers {
			record[h] = row[i]
		}
		records = append(records, record)
	}

	return records, nil
}

func toRow(e domain.Evaluation) []string {
	return []string{
		e.ID.String(),
		e.Source,
		e.Dialect.String(),
		e.Expression,
		e.Postfix,
		e.Result,
		e.Error,
		e.CreatedAt.Format(time.RFC3339Nano),
	}
}

func fromRecord(record map[string]string) (domain.Evaluation, error) {
	id, err := uuid.Parse(record["id"])
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("invalid evaluation id %q: %w", record["id"], err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, record["created_at"])
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("invalid created_at for %s: %w", id, err)
	}

	return domain.Evaluation{
		ID:         id,
		Source:     record["source"],
		Dialect:    operator.Dialect(record["dialect"]),
		Expression: record["expression"],
		Postfix:    record["postfix"],
		Result:     record["result"],
		Error:      record["error"],
		CreatedAt:  createdAt,
	}, nil
}
