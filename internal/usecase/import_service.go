package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/ligaescolar/kings-api/internal/domain/player"
)

const defaultImportWorkers = 4

var playerImportHeader = []string{"id", "name", "position", "price", "market_value", "team_id", "is_on_market"}

type ImportRowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

type ImportReport struct {
	TotalRows    int              `json:"total_rows"`
	AcceptedRows int              `json:"accepted_rows"`
	RejectedRows int              `json:"rejected_rows"`
	Errors       []ImportRowError `json:"errors,omitempty"`
}

// ImportService validates uploaded CSV sheets. It is a dry run by contract:
// rows are checked, counted, and reported, never persisted.
type ImportService struct {
	workers int
}

func NewImportService(workers int) *ImportService {
	if workers <= 0 {
		workers = defaultImportWorkers
	}
	return &ImportService{workers: workers}
}

// ValidatePlayers checks a players CSV against the export column contract.
// Row validation fans out over a bounded worker pool; row order in the error
// report is restored afterwards.
func (s *ImportService) ValidatePlayers(ctx context.Context, r io.Reader) (ImportReport, error) {
	_, span := startUsecaseSpan(ctx, "usecase.ImportService.ValidatePlayers")
	defer span.End()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return ImportReport{}, fmt.Errorf("%w: empty csv", ErrInvalidInput)
	}
	if err != nil {
		return ImportReport{}, fmt.Errorf("%w: read csv header: %v", ErrInvalidInput, err)
	}
	if err := checkHeader(header, playerImportHeader); err != nil {
		return ImportReport{}, err
	}

	type row struct {
		line   int
		fields []string
	}
	var rows []row
	line := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return ImportReport{}, fmt.Errorf("%w: read csv line %d: %v", ErrInvalidInput, line, err)
		}
		rows = append(rows, row{line: line, fields: fields})
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return ImportReport{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var mu sync.Mutex
	var rowErrors []ImportRowError
	var workers sync.WaitGroup
	for _, rw := range rows {
		rw := rw
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if msg := validatePlayerRow(rw.fields); msg != "" {
				mu.Lock()
				rowErrors = append(rowErrors, ImportRowError{Line: rw.line, Message: msg})
				mu.Unlock()
			}
		}); err != nil {
			workers.Done()
			return ImportReport{}, fmt.Errorf("submit validation task: %w", err)
		}
	}
	workers.Wait()

	sort.Slice(rowErrors, func(i, j int) bool { return rowErrors[i].Line < rowErrors[j].Line })

	return ImportReport{
		TotalRows:    len(rows),
		AcceptedRows: len(rows) - len(rowErrors),
		RejectedRows: len(rowErrors),
		Errors:       rowErrors,
	}, nil
}

func checkHeader(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("%w: expected %d header columns, got %d", ErrInvalidInput, len(want), len(got))
	}
	for i := range want {
		if strings.TrimSpace(strings.ToLower(got[i])) != want[i] {
			return fmt.Errorf("%w: header column %d must be %q", ErrInvalidInput, i+1, want[i])
		}
	}
	return nil
}

func validatePlayerRow(fields []string) string {
	if len(fields) != len(playerImportHeader) {
		return fmt.Sprintf("expected %d columns, got %d", len(playerImportHeader), len(fields))
	}

	price, err := strconv.ParseInt(strings.TrimSpace(fields[3]), 10, 64)
	if err != nil {
		return "price must be an integer"
	}
	marketValue, err := strconv.ParseInt(strings.TrimSpace(fields[4]), 10, 64)
	if err != nil {
		return "market_value must be an integer"
	}
	onMarket := false
	if v := strings.TrimSpace(fields[6]); v != "" {
		onMarket, err = strconv.ParseBool(v)
		if err != nil {
			return "is_on_market must be a boolean"
		}
	}

	p := player.Player{
		ID:          strings.TrimSpace(fields[0]),
		Name:        strings.TrimSpace(fields[1]),
		Position:    player.Position(strings.ToUpper(strings.TrimSpace(fields[2]))),
		Price:       price,
		MarketValue: marketValue,
		TeamID:      strings.TrimSpace(fields[5]),
		IsOnMarket:  onMarket,
	}
	if err := p.Validate(); err != nil {
		return err.Error()
	}

	return ""
}
