package tourney

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrLedgerNotFound is returned when the ledger file does not exist.
var ErrLedgerNotFound = errors.New("ledger not found")

// Ledger is the list of tournaments read from a ledger file, in file order.
type Ledger struct {
	records []Record
	skipped []*RowError
	missing []string
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{records: make([]Record, 0)}
}

// Records returns all the records, in file order.
func (l *Ledger) Records() []Record { return l.records }

// Sorted returns a copy of the records sorted by date, in file order within a day.
func (l *Ledger) Sorted() []Record { return SortByDate(l.records) }

// Len returns the number of records.
func (l *Ledger) Len() int { return len(l.records) }

// Select returns the records matching f, in file order.
func (l *Ledger) Select(f Filter) []Record { return Select(l.records, f) }

// Skipped returns the rows that could not be read as a record.
func (l *Ledger) Skipped() []*RowError { return l.skipped }

// MissingColumns returns the known columns absent from the ledger header.
func (l *Ledger) MissingColumns() []string { return l.missing }

// Append adds records at the end of the ledger.
func (l *Ledger) Append(records ...Record) { l.records = append(l.records, records...) }

// RowError describes a ledger row that was dropped.
type RowError struct {
	Line  int    // 1-based line number in the file
	Value string // the raw date field
	Err   error
}

func (e *RowError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }
func (e *RowError) Unwrap() error { return e.Err }

// LoadLedger reads the ledger file at path.
//
// A missing file is an error wrapping both ErrLedgerNotFound and fs.ErrNotExist.
// Rows that cannot be read are not an error, they are reported by Skipped.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q: %w", ErrLedgerNotFound, path, err)
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return ledger, nil
}
