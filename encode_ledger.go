package tourney

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/gocarina/gocsv"
)

// ledgerRow is the on-disk layout of a record.
type ledgerRow struct {
	Date     string `csv:"date"`
	Room     string `csv:"room"`
	Name     string `csv:"name"`
	BuyIn    string `csv:"buy_in"`
	Rake     string `csv:"rake"`
	Currency string `csv:"currency"`
	Result   string `csv:"result"`
	Place    string `csv:"place"`
	Players  string `csv:"players"`
	Format   string `csv:"format"`
	Notes    string `csv:"notes"`
}

func newLedgerRow(r Record) *ledgerRow {
	f := r.Fields()
	return &ledgerRow{
		Date:     f[ColDate],
		Room:     f[ColRoom],
		Name:     f[ColName],
		BuyIn:    f[ColBuyIn],
		Rake:     f[ColRake],
		Currency: f[ColCurrency],
		Result:   f[ColResult],
		Place:    f[ColPlace],
		Players:  f[ColPlayers],
		Format:   f[ColFormat],
		Notes:    f[ColNotes],
	}
}

// DecodeLedger reads a CSV ledger whose first line names the columns.
//
// Columns are matched by name, in any order; unknown columns are ignored and
// known ones that are absent read as empty fields. A row with an invalid date
// is dropped and reported in Skipped. Only a malformed CSV stream is an error.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows may be shorter or longer than the header

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		ledger.missing = slices.Clone(Columns)
		return ledger, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading ledger header: %w", err)
	}
	for i, name := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	}
	for _, col := range Columns {
		if !slices.Contains(header, col) {
			ledger.missing = append(ledger.missing, col)
		}
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading ledger: %w", err)
		}
		line, _ := reader.FieldPos(0)

		fields := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				fields[name] = row[i]
			}
		}
		rec, err := NewRecord(fields)
		if err != nil {
			ledger.skipped = append(ledger.skipped, &RowError{Line: line, Value: fields[ColDate], Err: err})
			continue
		}
		ledger.records = append(ledger.records, rec)
	}
	return ledger, nil
}

// EncodeRecords writes records as CSV rows, preceded by the header line if header is true.
func EncodeRecords(w io.Writer, header bool, records ...Record) error {
	rows := make([]*ledgerRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, newLedgerRow(r))
	}
	if header {
		return gocsv.Marshal(&rows, w)
	}
	return gocsv.MarshalWithoutHeaders(&rows, w)
}

// AppendRecord appends rec at the end of the ledger file at path.
// The file is created, with its header line, if it does not exist or is empty.
func AppendRecord(path string, rec Record) error {
	info, err := os.Stat(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error reading ledger file %q: %w", path, err)
	}
	empty := err != nil || info.Size() == 0

	// A file edited by hand may lack its final newline.
	needsNewline := false
	if !empty {
		needsNewline, err = lacksFinalNewline(path, info.Size())
		if err != nil {
			return err
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q: %w", path, err)
	}
	defer f.Close()

	if needsNewline {
		if _, err := f.WriteString("\n"); err != nil {
			return fmt.Errorf("error writing to ledger file %q: %w", path, err)
		}
	}
	if err := EncodeRecords(f, empty, rec); err != nil {
		return fmt.Errorf("error writing to ledger file %q: %w", path, err)
	}
	return f.Close()
}

func lacksFinalNewline(path string, size int64) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("error reading ledger file %q: %w", path, err)
	}
	defer f.Close()
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, size-1); err != nil {
		return false, fmt.Errorf("error reading ledger file %q: %w", path, err)
	}
	return last[0] != '\n', nil
}
