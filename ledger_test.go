package tourney

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/tourney/date"
	"github.com/google/go-cmp/cmp"
)

func TestDecodeLedger(t *testing.T) {
	csvStream := `date,room,name,buy_in,rake,currency,result,place,players,format,notes
2025-01-05,PokerOK,Daily 10,10,1,USD,0,250,900,MTT,
2025-01-06,PokerOK,Bounty,5,0.5,,25.75,3,120,PKO,"final table, 3rd"
06/01/2025,PokerOK,Bad date,5,0.5,USD,0,0,0,MTT,
2025-01-07,Stars,Hyper,abc,0.2,eur,,x,6,SnG,
`
	ledger, err := DecodeLedger(strings.NewReader(csvStream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	if ledger.Len() != 3 {
		t.Fatalf("DecodeLedger() decoded %d records, want 3", ledger.Len())
	}
	if len(ledger.MissingColumns()) != 0 {
		t.Errorf("MissingColumns() = %v, want none", ledger.MissingColumns())
	}

	skipped := ledger.Skipped()
	if len(skipped) != 1 {
		t.Fatalf("Skipped() = %v, want 1 row", skipped)
	}
	if skipped[0].Line != 4 || !errors.Is(skipped[0], ErrInvalidDate) {
		t.Errorf("Skipped()[0] = %v, want line 4 with an invalid date", skipped[0])
	}
	if skipped[0].Value != "06/01/2025" {
		t.Errorf("Skipped()[0].Value = %q, want the raw date", skipped[0].Value)
	}
	if !strings.Contains(skipped[0].Error(), "06/01/2025") {
		t.Errorf("Skipped()[0] = %q, want the bad value in the message", skipped[0].Error())
	}

	records := ledger.Records()
	if records[1].Currency != "USD" || records[1].Notes != "final table, 3rd" || !records[1].Result.Equal(D(25.75)) {
		t.Errorf("second record = %+v", records[1])
	}
	third := records[2]
	if !third.BuyIn.IsZero() || !third.Result.IsZero() || third.Place != 0 || third.Currency != "EUR" || third.Players != 6 {
		t.Errorf("third record = %+v, want bad numbers read as 0 and currency EUR", third)
	}
}

func TestDecodeLedger_MissingColumns(t *testing.T) {
	csvStream := "name,buy_in,date,result\nSunday Million,109,2025-02-02,0\n"
	ledger, err := DecodeLedger(strings.NewReader(csvStream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	want := []string{ColRoom, ColRake, ColCurrency, ColPlace, ColPlayers, ColFormat, ColNotes}
	if diff := cmp.Diff(want, ledger.MissingColumns()); diff != "" {
		t.Errorf("MissingColumns() mismatch (-want +got):\n%s", diff)
	}
	if ledger.Len() != 1 {
		t.Fatalf("DecodeLedger() decoded %d records, want 1", ledger.Len())
	}
	r := ledger.Records()[0]
	if r.Name != "Sunday Million" || !r.BuyIn.Equal(D(109)) || r.Date != date.MustParse("2025-02-02") {
		t.Errorf("record = %+v", r)
	}
}

func TestDecodeLedger_Empty(t *testing.T) {
	ledger, err := DecodeLedger(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	if ledger.Len() != 0 || !slices.Equal(ledger.MissingColumns(), Columns) {
		t.Errorf("DecodeLedger(\"\") = %d records, missing %v", ledger.Len(), ledger.MissingColumns())
	}
}

func TestDecodeLedger_ShortRows(t *testing.T) {
	csvStream := "date,room,name,buy_in\n2025-01-05,PokerOK\n2025-01-06,PokerOK,Turbo,3,extra,columns\n"
	ledger, err := DecodeLedger(strings.NewReader(csvStream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	if ledger.Len() != 2 {
		t.Fatalf("DecodeLedger() decoded %d records, want 2", ledger.Len())
	}
	if !ledger.Records()[1].BuyIn.Equal(D(3)) {
		t.Errorf("second record buy-in = %v, want 3", ledger.Records()[1].BuyIn)
	}
}

func TestLoadLedger_NotFound(t *testing.T) {
	_, err := LoadLedger(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, ErrLedgerNotFound) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadLedger() error = %v, want ErrLedgerNotFound", err)
	}
}

func TestAppendRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tournaments.csv")

	first := withFormat(rec("2025-03-01", 10, 1, 0), "MTT")
	first.Name = "Daily Hyper, 10$"
	second := withFormat(rec("2025-03-02", 5, 0.5, 42), "PKO")

	for _, r := range []Record{first, second} {
		if err := AppendRecord(path, r); err != nil {
			t.Fatalf("AppendRecord() returned an unexpected error: %v", err)
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 3 {
		t.Fatalf("ledger has %d lines, want a header and 2 rows:\n%s", len(lines), content)
	}
	if lines[0] != strings.Join(Columns, ",") {
		t.Errorf("header = %q, want %q", lines[0], strings.Join(Columns, ","))
	}
	if want := `2025-03-01,,"Daily Hyper, 10$",10.00,1.00,USD,0.00,0,0,MTT,`; lines[1] != want {
		t.Errorf("first row = %q, want %q", lines[1], want)
	}

	ledger, err := LoadLedger(path)
	if err != nil {
		t.Fatalf("LoadLedger() returned an unexpected error: %v", err)
	}
	if ledger.Len() != 2 || !equalRecord(ledger.Records()[0], first) || !equalRecord(ledger.Records()[1], second) {
		t.Errorf("LoadLedger() = %+v, want the appended records", ledger.Records())
	}
}

func TestAppendRecord_NoFinalNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tournaments.csv")
	handmade := strings.Join(Columns, ",") + "\n2025-03-01,PokerOK,Daily,1,0,USD,0,0,0,MTT,"
	if err := os.WriteFile(path, []byte(handmade), 0644); err != nil {
		t.Fatal(err)
	}
	if err := AppendRecord(path, rec("2025-03-02", 2, 0, 0)); err != nil {
		t.Fatalf("AppendRecord() returned an unexpected error: %v", err)
	}
	ledger, err := LoadLedger(path)
	if err != nil {
		t.Fatalf("LoadLedger() returned an unexpected error: %v", err)
	}
	if ledger.Len() != 2 || len(ledger.Skipped()) != 0 {
		t.Errorf("LoadLedger() = %d records, %v skipped, want 2 and none", ledger.Len(), ledger.Skipped())
	}
}

func TestLedger_Sorted(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		withFormat(rec("2025-01-03", 1, 0, 0), "c"),
		withFormat(rec("2025-01-01", 1, 0, 0), "a"),
		withFormat(rec("2025-01-03", 1, 0, 0), "d"),
		withFormat(rec("2025-01-02", 1, 0, 0), "b"),
	)
	var got []string
	for _, r := range ledger.Sorted() {
		got = append(got, r.Format)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, got); diff != "" {
		t.Errorf("Sorted() mismatch (-want +got):\n%s", diff)
	}
	if ledger.Records()[0].Format != "c" {
		t.Error("Sorted() must not reorder the ledger")
	}
}
