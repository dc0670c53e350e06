package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Alwanly/sec-edgar-navigator/internal/models"
	"github.com/Alwanly/sec-edgar-navigator/pkg/database"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewLedger(db)
}

func TestLedgerRecordIsIdempotent(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	a := models.FilingArtifact{
		AccessionNumber: "0001045810-24-000029",
		FileName:        FullSubmissionFile,
		Ticker:          "NVDA",
		CIK:             "0001045810",
		FilingType:      "10-K",
		FilingDate:      "2024-02-21",
		Path:            "/tmp/a",
		SizeBytes:       10,
		RunID:           "run-1",
	}
	if err := l.Record(ctx, []models.FilingArtifact{a}); err != nil {
		t.Fatalf("first record: %v", err)
	}

	a.SizeBytes = 20
	a.RunID = "run-2"
	if err := l.Record(ctx, []models.FilingArtifact{a}); err != nil {
		t.Fatalf("second record: %v", err)
	}

	got, err := l.ListByTicker(ctx, "NVDA")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	if got[0].SizeBytes != 20 || got[0].RunID != "run-2" {
		t.Fatalf("expected row to be updated, got %+v", got[0])
	}
}

func TestLedgerListOrdersNewestFirst(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	rows := []models.FilingArtifact{
		{AccessionNumber: "old", FileName: FullSubmissionFile, Ticker: "NVDA", FilingDate: "2023-02-24"},
		{AccessionNumber: "new", FileName: FullSubmissionFile, Ticker: "NVDA", FilingDate: "2024-02-21"},
		{AccessionNumber: "new", FileName: "primary-document.html", Ticker: "NVDA", FilingDate: "2024-02-21"},
		{AccessionNumber: "other", FileName: FullSubmissionFile, Ticker: "AAPL", FilingDate: "2024-11-01"},
	}
	if err := l.Record(ctx, rows); err != nil {
		t.Fatalf("record: %v", err)
	}

	got, err := l.ListByTicker(ctx, "NVDA")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 NVDA rows, got %d", len(got))
	}
	if got[0].AccessionNumber != "new" || got[0].FileName != FullSubmissionFile {
		t.Fatalf("unexpected first row %+v", got[0])
	}
	if got[2].AccessionNumber != "old" {
		t.Fatalf("expected oldest last, got %+v", got[2])
	}
}

func TestLedgerRecordEmpty(t *testing.T) {
	l := newTestLedger(t)
	if err := l.Record(context.Background(), nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
