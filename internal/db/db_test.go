package db

import (
	"testing"

	"github.com/google/uuid"

	"github.com/gyeh/occload/internal/model"
)

func TestChannelSource(t *testing.T) {
	ch := make(chan *model.StagingRow, 2)
	ch <- &model.StagingRow{OccurrenceID: "a", SourceRowNumber: 1}
	ch <- &model.StagingRow{OccurrenceID: "b", SourceRowNumber: 2}
	close(ch)

	src := NewChannelSource(ch)
	var ids []string
	for src.Next() {
		vals, err := src.Values()
		if err != nil {
			t.Fatalf("Values: %v", err)
		}
		if len(vals) != len(model.StagingColumns()) {
			t.Fatalf("values/columns mismatch: %d vs %d", len(vals), len(model.StagingColumns()))
		}
		ids = append(ids, vals[4].(string))
	}
	if src.Err() != nil {
		t.Fatalf("Err: %v", src.Err())
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("got %v", ids)
	}
}

func TestIssueSource(t *testing.T) {
	batch := uuid.New()
	src := IssueSource([]model.RowIssue{
		{IngestBatchID: batch, SourceRowNumber: 3, Field: "eventDate", Message: "bad"},
	})
	if !src.Next() {
		t.Fatal("expected one row")
	}
	vals, err := src.Values()
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	if len(vals) != len(model.IssueColumns()) || vals[2] != "eventDate" {
		t.Errorf("unexpected values: %v", vals)
	}
	if src.Next() {
		t.Error("expected exhaustion")
	}
}

func TestMigrationNames_Sorted(t *testing.T) {
	names, err := MigrationNames()
	if err != nil {
		t.Fatalf("MigrationNames: %v", err)
	}
	if len(names) != 3 || names[0] != "001_schemas.sql" {
		t.Errorf("unexpected migrations: %v", names)
	}
}
