package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/agrinet/internal/data/repos/testutil"
	"github.com/yungbote/agrinet/internal/domain"
)

func TestContactMessageRepo(t *testing.T) {
	db := testutil.DB(t)
	repo := NewContactMessageRepo(db, testutil.Logger(t))
	ctx := context.Background()

	first, err := repo.Create(ctx, nil, &domain.ContactMessage{
		Name:      "Ama",
		Email:     "ama@example.com",
		Message:   "My leaves have rust spots.",
		CreatedAt: time.Now().Add(-time.Minute),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.ID == uuid.Nil {
		t.Fatalf("Create: expected id to be assigned")
	}
	if _, err := repo.Create(ctx, nil, &domain.ContactMessage{Name: "Kofi", Email: "kofi@example.com", Message: "Hello"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	n, err := repo.Count(ctx, nil)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Fatalf("Count: got %d want 2", n)
	}

	recent, err := repo.ListRecent(ctx, nil, 1)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(recent) != 1 || recent[0].Name != "Kofi" {
		t.Fatalf("ListRecent: unexpected result: %+v", recent)
	}
}

func TestContactMessageRepoWithTx(t *testing.T) {
	db := testutil.DB(t)
	repo := NewContactMessageRepo(db, testutil.Logger(t))
	ctx := context.Background()

	tx := db.Begin()
	if _, err := repo.Create(ctx, tx, &domain.ContactMessage{Name: "A", Email: "a@example.com", Message: "m"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	tx.Rollback()

	n, err := repo.Count(ctx, nil)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Fatalf("rolled back row is visible: %d", n)
	}
}

func TestPredictionRecordRepo(t *testing.T) {
	db := testutil.DB(t)
	repo := NewPredictionRecordRepo(db, testutil.Logger(t))
	ctx := context.Background()

	for _, rec := range []*domain.PredictionRecord{
		{ImageSHA256: "abc", Class: "Corn___Healthy", Confidence: 0.9},
		{ImageSHA256: "abc", Class: "Corn___Healthy", Confidence: 0.9, Cached: true},
		{ImageSHA256: "def", Class: "Corn___Common_Rust", Confidence: 0.7},
	} {
		if _, err := repo.Create(ctx, nil, rec); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	byDigest, err := repo.ListByDigest(ctx, nil, "abc")
	if err != nil {
		t.Fatalf("ListByDigest: %v", err)
	}
	if len(byDigest) != 2 {
		t.Fatalf("ListByDigest: got %d rows", len(byDigest))
	}

	counts, err := repo.CountByClass(ctx, nil)
	if err != nil {
		t.Fatalf("CountByClass: %v", err)
	}
	if counts["Corn___Healthy"] != 2 || counts["Corn___Common_Rust"] != 1 {
		t.Fatalf("CountByClass: unexpected %+v", counts)
	}
}
