package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestParseSmokingStatus(t *testing.T) {
	tests := map[string]SmokingStatus{
		"never":   SmokingNever,
		"Former":  SmokingFormer,
		"CURRENT": SmokingCurrent,
		"pipe":    SmokingNever,
		"":        SmokingNever,
	}
	for raw, want := range tests {
		if got := ParseSmokingStatus(raw); got != want {
			t.Errorf("ParseSmokingStatus(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestServiceGet(t *testing.T) {
	repo := NewMemRepo()
	id := uuid.New()
	repo.Seed(Profile{ID: id, Age: 55, SurgeryType: "Appendectomy"})
	svc := NewService(repo)

	p, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if p.Age != 55 || p.SurgeryType != "Appendectomy" {
		t.Errorf("profile = %+v", p)
	}
}

func TestServiceGetNotFound(t *testing.T) {
	svc := NewService(NewMemRepo())
	_, err := svc.Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMemRepoList(t *testing.T) {
	repo := NewMemRepo()
	for i := 0; i < 5; i++ {
		repo.Seed(Profile{ID: uuid.New(), Age: 30 + i})
	}
	items, total, err := repo.List(context.Background(), 2, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 5 || len(items) != 2 {
		t.Errorf("total = %d items = %d", total, len(items))
	}
	rest, _, err := repo.List(context.Background(), 10, 2)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(rest) != 3 {
		t.Errorf("offset page = %d items, want 3", len(rest))
	}
}

func TestMemRepoSeedReplaces(t *testing.T) {
	repo := NewMemRepo()
	id := uuid.New()
	repo.Seed(Profile{ID: id, Age: 40})
	repo.Seed(Profile{ID: id, Age: 41})
	p, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if p.Age != 41 {
		t.Errorf("Age = %d, want 41", p.Age)
	}
}
