package repositories

import (
	"context"
	"errors"
	"sync"
	"testing"

	"annapurna/internal/models/db_models"
	"annapurna/pkg/utils"
)

func TestInMemoryUserRepository_FirstUserIsAdmin(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryUserRepository()
	ctx := context.Background()

	first := &db_models.User{Name: "First", Email: "first@example.com"}
	if err := repo.Insert(ctx, first); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if !first.IsAdmin {
		t.Fatal("first account was not promoted to admin")
	}

	second := &db_models.User{Name: "Second", Email: "second@example.com"}
	if err := repo.Insert(ctx, second); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if second.IsAdmin {
		t.Fatal("second account must not be admin")
	}
}

func TestInMemoryUserRepository_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryUserRepository()
	ctx := context.Background()

	if err := repo.Insert(ctx, &db_models.User{Email: "dup@example.com"}); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	err := repo.Insert(ctx, &db_models.User{Email: "dup@example.com"})
	if !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
}

func TestInMemoryUserRepository_ConcurrentSameEmail(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryUserRepository()
	ctx := context.Background()

	const workers = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Insert(ctx, &db_models.User{Email: "race@example.com"})
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			} else if !errors.Is(err, utils.ErrEmailAlreadyExists) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Fatalf("successful inserts = %d, want exactly 1", successes)
	}
	n, _ := repo.Count(ctx)
	if n != 1 {
		t.Fatalf("stored accounts = %d, want exactly 1", n)
	}
}

func TestInMemoryUserRepository_MonotonicIDs(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryUserRepository()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		u := &db_models.User{Email: "u" + string(rune('a'+i%26)) + string(rune('0'+i/26)) + "@example.com"}
		if err := repo.Insert(ctx, u); err != nil {
			t.Fatalf("Insert error: %v", err)
		}
		if u.ID == "" {
			t.Fatal("id not assigned")
		}
		if seen[u.ID] {
			t.Fatalf("duplicate id %q", u.ID)
		}
		seen[u.ID] = true
	}
}

func TestInMemoryUserRepository_FindAndClone(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryUserRepository()
	ctx := context.Background()

	u := &db_models.User{Name: "Orig", Email: "clone@example.com"}
	if err := repo.Insert(ctx, u); err != nil {
		t.Fatalf("Insert error: %v", err)
	}

	got, err := repo.FindByEmail(ctx, "clone@example.com")
	if err != nil {
		t.Fatalf("FindByEmail error: %v", err)
	}
	if got == nil || got.Name != "Orig" {
		t.Fatalf("unexpected record: %+v", got)
	}

	// Mutating the returned record must not touch the stored copy.
	got.Name = "Mutated"
	again, _ := repo.FindByID(ctx, u.ID)
	if again == nil || again.Name != "Orig" {
		t.Fatalf("stored record changed through a returned pointer: %+v", again)
	}

	miss, err := repo.FindByEmail(ctx, "nobody@example.com")
	if err != nil || miss != nil {
		t.Fatalf("expected (nil, nil) on miss, got (%v, %v)", miss, err)
	}
}

func TestInMemoryUserRepository_UpdateReindexesEmail(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryUserRepository()
	ctx := context.Background()

	u := &db_models.User{Email: "old@example.com"}
	if err := repo.Insert(ctx, u); err != nil {
		t.Fatalf("Insert error: %v", err)
	}

	u.Email = "new@example.com"
	if err := repo.Update(ctx, u); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if got, _ := repo.FindByEmail(ctx, "old@example.com"); got != nil {
		t.Fatal("old email still resolves after update")
	}
	got, _ := repo.FindByEmail(ctx, "new@example.com")
	if got == nil || got.ID != u.ID {
		t.Fatalf("new email does not resolve to the account: %+v", got)
	}

	err := repo.Update(ctx, &db_models.User{BaseModel: db_models.BaseModel{ID: "missing"}})
	if !errors.Is(err, utils.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
