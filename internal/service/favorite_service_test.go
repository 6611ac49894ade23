package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/gounamur/travel-backend/internal/domain"
	"github.com/gounamur/travel-backend/internal/repository/memory"
)

type favoriteFixture struct {
	svc          *FavoriteService
	destinations *DestinationService
	user         *domain.User
	paris, bali  *domain.Destination
}

func newFavoriteFixture(t *testing.T) favoriteFixture {
	t.Helper()
	store, dests := newParisBaliStore(t)
	user, err := memory.NewUserRepo(store).Create(context.Background(), domain.NewUser{Email: "a@b.com", Name: "a", Role: domain.RoleTraveler})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	destRepo := memory.NewDestinationRepo(store)
	return favoriteFixture{
		svc:          NewFavoriteService(memory.NewFavoriteRepo(store), destRepo),
		destinations: NewDestinationService(destRepo, nil),
		user:         user,
		paris:        dests[0],
		bali:         dests[1],
	}
}

func TestFavoriteService_AddTwice(t *testing.T) {
	f := newFavoriteFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Add(ctx, f.user.ID, f.bali.ID); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if _, err := f.svc.Add(ctx, f.user.ID, f.bali.ID); !errors.Is(err, ErrFavoriteAlreadyExists) {
		t.Fatalf("expected ErrFavoriteAlreadyExists, got %v", err)
	}

	count, err := f.svc.Count(ctx, f.bali.ID)
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one stored favorite, got %d", count)
	}
}

func TestFavoriteService_ConcurrentAdd(t *testing.T) {
	f := newFavoriteFixture(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	var succeeded, duplicates int
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Add(ctx, f.user.ID, f.paris.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrFavoriteAlreadyExists):
				duplicates++
			}
		}()
	}
	wg.Wait()

	if succeeded != 1 || duplicates != 7 {
		t.Fatalf("expected 1 success and 7 duplicates, got %d and %d", succeeded, duplicates)
	}
}

func TestFavoriteService_UnknownTargets(t *testing.T) {
	f := newFavoriteFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Add(ctx, f.user.ID, 999); !errors.Is(err, ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound, got %v", err)
	}
	if err := f.svc.Remove(ctx, f.user.ID, f.paris.ID); !errors.Is(err, ErrFavoriteNotFound) {
		t.Fatalf("expected ErrFavoriteNotFound, got %v", err)
	}
	if _, err := f.svc.Count(ctx, 999); !errors.Is(err, ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound for count, got %v", err)
	}
}

func TestFavoriteService_ListKeepsInsertionOrder(t *testing.T) {
	f := newFavoriteFixture(t)
	ctx := context.Background()

	for _, id := range []int64{f.bali.ID, f.paris.ID} {
		if _, err := f.svc.Add(ctx, f.user.ID, id); err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
	}
	list, err := f.svc.List(ctx, f.user.ID)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if got := names(list); len(got) != 2 || got[0] != "Bali" || got[1] != "Paris" {
		t.Fatalf("expected [Bali Paris], got %v", got)
	}

	if err := f.svc.Remove(ctx, f.user.ID, f.bali.ID); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	list, err = f.svc.List(ctx, f.user.ID)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if got := names(list); len(got) != 1 || got[0] != "Paris" {
		t.Fatalf("expected [Paris], got %v", got)
	}
}

func TestFavoriteService_DestinationDeleteCascades(t *testing.T) {
	f := newFavoriteFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Add(ctx, f.user.ID, f.paris.ID); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := f.destinations.Delete(ctx, f.paris.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	list, err := f.svc.List(ctx, f.user.ID)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected favorites to be removed with the destination, got %v", names(list))
	}
}

func TestFavoriteService_AddForMissingUser(t *testing.T) {
	f := newFavoriteFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Add(ctx, f.user.ID+100, f.bali.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	count, err := f.svc.Count(ctx, f.bali.ID)
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no stored favorite, got %d", count)
	}
}
