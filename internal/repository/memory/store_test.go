package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gounamur/travel-backend/internal/domain"
	"github.com/gounamur/travel-backend/internal/repository/ports"
)

func seedStore(t *testing.T) (*Store, []*domain.Destination, *domain.User) {
	t.Helper()
	store := NewStore()
	dests := NewDestinationRepo(store)
	users := NewUserRepo(store)
	ctx := context.Background()

	var created []*domain.Destination
	for _, in := range []domain.DestinationInput{
		{Name: "Paris", Country: "France", Continent: "Europe", Rating: 4.8, PriceCategory: domain.PriceCategoryLuxury},
		{Name: "Bali", Country: "Indonésie", Continent: "Asie", Rating: 4.7, PriceCategory: domain.PriceCategoryModerate},
		{Name: "Tokyo", Country: "Japon", Continent: "Asie", Rating: 4.9, PriceCategory: domain.PriceCategoryLuxury},
	} {
		d, err := dests.Create(ctx, in)
		require.NoError(t, err)
		created = append(created, d)
	}

	user, err := users.Create(ctx, domain.NewUser{Email: "a@b.com", Name: "A", Role: domain.RoleTraveler})
	require.NoError(t, err)
	return store, created, user
}

func TestDestinationListOrdersByIDAndPages(t *testing.T) {
	store, _, _ := seedStore(t)
	repo := NewDestinationRepo(store)

	got, err := repo.List(context.Background(), domain.DestinationFilter{
		Continents: []string{"Asie"},
		Page:       domain.Page{Skip: 1, Limit: 5},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Tokyo", got[0].Name)

	continents, err := repo.ListContinents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Asie", "Europe"}, continents)
}

func TestDestinationReadsAreCopies(t *testing.T) {
	store, dests, _ := seedStore(t)
	repo := NewDestinationRepo(store)

	got, err := repo.FindByID(context.Background(), dests[0].ID)
	require.NoError(t, err)
	got.Name = "changed"
	got.Activities = append(got.Activities, "x")

	again, err := repo.FindByID(context.Background(), dests[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Paris", again.Name)
	assert.Empty(t, again.Activities)
}

func TestFavoriteConcurrentAddStoresOnePair(t *testing.T) {
	store, dests, user := seedStore(t)
	repo := NewFavoriteRepo(store)

	var wg sync.WaitGroup
	results := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Add(context.Background(), user.ID, dests[1].ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, dup int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ports.ErrDuplicate):
			dup++
		default:
			t.Fatalf("unexpected error %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 15, dup)

	list, err := repo.ListDestinations(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestFavoriteAddUnknownDestination(t *testing.T) {
	store, _, user := seedStore(t)
	_, err := NewFavoriteRepo(store).Add(context.Background(), user.ID, 999)
	assert.ErrorIs(t, err, ports.ErrMissingReference)
}

func TestDeleteDestinationCascadesFavoritesAndLinks(t *testing.T) {
	store, dests, user := seedStore(t)
	ctx := context.Background()
	favorites := NewFavoriteRepo(store)
	packages := NewPackageRepo(store)

	_, err := favorites.Add(ctx, user.ID, dests[1].ID)
	require.NoError(t, err)
	pkg, err := packages.Create(ctx, domain.PackageInput{
		Name: "Découverte de l'Asie", Duration: 14, Price: 2250,
		DestinationIDs: []int64{dests[2].ID, dests[1].ID, dests[1].ID},
	})
	require.NoError(t, err)
	require.Len(t, pkg.Destinations, 2)

	require.NoError(t, NewDestinationRepo(store).Delete(ctx, dests[1].ID))

	count, err := favorites.CountByDestination(ctx, dests[1].ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	reloaded, err := packages.FindByID(ctx, pkg.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Destinations, 1)
	assert.Equal(t, "Tokyo", reloaded.Destinations[0].Name)
}

func TestDeleteUserCascadesFavorites(t *testing.T) {
	store, dests, user := seedStore(t)
	ctx := context.Background()
	favorites := NewFavoriteRepo(store)

	_, err := favorites.Add(ctx, user.ID, dests[0].ID)
	require.NoError(t, err)
	require.NoError(t, NewUserRepo(store).Delete(ctx, user.ID))

	count, err := favorites.CountByDestination(ctx, dests[0].ID)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.ErrorIs(t, NewUserRepo(store).Delete(ctx, user.ID), ports.ErrNotFound)
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	store, _, _ := seedStore(t)
	_, err := NewUserRepo(store).Create(context.Background(), domain.NewUser{Email: "a@b.com"})
	assert.ErrorIs(t, err, ports.ErrDuplicate)
}

func TestPackageCreateUnknownDestination(t *testing.T) {
	store, _, _ := seedStore(t)
	_, err := NewPackageRepo(store).Create(context.Background(), domain.PackageInput{Name: "x", DestinationIDs: []int64{42}})
	assert.ErrorIs(t, err, ports.ErrMissingReference)

	count, err := NewPackageRepo(store).Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
