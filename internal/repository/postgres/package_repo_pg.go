package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gounamur/travel-backend/internal/domain"
	"github.com/gounamur/travel-backend/internal/repository/ports"
	"github.com/gounamur/travel-backend/internal/util"
)

var packageColumns = []string{
	"id", "name", "description", "image_url", "duration", "price", "discount_price",
	"is_promoted", "included_services", "itinerary", "created_at", "updated_at",
}

type PackageRepository struct {
	db *sqlx.DB
}

func NewPackageRepo(db *sqlx.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

type packageDestinationRow struct {
	PackageID int64 `db:"package_id"`
	domain.DestinationBrief
}

func (r *PackageRepository) Create(ctx context.Context, input domain.PackageInput) (*domain.Package, error) {
	query := `
		INSERT INTO packages (
			name, description, image_url, duration, price, discount_price,
			is_promoted, included_services, itinerary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + columnList("", packageColumns)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}

	var pkg domain.Package
	if err := tx.GetContext(ctx, &pkg, query, packageArgs(input)...); err != nil {
		return nil, rollback(tx, translateError(err))
	}
	if err := linkDestinations(ctx, tx, pkg.ID, input.DestinationIDs); err != nil {
		return nil, rollback(tx, err)
	}
	if err := attachDestinations(ctx, tx, []*domain.Package{&pkg}); err != nil {
		return nil, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepository) Update(ctx context.Context, id int64, input domain.PackageInput) (*domain.Package, error) {
	query := `
		UPDATE packages SET
			name = $1, description = $2, image_url = $3, duration = $4, price = $5,
			discount_price = $6, is_promoted = $7, included_services = $8, itinerary = $9,
			updated_at = NOW()
		WHERE id = $10
		RETURNING ` + columnList("", packageColumns)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}

	var pkg domain.Package
	args := append(packageArgs(input), id)
	if err := tx.GetContext(ctx, &pkg, query, args...); err != nil {
		return nil, rollback(tx, translateError(err))
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM package_destinations WHERE package_id = $1`, id); err != nil {
		return nil, rollback(tx, err)
	}
	if err := linkDestinations(ctx, tx, id, input.DestinationIDs); err != nil {
		return nil, rollback(tx, err)
	}
	if err := attachDestinations(ctx, tx, []*domain.Package{&pkg}); err != nil {
		return nil, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepository) SetImage(ctx context.Context, id int64, imageURL string) (*domain.Package, error) {
	query := `
		UPDATE packages SET image_url = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + columnList("", packageColumns)

	var pkg domain.Package
	if err := r.db.GetContext(ctx, &pkg, query, id, imageURL); err != nil {
		return nil, translateError(err)
	}
	if err := attachDestinations(ctx, r.db, []*domain.Package{&pkg}); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM package_destinations WHERE package_id = $1`, id); err != nil {
		return rollback(tx, err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM packages WHERE id = $1`, id)
	if err != nil {
		return rollback(tx, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return rollback(tx, err)
	}
	if affected == 0 {
		return rollback(tx, ports.ErrNotFound)
	}
	return tx.Commit()
}

func (r *PackageRepository) FindByID(ctx context.Context, id int64) (*domain.Package, error) {
	query := `SELECT ` + columnList("", packageColumns) + ` FROM packages WHERE id = $1`

	var pkg domain.Package
	if err := r.db.GetContext(ctx, &pkg, query, id); err != nil {
		return nil, translateError(err)
	}
	if err := attachDestinations(ctx, r.db, []*domain.Package{&pkg}); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepository) List(ctx context.Context, filter domain.PackageFilter) ([]domain.Package, error) {
	base := `SELECT ` + columnList("", packageColumns) + ` FROM packages`
	query, args := packagePredicates(filter).paged(base, "id ASC", filter.Page.Limit, filter.Page.Skip)

	packages := make([]domain.Package, 0)
	if err := r.db.SelectContext(ctx, &packages, query, args...); err != nil {
		return nil, err
	}

	refs := make([]*domain.Package, len(packages))
	for i := range packages {
		refs[i] = &packages[i]
	}
	if err := attachDestinations(ctx, r.db, refs); err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *PackageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM packages`); err != nil {
		return 0, err
	}
	return count, nil
}

func packagePredicates(filter domain.PackageFilter) predicates {
	var p predicates
	if filter.Search != "" {
		pattern := util.LikeContains(filter.Search)
		p.add("(name ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}
	if filter.MinPrice != nil {
		p.add("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		p.add("price <= ?", *filter.MaxPrice)
	}
	if filter.MinDuration != nil {
		p.add("duration >= ?", *filter.MinDuration)
	}
	return p
}

func packageArgs(input domain.PackageInput) []any {
	return []any{
		input.Name,
		input.Description,
		input.ImageURL,
		input.Duration,
		input.Price,
		input.DiscountPrice,
		input.IsPromoted,
		domain.StringList(input.IncludedServices),
		domain.Itinerary(input.Itinerary),
	}
}

func linkDestinations(ctx context.Context, tx *sqlx.Tx, packageID int64, destinationIDs []int64) error {
	if len(destinationIDs) == 0 {
		return nil
	}
	const query = `
		INSERT INTO package_destinations (package_id, destination_id)
		SELECT $1, UNNEST($2::bigint[])
		ON CONFLICT DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, query, packageID, pq.Int64Array(destinationIDs)); err != nil {
		return translateError(err)
	}
	return nil
}

// attachDestinations loads the destination briefs of every package in one query.
func attachDestinations(ctx context.Context, q sqlx.QueryerContext, packages []*domain.Package) error {
	if len(packages) == 0 {
		return nil
	}
	ids := make(pq.Int64Array, 0, len(packages))
	byID := make(map[int64]*domain.Package, len(packages))
	for _, pkg := range packages {
		pkg.Destinations = []domain.DestinationBrief{}
		ids = append(ids, pkg.ID)
		byID[pkg.ID] = pkg
	}

	const query = `
		SELECT pd.package_id, d.id, d.name, d.country, d.image_url
		FROM package_destinations pd
		JOIN destinations d ON d.id = pd.destination_id
		WHERE pd.package_id = ANY($1)
		ORDER BY pd.package_id, d.id
	`
	var rows []packageDestinationRow
	if err := sqlx.SelectContext(ctx, q, &rows, query, ids); err != nil {
		return err
	}
	for _, row := range rows {
		if pkg, ok := byID[row.PackageID]; ok {
			pkg.Destinations = append(pkg.Destinations, row.DestinationBrief)
		}
	}
	return nil
}

var _ ports.PackageRepository = (*PackageRepository)(nil)
