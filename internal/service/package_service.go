package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gounamur/travel-backend/internal/domain"
	"github.com/gounamur/travel-backend/internal/media"
	"github.com/gounamur/travel-backend/internal/repository/ports"
)

type PackageService struct {
	packages ports.PackageRepository
	images   *ImageUploader
}

func NewPackageService(repo ports.PackageRepository, images *ImageUploader) *PackageService {
	return &PackageService{packages: repo, images: images}
}

func (s *PackageService) List(ctx context.Context, filter domain.PackageFilter) ([]domain.Package, domain.Page, error) {
	normalized, err := normalizePackageFilter(filter)
	if err != nil {
		return nil, filter.Page, err
	}
	items, err := s.packages.List(ctx, normalized)
	if err != nil {
		return nil, normalized.Page, err
	}
	return items, normalized.Page, nil
}

func (s *PackageService) Get(ctx context.Context, id int64) (*domain.Package, error) {
	pkg, err := s.packages.FindByID(ctx, id)
	if err != nil {
		return nil, mapPackageErr(err)
	}
	return pkg, nil
}

func (s *PackageService) Create(ctx context.Context, input domain.PackageInput) (*domain.Package, error) {
	valid, err := validatePackageInput(input)
	if err != nil {
		return nil, err
	}
	pkg, err := s.packages.Create(ctx, valid)
	if err != nil {
		return nil, mapPackageErr(err)
	}
	return pkg, nil
}

func (s *PackageService) Update(ctx context.Context, id int64, input domain.PackageInput) (*domain.Package, error) {
	valid, err := validatePackageInput(input)
	if err != nil {
		return nil, err
	}
	pkg, err := s.packages.Update(ctx, id, valid)
	if err != nil {
		return nil, mapPackageErr(err)
	}
	return pkg, nil
}

func (s *PackageService) Delete(ctx context.Context, id int64) error {
	return mapPackageErr(s.packages.Delete(ctx, id))
}

func (s *PackageService) UploadImage(ctx context.Context, id int64, upload media.Upload) (*domain.Package, error) {
	if _, err := s.packages.FindByID(ctx, id); err != nil {
		return nil, mapPackageErr(err)
	}
	url, err := s.images.Store(ctx, "packages", id, upload)
	if err != nil {
		return nil, err
	}
	pkg, err := s.packages.SetImage(ctx, id, url)
	if err != nil {
		return nil, mapPackageErr(err)
	}
	return pkg, nil
}

func mapPackageErr(err error) error {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return ErrPackageNotFound
	case errors.Is(err, ports.ErrMissingReference):
		return fmt.Errorf("%w: unknown destination id", ErrValidation)
	}
	return err
}
