package service

import (
	"context"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/sipline/drink_shop/internal/es"
	"github.com/sipline/drink_shop/internal/logging"
	"github.com/sipline/drink_shop/internal/models"
	"github.com/sipline/drink_shop/internal/repo"
)

type CatalogService struct {
	Repo *repo.GormRepo
	ES   *elasticsearch.Client
}

func (s *CatalogService) ListDrinks(ctx context.Context) ([]models.Drink, error) {
	return s.Repo.ListDrinks(ctx)
}

func (s *CatalogService) CreateDrink(ctx context.Context, drink *models.Drink) error {
	l := logging.FromContext(ctx).With("svc", "catalog.create_drink")

	if drink.Name == "" {
		return fmt.Errorf("%w: name required", ErrValidation)
	}
	if drink.Price < 0 {
		return fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}

	if err := s.Repo.CreateDrink(ctx, drink); err != nil {
		return err
	}

	if s.ES != nil {
		if err := es.IndexDrink(ctx, s.ES, drink); err != nil {
			l.Warn("es_index_error", "drink_id", drink.ID, "error", err)
		}
	}
	return nil
}

// SearchDrinks uses Elasticsearch when a client is configured and falls back
// to a LIKE query against the store otherwise.
func (s *CatalogService) SearchDrinks(ctx context.Context, q string) ([]models.Drink, error) {
	if q == "" {
		return nil, fmt.Errorf("%w: q required", ErrValidation)
	}
	if s.ES != nil {
		return es.SearchDrinks(ctx, s.ES, q)
	}
	return s.Repo.SearchDrinks(ctx, q)
}
