package catalog

import (
	"errors"
	"log"

	"github.com/asphaltlabs/asphalt-companion/internal/apperrors"
)

type CatalogService struct {
	repo CarRepository
}

func NewCatalogService(repo CarRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) AddCar(req CarRequest) (*Car, error) {
	if req.Name == "" {
		return nil, apperrors.NewAppError(400, "car name is required", nil)
	}
	car := Car{
		Name:      req.Name,
		Rarity:    req.Rarity,
		BaseStats: req.BaseStats,
	}
	if err := s.repo.CreateCar(&car); err != nil {
		if errors.Is(err, ErrDuplicateCar) {
			return nil, apperrors.NewAppError(400, "car name taken", err)
		}
		return nil, err
	}
	return &car, nil
}

// LookupByName resolves a car by exact name. Unknown names return (nil, nil)
// so ingestion can degrade to a null car reference.
func (s *CatalogService) LookupByName(name string) (*Car, error) {
	return s.repo.GetCarByName(name)
}

// Seed populates the catalog with a small example set on first startup.
// Guarded by the empty-count check so repeated startups never duplicate
// entries.
func (s *CatalogService) Seed() error {
	count, err := s.repo.CountCars()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	sample := []Car{
		{Name: "Falcon GT", Rarity: "Epic", BaseStats: map[string]float64{
			"speed": 780, "acceleration": 95, "nitro_capacity": 100,
		}},
		{Name: "Viper X", Rarity: "Legend", BaseStats: map[string]float64{
			"speed": 820, "acceleration": 92, "nitro_capacity": 110,
		}},
	}
	for i := range sample {
		if err := s.repo.CreateCar(&sample[i]); err != nil {
			return err
		}
	}
	log.Printf("seeded car catalog with %d example cars", len(sample))
	return nil
}
