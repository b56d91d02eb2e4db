package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/asphaltlabs/asphalt-companion/internal/apperrors"
)

func TestCatalogService_AddCar(t *testing.T) {
	mockRepo := &MockCarRepository{}
	service := NewCatalogService(mockRepo)

	mockRepo.On("CreateCar", mock.AnythingOfType("*catalog.Car")).Return(nil)

	car, err := service.AddCar(CarRequest{
		Name:      "Falcon GT",
		Rarity:    "Epic",
		BaseStats: map[string]float64{"speed": 780},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Falcon GT", car.Name)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_AddCar_Duplicate(t *testing.T) {
	mockRepo := &MockCarRepository{}
	service := NewCatalogService(mockRepo)

	mockRepo.On("CreateCar", mock.AnythingOfType("*catalog.Car")).Return(ErrDuplicateCar)

	_, err := service.AddCar(CarRequest{Name: "Falcon GT"})
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_AddCar_EmptyName(t *testing.T) {
	mockRepo := &MockCarRepository{}
	service := NewCatalogService(mockRepo)

	_, err := service.AddCar(CarRequest{})
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestCatalogService_Seed_EmptyCatalog(t *testing.T) {
	mockRepo := &MockCarRepository{}
	service := NewCatalogService(mockRepo)

	mockRepo.On("CountCars").Return(int64(0), nil)
	mockRepo.On("CreateCar", mock.AnythingOfType("*catalog.Car")).Return(nil).Times(2)

	assert.NoError(t, service.Seed())
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_Seed_AlreadyPopulated(t *testing.T) {
	mockRepo := &MockCarRepository{}
	service := NewCatalogService(mockRepo)

	mockRepo.On("CountCars").Return(int64(2), nil)

	assert.NoError(t, service.Seed())
	mockRepo.AssertNotCalled(t, "CreateCar", mock.Anything)
}
