package catalog

import (
	"github.com/stretchr/testify/mock"
)

type MockCarRepository struct {
	mock.Mock
}

func (m *MockCarRepository) CreateCar(car *Car) error {
	args := m.Called(car)
	return args.Error(0)
}

func (m *MockCarRepository) GetCarByName(name string) (*Car, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Car), args.Error(1)
}

func (m *MockCarRepository) CountCars() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
