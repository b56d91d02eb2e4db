package match

import (
	"github.com/stretchr/testify/mock"

	"github.com/asphaltlabs/asphalt-companion/internal/catalog"
)

type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) SaveBatch(records []*Match) error {
	args := m.Called(records)
	return args.Error(0)
}

func (m *MockMatchRepository) ListByUser(userID uint) ([]Match, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Match), args.Error(1)
}

type MockCarResolver struct {
	mock.Mock
}

func (m *MockCarResolver) LookupByName(name string) (*catalog.Car, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Car), args.Error(1)
}
