package catalog

import (
	"errors"

	"gorm.io/gorm"
)

var ErrDuplicateCar = errors.New("car already exists")

type CarRepository interface {
	CreateCar(car *Car) error
	GetCarByName(name string) (*Car, error)
	CountCars() (int64, error)
}

type GormCarRepository struct {
	db *gorm.DB
}

func NewGormCarRepository(db *gorm.DB) *GormCarRepository {
	return &GormCarRepository{db: db}
}

func (r *GormCarRepository) CreateCar(car *Car) error {
	// name is the only unique column, so the index violation is unambiguous
	if err := r.db.Create(car).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCar
		}
		return err
	}
	return nil
}

func (r *GormCarRepository) GetCarByName(name string) (*Car, error) {
	var c Car
	result := r.db.Where("name = ?", name).First(&c)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return &c, nil
}

func (r *GormCarRepository) CountCars() (int64, error) {
	var count int64
	if err := r.db.Model(&Car{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
