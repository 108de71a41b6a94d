package laundry_rate

import (
	"fmt"

	"laundry/internal/entities"
	"laundry/internal/service"
)

const (
	regularRate uint64 = 6
	expressRate uint64 = 10
)

// RateFactory отдаёт цену за единицу веса для пакета услуг.
type RateFactory struct{}

func New() *RateFactory {
	return &RateFactory{}
}

func (f *RateFactory) GetRate(pkg entities.OrderPackage) (uint64, error) {
	switch pkg {
	case entities.PackageRegular:
		return regularRate, nil
	case entities.PackageExpress:
		return expressRate, nil
	default:
		return 0, fmt.Errorf("%w: %q", service.ErrInvalidPackage, pkg)
	}
}
