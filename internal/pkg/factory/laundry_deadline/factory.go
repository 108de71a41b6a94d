package laundry_deadline

import (
	"time"

	"laundry/internal/entities"
)

const (
	regularDuration = 24 * time.Hour
	expressDuration = 4 * time.Hour
)

type LaundryDeadlineFactory struct{}

func New() *LaundryDeadlineFactory {
	return &LaundryDeadlineFactory{}
}

func (f *LaundryDeadlineFactory) CalculateDeadline(pkg entities.OrderPackage, baseTime time.Time) time.Time {
	resultTime := baseTime
	switch pkg {
	case entities.PackageExpress:
		resultTime = resultTime.Add(expressDuration)
	case entities.PackageRegular:
		resultTime = resultTime.Add(regularDuration)
	default:
		resultTime = resultTime.Add(regularDuration)
	}

	return resultTime
}
