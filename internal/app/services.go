package app

import (
	"go.uber.org/fx"

	"github.com/trimsy-app/trimsy_backend/internal/service/availability"
	"github.com/trimsy-app/trimsy_backend/internal/service/booking"
	"github.com/trimsy-app/trimsy_backend/internal/service/loyalty"
	"github.com/trimsy-app/trimsy_backend/internal/service/schedule"
	"github.com/trimsy-app/trimsy_backend/internal/store"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAvailabilityService,
		ProvideBookingService,
		ProvideLoyaltyService,
		ProvideScheduleService,
	),
)

func ProvideAvailabilityService(db *store.Store) availability.Service {
	return availability.New(db)
}

func ProvideBookingService(db *store.Store, loyaltySvc loyalty.Service) booking.Service {
	return booking.New(db, loyaltySvc)
}

func ProvideLoyaltyService(db *store.Store) loyalty.Service {
	return loyalty.New(db)
}

func ProvideScheduleService(db *store.Store) schedule.Service {
	return schedule.New(db)
}
