package cmd

import (
	"tracking/internal/adapters/out/inmemory"
	"tracking/internal/adapters/out/postgres"
	"tracking/internal/adapters/out/postgres/checkpointrepo"
	"tracking/internal/adapters/out/postgres/unitrepo"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires the storage driver into the application use cases.
// A nil gorm connection selects the in-memory reference driver; otherwise
// the postgres driver is used.
type CompositionRoot struct {
	uowFactory     ports.UnitOfWorkFactory
	unitRepo       ports.ShipmentUnitRepository
	checkpointRepo ports.CheckpointRepository
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	if gormDB == nil {
		checkpoints := inmemory.NewMemoryCheckpointRepository()
		units := inmemory.NewMemoryShipmentUnitRepository(checkpoints)
		return CompositionRoot{
			uowFactory:     inmemory.NewMemoryUnitOfWorkFactory(checkpoints, units),
			unitRepo:       units,
			checkpointRepo: checkpoints,
		}
	}

	return CompositionRoot{
		uowFactory:     postgres.NewGormUnitOfWorkFactory(gormDB),
		unitRepo:       unitrepo.NewGormShipmentUnitRepository(gormDB, nil),
		checkpointRepo: checkpointrepo.NewGormCheckpointRepository(gormDB, nil),
	}
}

func (c *CompositionRoot) CreateRegisterCheckpointCommandHandler() commands.RegisterCheckpointCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCheckpointCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateUnitCommandHandler() commands.CreateUnitCommandHandler {
	var f commands.UnitUoWFactory = FuncUnitUoWFactory(func() commands.UnitUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateUnitCommandHandler(f)
}

func (c *CompositionRoot) CreateGetTrackingHistoryQueryHandler() queries.GetTrackingHistoryQueryHandler {
	return queries.NewGetTrackingHistoryQueryHandler(c.unitRepo, c.checkpointRepo)
}

func (c *CompositionRoot) CreateListUnitsByStatusQueryHandler() queries.ListUnitsByStatusQueryHandler {
	return queries.NewListUnitsByStatusQueryHandler(c.unitRepo)
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}

type FuncUnitUoWFactory func() commands.UnitUoW

func (f FuncUnitUoWFactory) Create() commands.UnitUoW {
	return f()
}
