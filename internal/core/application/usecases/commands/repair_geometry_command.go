package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRepairGeometryCommandIsNotConstructed = errors.New(
	"RepairGeometryCommand must be created via NewRepairGeometryCommand constructor",
)

// RepairGeometryCommand asks for one batch of background geometry repair.
type RepairGeometryCommand struct {
	batch int

	guard guard.ConstructorGuard
}

func NewRepairGeometryCommand(batch int) (RepairGeometryCommand, error) {
	if batch <= 0 {
		return RepairGeometryCommand{}, errs.NewValueIsOutOfRangeError("batch", batch, 1, "unbounded")
	}
	return RepairGeometryCommand{batch: batch, guard: guard.NewConstructorGuard()}, nil
}

func (c RepairGeometryCommand) Validate() error {
	return c.guard.Validate(ErrRepairGeometryCommandIsNotConstructed)
}

func (c RepairGeometryCommand) Batch() int { return c.batch }
