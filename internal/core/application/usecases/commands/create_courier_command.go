package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand registers a courier profile under a freshly generated
// id, which callers read back through CourierID once the handler succeeds.
type CreateCourierCommand struct {
	courierID kernel.UUID
	name      string

	guard guard.ConstructorGuard
}

func NewCreateCourierCommand(name string) (CreateCourierCommand, error) {
	trimmed, err := requireText("name", name)
	if err != nil {
		return CreateCourierCommand{}, err
	}

	return CreateCourierCommand{
		courierID: kernel.NewUUID(),
		name:      trimmed,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

func (c CreateCourierCommand) CourierID() kernel.UUID { return c.courierID }
func (c CreateCourierCommand) Name() string           { return c.name }
