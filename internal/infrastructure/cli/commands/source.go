package commands

import (
	"context"

	"github.com/doeshing/smartcmd-go/internal/app"
)

// ContainerSource returns the shared container, building it on first use.
type ContainerSource func(ctx context.Context) (*app.Container, error)
