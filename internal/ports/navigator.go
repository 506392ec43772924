package ports

import (
	"context"

	"github.com/bnema/nirogya-cli/internal/domain"
)

// Navigator receives a resolved destination. How it gets there is up to the host.
type Navigator interface {
	Navigate(ctx context.Context, destination domain.Destination) error
}
