package repository

import (
	"context"

	"github.com/dskyberg/instance-count/internal/domain/entity"
)

// InventoryRepository defines the cloud inventory queries a report needs.
type InventoryRepository interface {
	// GetAccountID returns the account the credentials belong to.
	GetAccountID(ctx context.Context) (string, error)

	// ListResources returns the running resources of a family.
	ListResources(ctx context.Context, family entity.Family) ([]entity.Resource, error)

	// ListReservations returns the active reservations of a family.
	ListReservations(ctx context.Context, family entity.Family) ([]entity.Reservation, error)
}
