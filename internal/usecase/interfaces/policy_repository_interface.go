package interfaces

import (
	"context"

	"autocover/internal/domain/entities"
)

// IPolicyRepository abstracts DynamoDB persistence for Policy.
//
// Create must be atomic with the "policy already exists for this lead"
// check: the table keys policies by lead id and the put carries an
// attribute_not_exists condition, so concurrent converts cannot both
// insert. When the condition fails, Create returns the already-stored
// policy with created == false.

type IPolicyRepository interface {
	Create(ctx context.Context, p entities.Policy) (stored entities.Policy, created bool, err error)
	GetByID(ctx context.Context, id string) (entities.Policy, error)
	GetByLeadID(ctx context.Context, leadID string) (entities.Policy, error)
}
