package interfaces

import (
	"context"

	"autocover/internal/domain/entities"
)

// IBillingProfileRepository abstracts DynamoDB persistence for
// BillingProfile. Put replaces the row wholesale; the profile keeps no
// history.

type IBillingProfileRepository interface {
	Put(ctx context.Context, p entities.BillingProfile) (entities.BillingProfile, error)
	GetByPolicyID(ctx context.Context, policyID string) (entities.BillingProfile, error)
}
