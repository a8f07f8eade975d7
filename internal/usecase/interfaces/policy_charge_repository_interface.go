package interfaces

import (
	"context"

	"autocover/internal/domain/entities"
)

// IPolicyChargeRepository abstracts DynamoDB persistence for PolicyCharge.
//
// The ledger is append-only: Create inserts, UpdateStatus records a
// provider-reported status change, nothing is ever deleted or rewritten.

type IPolicyChargeRepository interface {
	Create(ctx context.Context, c entities.PolicyCharge) (entities.PolicyCharge, error)
	GetByID(ctx context.Context, id string) (entities.PolicyCharge, error)
	ListByPolicyID(ctx context.Context, policyID string) ([]entities.PolicyCharge, error)
	UpdateStatus(ctx context.Context, id string, status entities.ChargeStatus) (entities.PolicyCharge, error)
}
