package interfaces

import (
	"context"

	"autocover/internal/domain/entities"
)

// IContractRepository abstracts DynamoDB persistence for Contract.

type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Contract, error)
	Save(ctx context.Context, c entities.Contract) (entities.Contract, error)
}
