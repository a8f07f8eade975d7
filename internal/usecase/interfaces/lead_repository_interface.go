package interfaces

import (
	"context"

	"autocover/internal/domain/entities"
)

// ILeadRepository abstracts DynamoDB persistence for Lead.

type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	UpdateStage(ctx context.Context, id string, stage entities.LeadStage) (entities.Lead, error)
	AppendNote(ctx context.Context, id string, note entities.Note) (entities.Lead, error)
}
