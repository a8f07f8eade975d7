package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"autocover/internal/domain/entities"
	"autocover/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound     = errors.New("lead not found")
	ErrInvalidLeadID    = errors.New("invalid lead id")
	ErrInvalidLeadName  = errors.New("invalid lead name")
	ErrInvalidLeadStage = errors.New("invalid lead stage")
	ErrInvalidLeadNote  = errors.New("invalid lead note")
	ErrStageRegression  = errors.New("lead stage cannot move backwards")
)

// ILeadUseCase exposes lead intake operations.
//
// Stage changes respect the pipeline ordering: a lead never moves backwards
// through new -> contacted -> quoted -> funded. Disposition labels (dnc,
// not-interested) may be applied from any stage and are terminal for the
// pipeline.

type ILeadUseCase interface {
	CreateLead(ctx context.Context, name, email, phone string, vehicle entities.Vehicle) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	UpdateStage(ctx context.Context, id string, stage entities.LeadStage) (entities.Lead, error)
	AddNote(ctx context.Context, id string, text, author string) (entities.Lead, error)
}

type LeadUseCase struct {
	repo interfaces.ILeadRepository
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

func (u *LeadUseCase) CreateLead(ctx context.Context, name, email, phone string, vehicle entities.Vehicle) (entities.Lead, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Lead{}, ErrInvalidLeadName
	}

	now := time.Now().UTC()
	l := entities.Lead{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     strings.TrimSpace(email),
		Phone:     strings.TrimSpace(phone),
		Stage:     entities.LeadStageNew,
		Vehicle:   vehicle,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, l)
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

func (u *LeadUseCase) UpdateStage(ctx context.Context, id string, stage entities.LeadStage) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	if !stage.IsValid() {
		return entities.Lead{}, ErrInvalidLeadStage
	}

	l, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}

	if !stage.IsDisposition() && !l.Stage.IsDisposition() && stage.Rank() < l.Stage.Rank() {
		return entities.Lead{}, ErrStageRegression
	}

	return u.repo.UpdateStage(ctx, id, stage)
}

func (u *LeadUseCase) AddNote(ctx context.Context, id string, text, author string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.Lead{}, ErrInvalidLeadNote
	}

	if _, err := u.GetByID(ctx, id); err != nil {
		return entities.Lead{}, err
	}

	note := entities.Note{
		Text:      text,
		Author:    strings.TrimSpace(author),
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.AppendNote(ctx, id, note)
}
