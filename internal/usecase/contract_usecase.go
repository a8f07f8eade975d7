package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"autocover/internal/domain/entities"
	"autocover/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrContractNotFound          = errors.New("contract not found")
	ErrInvalidContractID         = errors.New("invalid contract id")
	ErrInvalidContractFile       = errors.New("contract needs an uploaded file or the placeholder flag")
	ErrContractNotSignable       = errors.New("contract is not awaiting signature")
	ErrMissingConsent            = errors.New("consent is required")
	ErrMissingSignatureName      = errors.New("signature name is required")
	ErrInvalidCardNumber         = errors.New("card number must be 13 to 19 digits")
	ErrInvalidCvv                = errors.New("cvv must be 3 or 4 digits")
	ErrInvalidExpiry             = errors.New("invalid card expiry")
	ErrIncompleteBillingAddress  = errors.New("billing address is incomplete")
	ErrIncompleteShippingAddress = errors.New("shipping address is incomplete")
)

// CreateContractInput selects the document source: an uploaded file URL or
// the standard placeholder document.
type CreateContractInput struct {
	FileURL     string
	Placeholder bool
}

// SignatureInput is the capture submitted by the signer. Card number and
// CVV are validated here and never persisted; only brand, last four and
// expiry make it into the stored snapshot.
type SignatureInput struct {
	Name    string
	Email   string
	Consent bool

	PaymentMethod string
	CardNumber    string
	Cvv           string
	ExpMonth      int
	ExpYear       int
	PaymentNotes  string

	BillingAddress        entities.Address
	ShippingAddress       entities.Address
	ShippingSameAsBilling bool
}

// IContractUseCase drives the contract document lifecycle: atomic
// create-and-send, the guarded sign transition, and the operator-facing
// "latest contract" status read.

type IContractUseCase interface {
	CreateContract(ctx context.Context, quoteID string, in CreateContractInput) (entities.Contract, error)
	Sign(ctx context.Context, contractID string, sig SignatureInput) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	LatestByQuoteID(ctx context.Context, quoteID string) (entities.Contract, error)
}

type ContractUseCase struct {
	repo      interfaces.IContractRepository
	quoteRepo interfaces.IQuoteRepository
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(repo interfaces.IContractRepository, quoteRepo interfaces.IQuoteRepository) *ContractUseCase {
	return &ContractUseCase{repo: repo, quoteRepo: quoteRepo}
}

// CreateContract creates a contract for a quote directly in the sent state;
// creation and delivery are atomic here, there is no operator-visible draft
// step. Re-sending after an upload correction creates a fresh row and voids
// every older contract for the quote that was still awaiting signature, so
// at most one signable contract exists per quote at a time.
func (u *ContractUseCase) CreateContract(ctx context.Context, quoteID string, in CreateContractInput) (entities.Contract, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Contract{}, ErrInvalidQuoteID
	}
	in.FileURL = strings.TrimSpace(in.FileURL)
	if in.FileURL == "" && !in.Placeholder {
		return entities.Contract{}, ErrInvalidContractFile
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Contract{}, err
	}
	if q.ID == "" {
		return entities.Contract{}, ErrQuoteNotFound
	}

	older, err := u.repo.ListByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.Contract{}, err
	}
	for _, old := range older {
		if old.State.Terminal() {
			continue
		}
		old.State = entities.ContractStateVoid
		old.UpdatedAt = time.Now().UTC()
		if _, err := u.repo.Save(ctx, old); err != nil {
			return entities.Contract{}, err
		}
		log.Printf("[contract][usecase] superseded contract voided quote_id=%s contract_id=%s", quoteID, old.ID)
	}

	now := time.Now().UTC()
	c := entities.Contract{
		ID:          uuid.NewString(),
		QuoteID:     quoteID,
		State:       entities.ContractStateSent,
		FileURL:     in.FileURL,
		Placeholder: in.Placeholder,
		SentAt:      now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Contract{}, err
	}
	log.Printf("[contract][usecase] contract sent quote_id=%s contract_id=%s placeholder=%t", quoteID, created.ID, created.Placeholder)
	return created, nil
}

// Sign commits the sent -> signed transition and rolls the quote status up
// to accepted.
//
// Every precondition is checked before anything is written; any failure
// returns a specific reason and leaves the contract untouched. Signing an
// already-signed or void contract is rejected, never silently accepted.
func (u *ContractUseCase) Sign(ctx context.Context, contractID string, sig SignatureInput) (entities.Contract, error) {
	c, err := u.GetByID(ctx, contractID)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.State != entities.ContractStateSent {
		return entities.Contract{}, ErrContractNotSignable
	}

	if !sig.Consent {
		return entities.Contract{}, ErrMissingConsent
	}
	if strings.TrimSpace(sig.Name) == "" {
		return entities.Contract{}, ErrMissingSignatureName
	}

	cardDigits, ok := digits(sig.CardNumber)
	if !ok || len(cardDigits) < 13 || len(cardDigits) > 19 {
		return entities.Contract{}, ErrInvalidCardNumber
	}
	cvvDigits, ok := digits(sig.Cvv)
	if !ok || len(cvvDigits) < 3 || len(cvvDigits) > 4 {
		return entities.Contract{}, ErrInvalidCvv
	}
	if sig.ExpMonth < 1 || sig.ExpMonth > 12 || sig.ExpYear < 2000 {
		return entities.Contract{}, ErrInvalidExpiry
	}

	billing := trimAddress(sig.BillingAddress)
	if !billing.Complete() {
		return entities.Contract{}, ErrIncompleteBillingAddress
	}
	shipping := trimAddress(sig.ShippingAddress)
	if sig.ShippingSameAsBilling {
		shipping = billing
	}
	if !shipping.Complete() {
		return entities.Contract{}, ErrIncompleteShippingAddress
	}

	now := time.Now().UTC()
	c.State = entities.ContractStateSigned
	c.SignedAt = &now
	c.SignerName = strings.TrimSpace(sig.Name)
	c.SignerEmail = strings.TrimSpace(sig.Email)
	c.Consent = true
	c.Payment = entities.PaymentCapture{
		Method:       strings.TrimSpace(sig.PaymentMethod),
		CardBrand:    cardBrand(cardDigits),
		CardLastFour: cardDigits[len(cardDigits)-4:],
		ExpMonth:     sig.ExpMonth,
		ExpYear:      sig.ExpYear,
		Notes:        strings.TrimSpace(sig.PaymentNotes),
	}
	c.BillingAddress = billing
	c.ShippingAddress = shipping
	c.UpdatedAt = now

	signed, err := u.repo.Save(ctx, c)
	if err != nil {
		return entities.Contract{}, err
	}

	if _, err := u.quoteRepo.UpdateStatus(ctx, signed.QuoteID, entities.QuoteStatusAccepted); err != nil {
		// The signature is committed; a failed status roll-up is logged, not fatal.
		log.Printf("[contract][usecase] quote status update failed quote_id=%s err=%v", signed.QuoteID, err)
	}

	log.Printf("[contract][usecase] contract signed contract_id=%s quote_id=%s", signed.ID, signed.QuoteID)
	return signed, nil
}

func (u *ContractUseCase) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

// LatestByQuoteID returns the most recently created contract for a quote;
// that row is what operators see as the quote's signing status.
func (u *ContractUseCase) LatestByQuoteID(ctx context.Context, quoteID string) (entities.Contract, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Contract{}, ErrInvalidQuoteID
	}

	list, err := u.repo.ListByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.Contract{}, err
	}
	if len(list) == 0 {
		return entities.Contract{}, ErrContractNotFound
	}

	latest := list[0]
	for _, c := range list[1:] {
		if c.CreatedAt.After(latest.CreatedAt) {
			latest = c
		}
	}
	return latest, nil
}

// digits strips spaces and dashes and reports whether only digits remain.
func digits(s string) (string, bool) {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
		default:
			return "", false
		}
	}
	return b.String(), b.Len() > 0
}

func cardBrand(cardDigits string) string {
	switch cardDigits[0] {
	case '4':
		return "visa"
	case '5':
		return "mastercard"
	case '3':
		return "amex"
	case '6':
		return "discover"
	}
	return ""
}

func trimAddress(a entities.Address) entities.Address {
	return entities.Address{
		Line1:      strings.TrimSpace(a.Line1),
		Line2:      strings.TrimSpace(a.Line2),
		City:       strings.TrimSpace(a.City),
		State:      strings.TrimSpace(a.State),
		PostalCode: strings.TrimSpace(a.PostalCode),
		Country:    strings.TrimSpace(a.Country),
	}
}
