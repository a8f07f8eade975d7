package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"autocover/internal/domain/entities"
	"autocover/internal/usecase/interfaces"
)

var (
	ErrPolicyNotFound         = errors.New("policy not found")
	ErrInvalidPolicyID        = errors.New("invalid policy id")
	ErrBillingProfileNotFound = errors.New("billing profile not found")
	ErrChargeNotFound         = errors.New("charge not found")
	ErrInvalidChargeID        = errors.New("invalid charge id")
	ErrInvalidChargeAmount    = errors.New("invalid charge amount")
	ErrInvalidChargePayload   = errors.New("invalid charge payload")
	ErrGatewayNotConfigured   = errors.New("payment gateway not configured")
)

// UpsertProfileInput replaces a policy's billing profile wholesale; there is
// no field-level merge and no history.
type UpsertProfileInput struct {
	PaymentMethod     string
	AccountName       string
	AccountIdentifier string
	CardBrand         string
	CardLastFour      string
	CardExpiryMonth   int
	CardExpiryYear    int
	BillingZip        string
	AutopayEnabled    bool
	Notes             string
}

// IBillingUseCase covers the billing profile and the per-policy charge
// ledger.

type IBillingUseCase interface {
	UpsertProfile(ctx context.Context, policyID string, in UpsertProfileInput) (entities.BillingProfile, error)
	GetProfile(ctx context.Context, policyID string) (entities.BillingProfile, error)
	RecordCharge(ctx context.Context, policyID string, amountCents int64, description string, payload json.RawMessage) (entities.PolicyCharge, error)
	ListCharges(ctx context.Context, policyID string) ([]entities.PolicyCharge, error)
	ApplyProviderStatus(ctx context.Context, chargeID string, providerStatus string) (entities.PolicyCharge, error)
}

type BillingUseCase struct {
	profileRepo interfaces.IBillingProfileRepository
	chargeRepo  interfaces.IPolicyChargeRepository
	policyRepo  interfaces.IPolicyRepository
	gateway     interfaces.IPaymentGateway
}

var _ IBillingUseCase = (*BillingUseCase)(nil)

func NewBillingUseCase(
	profileRepo interfaces.IBillingProfileRepository,
	chargeRepo interfaces.IPolicyChargeRepository,
	policyRepo interfaces.IPolicyRepository,
	gateway interfaces.IPaymentGateway,
) *BillingUseCase {
	return &BillingUseCase{profileRepo: profileRepo, chargeRepo: chargeRepo, policyRepo: policyRepo, gateway: gateway}
}

// UpsertProfile stores the payment method for a policy. Card data is masked
// on the way in: only brand and last four survive, even when a caller
// pastes a longer identifier into the last-four field. Autopay is recorded
// as a plain preference; scheduling recurring charges is the external
// billing collaborator's job.
func (u *BillingUseCase) UpsertProfile(ctx context.Context, policyID string, in UpsertProfileInput) (entities.BillingProfile, error) {
	policyID = strings.TrimSpace(policyID)
	if policyID == "" {
		return entities.BillingProfile{}, ErrInvalidPolicyID
	}
	if err := u.ensurePolicy(ctx, policyID); err != nil {
		return entities.BillingProfile{}, err
	}

	lastFour := in.CardLastFour
	if d, ok := digits(lastFour); ok && len(d) > 4 {
		lastFour = d[len(d)-4:]
	}

	now := time.Now().UTC()
	p := entities.BillingProfile{
		PolicyID:          policyID,
		PaymentMethod:     strings.TrimSpace(in.PaymentMethod),
		AccountName:       strings.TrimSpace(in.AccountName),
		AccountIdentifier: strings.TrimSpace(in.AccountIdentifier),
		CardBrand:         strings.ToLower(strings.TrimSpace(in.CardBrand)),
		CardLastFour:      strings.TrimSpace(lastFour),
		CardExpiryMonth:   in.CardExpiryMonth,
		CardExpiryYear:    in.CardExpiryYear,
		BillingZip:        strings.TrimSpace(in.BillingZip),
		AutopayEnabled:    in.AutopayEnabled,
		Notes:             strings.TrimSpace(in.Notes),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	return u.profileRepo.Put(ctx, p)
}

func (u *BillingUseCase) GetProfile(ctx context.Context, policyID string) (entities.BillingProfile, error) {
	policyID = strings.TrimSpace(policyID)
	if policyID == "" {
		return entities.BillingProfile{}, ErrInvalidPolicyID
	}

	p, err := u.profileRepo.GetByPolicyID(ctx, policyID)
	if err != nil {
		return entities.BillingProfile{}, err
	}
	if p.PolicyID == "" {
		return entities.BillingProfile{}, ErrBillingProfileNotFound
	}
	return p, nil
}

// RecordCharge hands a billing attempt to the payment gateway and appends
// the outcome to the policy's ledger. The stored status is whatever the
// provider reported, mapped onto the ledger enum; this use case never
// invents or advances a status on its own.
func (u *BillingUseCase) RecordCharge(ctx context.Context, policyID string, amountCents int64, description string, payload json.RawMessage) (entities.PolicyCharge, error) {
	policyID = strings.TrimSpace(policyID)
	if policyID == "" {
		return entities.PolicyCharge{}, ErrInvalidPolicyID
	}
	if amountCents <= 0 {
		return entities.PolicyCharge{}, ErrInvalidChargeAmount
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return entities.PolicyCharge{}, ErrInvalidChargePayload
	}
	if u.gateway == nil {
		return entities.PolicyCharge{}, ErrGatewayNotConfigured
	}
	if err := u.ensurePolicy(ctx, policyID); err != nil {
		return entities.PolicyCharge{}, err
	}

	// Reconciliation hints for the provider: external_reference ties the
	// provider-side payment back to the policy, and the amount the
	// provider sees is always the ledger amount, in decimal major units.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = policyID
		}
		if _, ok := reqMap["description"]; !ok && description != "" {
			reqMap["description"] = description
		}
		reqMap["transaction_amount"] = float64(amountCents) / 100
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	log.Printf("[billing][usecase] charge start policy_id=%s amount_cents=%d", policyID, amountCents)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[billing][usecase] gateway failed policy_id=%s err=%v", policyID, err)
		return entities.PolicyCharge{}, err
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[billing][usecase] provider response unmarshal failed policy_id=%s err=%v", policyID, err)
	}

	c := entities.PolicyCharge{
		ID:                 chargeID(providerPaymentID),
		PolicyID:           policyID,
		AmountCents:        amountCents,
		Status:             mapProviderStatus(providerStatus),
		Description:        strings.TrimSpace(description),
		ChargedAt:          time.Now().UTC(),
		ProviderPaymentID:  providerPaymentID,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.chargeRepo.Create(ctx, c)
	if err != nil {
		log.Printf("[billing][usecase] charge create failed policy_id=%s charge_id=%s err=%v", policyID, c.ID, err)
		return entities.PolicyCharge{}, err
	}
	log.Printf("[billing][usecase] charge recorded policy_id=%s charge_id=%s status=%s", policyID, created.ID, created.Status)
	return created, nil
}

// ListCharges returns the ledger most-recent-first by ChargedAt.
func (u *BillingUseCase) ListCharges(ctx context.Context, policyID string) ([]entities.PolicyCharge, error) {
	policyID = strings.TrimSpace(policyID)
	if policyID == "" {
		return nil, ErrInvalidPolicyID
	}

	charges, err := u.chargeRepo.ListByPolicyID(ctx, policyID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(charges, func(i, j int) bool {
		return charges[i].ChargedAt.After(charges[j].ChargedAt)
	})
	return charges, nil
}

// ApplyProviderStatus records a status the external collaborator reported
// for an existing charge (e.g. a refund notification).
func (u *BillingUseCase) ApplyProviderStatus(ctx context.Context, chargeID string, providerStatus string) (entities.PolicyCharge, error) {
	chargeID = strings.TrimSpace(chargeID)
	if chargeID == "" {
		return entities.PolicyCharge{}, ErrInvalidChargeID
	}

	existing, err := u.chargeRepo.GetByID(ctx, chargeID)
	if err != nil {
		return entities.PolicyCharge{}, err
	}
	if existing.ID == "" {
		return entities.PolicyCharge{}, ErrChargeNotFound
	}

	return u.chargeRepo.UpdateStatus(ctx, chargeID, mapProviderStatus(providerStatus))
}

func (u *BillingUseCase) ensurePolicy(ctx context.Context, policyID string) error {
	p, err := u.policyRepo.GetByID(ctx, policyID)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrPolicyNotFound
	}
	return nil
}

func chargeID(providerPaymentID string) string {
	if providerPaymentID != "" {
		return providerPaymentID
	}
	return fmt.Sprintf("charge-%d", time.Now().UTC().UnixNano())
}

// mapProviderStatus folds provider status vocabulary onto the ledger enum.
func mapProviderStatus(providerStatus string) entities.ChargeStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "paid", "accredited":
		return entities.ChargeStatusPaid
	case "in_process", "in_mediation", "processing", "authorized":
		return entities.ChargeStatusProcessing
	case "rejected", "cancelled", "failed":
		return entities.ChargeStatusFailed
	case "refunded", "charged_back":
		return entities.ChargeStatusRefunded
	}
	return entities.ChargeStatusPending
}
