// Package payment implements the gate that unlocks alias creation on receipt
// of an exact token payment relayed by the configured token contract.
package payment

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/amirasaad/aliasregistry/pkg/domain"
	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/shopspring/decimal"
)

// FixedPrice is the exact amount, in token base units, that buys one alias.
var FixedPrice = decimal.NewFromInt(1_000_000)

var (
	// ErrWrongToken is returned when a notification does not come from the configured token contract.
	ErrWrongToken = domain.New(domain.KindPayment, "wrong_token", "notification sender is not the registered token contract")
	// ErrWrongAmount is returned when the received amount differs from FixedPrice.
	ErrWrongAmount = domain.New(domain.KindPayment, "wrong_amount", "received amount does not match the alias price")
	// ErrPaymentRequired is returned for direct creation while the gate is enabled.
	ErrPaymentRequired = domain.New(domain.KindPayment, "payment_required", "alias creation requires a token payment")
	// ErrGateDisabled is returned for payment notifications when no token contract is configured.
	ErrGateDisabled = domain.New(domain.KindPayment, "gate_disabled", "payment gate is not configured")
	// ErrInvalidPayload is returned when the notification payload is not a creation request.
	ErrInvalidPayload = domain.New(domain.KindValidation, "invalid_payload", "payload is not a valid create request")
)

// Notification is the "funds received" callback forwarded by a token contract.
type Notification struct {
	// Sender is the contract that delivered the notification.
	Sender alias.Identity
	// From is the account that paid, and becomes the alias owner.
	From   alias.Identity
	Amount decimal.Decimal
	// Payload is the base64 encoded nested request.
	Payload string
}

// CreateRequest is the nested request carried in a notification payload.
type CreateRequest struct {
	Alias     string  `json:"alias"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

type receiveMsg struct {
	Create *CreateRequest `json:"create"`
}

// Transfer instructs the token contract to move funds to a recipient. It is
// emitted with the operation's result and executed by the host afterwards.
type Transfer struct {
	Contract  alias.ContractRef `json:"contract"`
	Recipient alias.ContractRef `json:"recipient"`
	Amount    decimal.Decimal   `json:"amount"`
	Memo      string            `json:"memo,omitempty"`
}

// Verify checks a notification against the configured gate and returns the
// creation request it carries. Checks run in order: sender, amount, payload.
func Verify(cfg *alias.Config, n Notification) (*CreateRequest, error) {
	if !cfg.Gated() {
		return nil, ErrGateDisabled
	}
	if n.Sender != cfg.TokenContract.Address {
		return nil, ErrWrongToken
	}
	if !n.Amount.Equal(FixedPrice) {
		return nil, ErrWrongAmount
	}
	return DecodePayload(n.Payload)
}

// DecodePayload decodes a base64 JSON payload of the form {"create":{...}}.
func DecodePayload(payload string) (*CreateRequest, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return nil, ErrInvalidPayload
	}
	var msg receiveMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, ErrInvalidPayload
	}
	if msg.Create == nil {
		return nil, ErrInvalidPayload
	}
	return msg.Create, nil
}

// EncodePayload is the inverse of DecodePayload.
func EncodePayload(req CreateRequest) (string, error) {
	raw, err := json.Marshal(receiveMsg{Create: &req})
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Forward builds the instruction moving the full received amount to the
// configured payment destination.
func Forward(cfg *alias.Config, n Notification, aliasName string) Transfer {
	return Transfer{
		Contract:  *cfg.TokenContract,
		Recipient: *cfg.PaymentDestination,
		Amount:    n.Amount,
		Memo:      "alias:" + aliasName,
	}
}
