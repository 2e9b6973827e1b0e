package events

import (
	"time"

	"github.com/google/uuid"
)

// TokenTransferRequested carries an outgoing transfer instruction for the
// token contract. Amount is a decimal string in token base units.
type TokenTransferRequested struct {
	ID                uuid.UUID `json:"id"`
	TokenAddress      string    `json:"token_address"`
	TokenCodeHash     string    `json:"token_code_hash"`
	RecipientAddress  string    `json:"recipient_address"`
	RecipientCodeHash string    `json:"recipient_code_hash,omitempty"`
	Amount            string    `json:"amount"`
	Memo              string    `json:"memo,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
}

func (e TokenTransferRequested) Type() string { return EventTypeTokenTransferRequested.String() }

// ReceiverRegistrationRequested asks the token contract to call back the
// registry whenever it receives funds.
type ReceiverRegistrationRequested struct {
	ID            uuid.UUID `json:"id"`
	TokenAddress  string    `json:"token_address"`
	TokenCodeHash string    `json:"token_code_hash"`
	Timestamp     time.Time `json:"timestamp"`
}

func (e ReceiverRegistrationRequested) Type() string {
	return EventTypeReceiverRegistrationRequested.String()
}
