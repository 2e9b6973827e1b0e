package registry

// ContractInput identifies a contract by address and code hash.
type ContractInput struct {
	Address  string `json:"address" validate:"required"`
	CodeHash string `json:"contract_hash" validate:"required"`
}

// InitInput is the request body for POST /registry/init.
type InitInput struct {
	MaxAliasSize       *int           `json:"max_alias_size,omitempty"`
	TokenContract      *ContractInput `json:"token_contract,omitempty"`
	PaymentDestination *ContractInput `json:"payment_destination,omitempty"`
}

// CreateInput is the request body for POST /aliases.
type CreateInput struct {
	Alias     string  `json:"alias" validate:"required"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// ReceiveInput is the request body for POST /receive. The sender is the
// authenticated caller.
type ReceiveInput struct {
	From   string `json:"from" validate:"required"`
	Amount string `json:"amount" validate:"required"`
	Msg    string `json:"msg" validate:"required"`
}
