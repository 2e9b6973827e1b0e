// Package alias holds the registry's core domain model: identities, alias
// records, the registry configuration and the rules that gate mutation.
package alias

import (
	"strings"
	"time"

	"github.com/amirasaad/aliasregistry/pkg/domain"
)

var (
	// ErrEmptyAlias is returned when an alias is blank after normalization.
	ErrEmptyAlias = domain.New(domain.KindValidation, "empty_alias", "alias must not be empty")
	// ErrTooLong is returned when a normalized alias exceeds the configured byte length.
	ErrTooLong = domain.New(domain.KindValidation, "too_long", "alias exceeds maximum length")
	// ErrBadSearchType is returned for an unknown search discriminator.
	ErrBadSearchType = domain.New(domain.KindValidation, "bad_search_type", "invalid search type")
	// ErrMissingOwner is returned when a record would be created without an owner.
	ErrMissingOwner = domain.New(domain.KindValidation, "missing_owner", "owner identity is required")

	// ErrAliasTaken is returned when the normalized alias already has a record.
	ErrAliasTaken = domain.New(domain.KindConflict, "alias_taken", "alias already taken")
	// ErrOwnerHasAlias is returned when the owner already holds an alias.
	ErrOwnerHasAlias = domain.New(domain.KindConflict, "owner_already_has_alias", "owner already has an alias")

	// ErrAliasNotFound is returned when no record exists for an alias or owner.
	ErrAliasNotFound = domain.New(domain.KindNotFound, "alias", "alias not found")

	// ErrNotOwner is returned when the acting identity does not own the record.
	ErrNotOwner = domain.New(domain.KindUnauthorized, "unauthorized", "caller is not the alias owner")
)

// Identity is an account identifier, e.g. a bech32 address.
type Identity string

// String implements fmt.Stringer.
func (i Identity) String() string {
	return string(i)
}

// IsZero reports whether the identity is empty.
func (i Identity) IsZero() bool {
	return strings.TrimSpace(string(i)) == ""
}

// Record is a live alias binding. It is created once and never mutated; it
// is deleted only by its owner.
type Record struct {
	Alias     string    `json:"alias"`
	Owner     Identity  `json:"owner"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Normalize returns the canonical storage key for a submitted alias:
// surrounding whitespace trimmed, then lowercased.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidateAlias normalizes raw and checks it against the configured limits.
func ValidateAlias(raw string, cfg *Config) (string, error) {
	normalized := Normalize(raw)
	if normalized == "" {
		return "", ErrEmptyAlias
	}
	if len(normalized) > int(cfg.MaxAliasSize) {
		return "", ErrTooLong
	}
	return normalized, nil
}

// NewRecord validates the inputs for a new binding and returns the record to
// persist. Existence checks are the caller's responsibility.
func NewRecord(raw string, owner Identity, avatarURL *string, cfg *Config) (*Record, error) {
	normalized, err := ValidateAlias(raw, cfg)
	if err != nil {
		return nil, err
	}
	if owner.IsZero() {
		return nil, ErrMissingOwner
	}
	return &Record{
		Alias:     normalized,
		Owner:     owner,
		AvatarURL: avatarURL,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Authorize compares the acting identity with the one required by a record.
// An empty identity on either side never authorizes.
func Authorize(acting, required Identity) error {
	if acting.IsZero() || required.IsZero() {
		return ErrNotOwner
	}
	if acting != required {
		return ErrNotOwner
	}
	return nil
}
