package alias

import "strings"

// SearchType selects the index a search runs against.
type SearchType string

const (
	// SearchByAlias resolves a record from its alias.
	SearchByAlias SearchType = "alias"
	// SearchByAddress resolves a record from its owner identity.
	SearchByAddress SearchType = "address"
)

// ParseSearchType validates a search discriminator.
func ParseSearchType(s string) (SearchType, error) {
	switch SearchType(strings.TrimSpace(s)) {
	case SearchByAlias:
		return SearchByAlias, nil
	case SearchByAddress:
		return SearchByAddress, nil
	default:
		return "", ErrBadSearchType
	}
}
