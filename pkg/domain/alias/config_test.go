package alias_test

import (
	"testing"

	"github.com/amirasaad/aliasregistry/pkg/domain"
	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder(t *testing.T) {
	t.Parallel()
	token := alias.ContractRef{Address: "secret1token", CodeHash: "h1"}
	dest := alias.ContractRef{Address: "secret1dest", CodeHash: "h2"}

	t.Run("defaults", func(t *testing.T) {
		cfg, err := alias.NewConfig().Build()
		require.NoError(t, err)
		assert.Equal(t, uint16(65535), cfg.MaxAliasSize)
		assert.False(t, cfg.Gated())
	})

	t.Run("size bounds", func(t *testing.T) {
		for _, ok := range []int{1, 10, 65535} {
			_, err := alias.NewConfig().WithMaxAliasSize(ok).Build()
			require.NoError(t, err, "size %d", ok)
		}
		for _, bad := range []int{0, -5, 65536, 1 << 20} {
			_, err := alias.NewConfig().WithMaxAliasSize(bad).Build()
			require.ErrorIs(t, err, alias.ErrInvalidMaxSize, "size %d", bad)
		}
	})

	t.Run("payment gate", func(t *testing.T) {
		cfg, err := alias.NewConfig().WithTokenContract(token).WithPaymentDestination(dest).Build()
		require.NoError(t, err)
		assert.True(t, cfg.Gated())
		assert.Equal(t, token, *cfg.TokenContract)

		_, err = alias.NewConfig().WithTokenContract(token).Build()
		require.ErrorIs(t, err, alias.ErrInvalidPaymentConfig)
		_, err = alias.NewConfig().WithPaymentDestination(dest).Build()
		require.ErrorIs(t, err, alias.ErrInvalidPaymentConfig)
		_, err = alias.NewConfig().
			WithTokenContract(alias.ContractRef{}).
			WithPaymentDestination(dest).
			Build()
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("nil config is not gated", func(t *testing.T) {
		var cfg *alias.Config
		assert.False(t, cfg.Gated())
	})
}

func TestInitParams_Config(t *testing.T) {
	t.Parallel()
	size := 32
	cfg, err := alias.InitParams{MaxAliasSize: &size}.Config()
	require.NoError(t, err)
	assert.Equal(t, uint16(32), cfg.MaxAliasSize)

	zero := 0
	_, err = alias.InitParams{MaxAliasSize: &zero}.Config()
	require.ErrorIs(t, err, alias.ErrInvalidMaxSize)
}
