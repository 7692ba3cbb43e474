package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/a2z-projetos/app-codigos-projeto/internal/codigo"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository/memory"
)

func TestDefault(t *testing.T) {
	dict, err := Default()
	require.NoError(t, err)

	for _, c := range codigo.Categories() {
		assert.NotEmpty(t, dict[c], "categoria %s sem opções padrão", c.Key())
	}

	contractors := map[string]string{}
	for _, opt := range dict[codigo.CategoryContratante] {
		contractors[opt.Value] = opt.Label
	}
	assert.Equal(t, "IGU - IGUÁ", contractors["IGU"])
	assert.Equal(t, "CAH - CARVALHO HOSKEN", contractors["CAH"])
	assert.Len(t, dict[codigo.CategoryTipoDocumento], 14)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("cores:\n  - value: A\n    label: A - AZUL\n"))
	assert.ErrorIs(t, err, codigo.ErrUnknownCategory)

	_, err = Parse([]byte("etapas:\n  - value: A\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("etapas: ["))
	assert.Error(t, err)
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	dict, err := Default()
	require.NoError(t, err)

	total := 0
	for _, opts := range dict {
		total += len(opts)
	}

	first, err := Seed(ctx, store, dict, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, total, first.Created)
	assert.Zero(t, first.Skipped)

	second, err := Seed(ctx, store, dict, zap.NewNop())
	require.NoError(t, err)
	assert.Zero(t, second.Created)
	assert.Equal(t, total, second.Skipped)
}

func TestSeedKeepsDeactivated(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	dict, err := Default()
	require.NoError(t, err)

	_, err = Seed(ctx, store, dict, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.DeactivateOption(ctx, codigo.CategoryLocalidade, "SE"))

	_, err = Seed(ctx, store, dict, zap.NewNop())
	require.NoError(t, err)

	opts, err := store.ListOptions(ctx, codigo.CategoryLocalidade)
	require.NoError(t, err)
	for _, opt := range opts {
		if opt.Value == "SE" {
			assert.False(t, opt.Active, "seed não deve reativar opção desativada")
		}
	}
}
