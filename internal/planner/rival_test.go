package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubmanager/internal/domain"
)

func registry() []domain.Opponent {
	return []domain.Opponent{
		{Name: "Boca Juniors", CrestURL: "https://cdn/boca.png"},
		{Name: "River Plate"},
	}
}

func TestResolveRivalExactMatch(t *testing.T) {
	res := ResolveRival("Partido vs Boca Juniors", registry())
	require.True(t, res.Found)
	assert.Equal(t, "Boca Juniors", res.Opponent.Name)
	assert.Equal(t, "Boca Juniors", res.Candidate)
}

func TestResolveRivalSubstringMatch(t *testing.T) {
	res := ResolveRival("vs. boca", registry())
	require.True(t, res.Found)
	assert.Equal(t, "Boca Juniors", res.Opponent.Name)
}

func TestResolveRivalNotFound(t *testing.T) {
	res := ResolveRival("vs Racing", registry())
	assert.False(t, res.Found)
	assert.Equal(t, "Racing", res.Candidate)
}

func TestResolveRivalConnectorVariants(t *testing.T) {
	for _, text := range []string{
		"amistoso vs River Plate",
		"amistoso vs. River Plate",
		"amistoso v. River Plate",
		"amistoso contra River Plate",
	} {
		res := ResolveRival(text, registry())
		require.True(t, res.Found, "text %q", text)
		assert.Equal(t, "River Plate", res.Opponent.Name)
	}
}

func TestResolveRivalLastConnectorWins(t *testing.T) {
	res := ResolveRival("repaso vs presión alta vs River Plate", registry())
	require.True(t, res.Found)
	assert.Equal(t, "River Plate", res.Opponent.Name)
}

func TestResolveRivalWholeTextWhenNoConnector(t *testing.T) {
	res := ResolveRival("  Boca   Juniors ", registry())
	require.True(t, res.Found)
	assert.Equal(t, "Boca Juniors", res.Candidate, "whitespace runs collapse")
}

func TestResolveRivalStripsDecorations(t *testing.T) {
	res := ResolveRival("Copa: vs - (Boca Juniors)", registry())
	require.True(t, res.Found)
	assert.Equal(t, "Boca Juniors", res.Opponent.Name)
}

func TestResolveRivalMalformedInput(t *testing.T) {
	assert.False(t, ResolveRival("", registry()).Found)
	assert.False(t, ResolveRival("   ", registry()).Found)
	assert.False(t, ResolveRival("vs ", nil).Found)
}

func TestResolveRivalRegistryOrderIsDeterministic(t *testing.T) {
	reg := []domain.Opponent{{Name: "Racing Club"}, {Name: "Racing de Córdoba"}}
	res := ResolveRival("vs racing", reg)
	require.True(t, res.Found)
	assert.Equal(t, "Racing Club", res.Opponent.Name, "first registry hit wins")
}
