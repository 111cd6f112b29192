package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend_SkipsNil(t *testing.T) {
	e := New("DatiRiepilogo", Leaf("Imposta", "0.00")).Append(
		Optional("Natura", ""),
		Leaf("EsigibilitaIVA", "I"),
		Optional("RiferimentoNormativo", ""),
	)

	require.Len(t, e.Children, 2)
	assert.Equal(t, "Imposta", e.Children[0].Tag)
	assert.Equal(t, "EsigibilitaIVA", e.Children[1].Tag)
}

func TestOptional(t *testing.T) {
	assert.Nil(t, Optional("Natura", ""))

	leaf := Optional("Natura", "N6.1")
	require.NotNil(t, leaf)
	assert.Equal(t, "N6.1", leaf.Text)
}

func TestPath(t *testing.T) {
	root := New("Root",
		New("Header", New("Sede", Leaf("CAP", "00100"))),
		New("Body", New("Sede", Leaf("CAP", "00000"))),
	)

	assert.Equal(t, "00100", root.Path("Header", "Sede", "CAP").Text)
	assert.Equal(t, "00000", root.Path("Body", "Sede", "CAP").Text)
	assert.Nil(t, root.Path("Body", "Missing"))
}
