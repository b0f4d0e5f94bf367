package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	c := NewCatalog()
	assert.Empty(t, c.Names())

	require.NoError(t, c.Register(Named("filter")))
	require.NoError(t, c.Register(Named("breather")))

	b, err := c.Lookup("filter")
	require.NoError(t, err)
	assert.Equal(t, "filter", b.BehaviorName())

	_, err = c.Lookup("missing")
	assert.ErrorIs(t, err, ErrUnknownBehavior)
	assert.Contains(t, err.Error(), "missing")

	assert.ErrorIs(t, c.Register(Named("filter")), ErrDuplicateBehavior)
	assert.ErrorIs(t, c.Register(Named("  ")), ErrInvalidBehavior)
	assert.ErrorIs(t, c.Register(nil), ErrInvalidBehavior)

	assert.Equal(t, []string{"breather", "filter"}, c.Names())
}

func TestCatalog_RegisteredNameIsLookupKey(t *testing.T) {
	c := NewCatalog()

	err := c.Register(Named(" filter "))
	assert.ErrorIs(t, err, ErrInvalidBehavior)
	assert.Empty(t, c.Names())

	require.NoError(t, c.Register(Named("filter")))
	for _, name := range c.Names() {
		b, err := c.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, b.BehaviorName())
	}

	_, err = c.Lookup(" filter ")
	assert.ErrorIs(t, err, ErrUnknownBehavior)
}
