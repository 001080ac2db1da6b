package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerRegisterAndResolve(t *testing.T) {
	c := NewContainer()

	require.NoError(t, c.Register("retail.sales", "sales-service"))

	svc, ok := c.Resolve("retail.sales")
	require.True(t, ok)
	assert.Equal(t, "sales-service", svc)

	_, ok = c.Resolve("retail.unknown")
	assert.False(t, ok)
}

func TestContainerRejectsDuplicateName(t *testing.T) {
	c := NewContainer()

	require.NoError(t, c.Register("retail.sales", "first"))
	err := c.Register("retail.sales", "second")
	require.Error(t, err)

	svc, _ := c.Resolve("retail.sales")
	assert.Equal(t, "first", svc)
	assert.Equal(t, 1, c.Len())
}

func TestContainerMustRegisterPanicsOnDuplicate(t *testing.T) {
	c := NewContainer()
	c.MustRegister("retail.sales", "first")

	assert.Panics(t, func() {
		c.MustRegister("retail.sales", "second")
	})
}

func TestContainerRangeKeepsRegistrationOrder(t *testing.T) {
	c := NewContainer()
	require.NoError(t, c.Register("c", 3))
	require.NoError(t, c.Register("a", 1))
	require.NoError(t, c.Register("b", 2))

	var names []string
	c.Range(func(name string, _ interface{}) bool {
		names = append(names, name)
		return true
	})
	assert.Equal(t, []string{"c", "a", "b"}, names)

	names = names[:0]
	c.Range(func(name string, _ interface{}) bool {
		names = append(names, name)
		return false
	})
	assert.Equal(t, []string{"c"}, names)
}
