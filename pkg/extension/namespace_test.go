package extension

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extload/extload/pkg/errors"
)

func nopFactory(map[string]interface{}) (interface{}, error) {
	return struct{}{}, nil
}

func TestNamespaceRegisterAndHas(t *testing.T) {
	ns := NewNamespace("filter")

	require.NoError(t, ns.Register("logging", nopFactory))
	require.NoError(t, ns.Register("tracing", nopFactory))

	assert.True(t, ns.Has("logging"))
	assert.False(t, ns.Has("metrics"))
	assert.Equal(t, []string{"logging", "tracing"}, ns.Names())

	err := ns.Register("logging", nopFactory)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}

func TestNamespaceCreate(t *testing.T) {
	ns := NewNamespace("router")

	type router struct{ weight int }
	require.NoError(t, ns.Register("weighted", func(options map[string]interface{}) (interface{}, error) {
		w, _ := options["weight"].(int)
		return &router{weight: w}, nil
	}))
	require.NoError(t, ns.Register("broken", func(map[string]interface{}) (interface{}, error) {
		return nil, fmt.Errorf("bad wiring")
	}))

	t.Run("create registered", func(t *testing.T) {
		ext, err := ns.Create("weighted", map[string]interface{}{"weight": 3})
		require.NoError(t, err)
		assert.Equal(t, 3, ext.(*router).weight)
	})

	t.Run("create unknown", func(t *testing.T) {
		_, err := ns.Create("missing", nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrExtensionNotFound))
	})

	t.Run("factory failure", func(t *testing.T) {
		_, err := ns.Create("broken", nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrExtensionCreate))
		assert.Contains(t, err.Error(), "bad wiring")
	})
}

func TestNamespaceActiveNames(t *testing.T) {
	ns := NewNamespace("protocol")
	require.NoError(t, ns.Register("http", nopFactory))
	require.NoError(t, ns.Register("grpc", nopFactory))

	// "mqtt" is in the defaults but not registered, so it is filtered
	// out; the explicit "custom" token is not subject to the oracle.
	got := ns.ActiveNames("custom,default", []string{"http", "mqtt", "grpc"})

	assert.Equal(t, []string{"custom", "http", "grpc"}, got)
}

func TestGetNamespaceSingleton(t *testing.T) {
	a := GetNamespace("test-singleton")
	b := GetNamespace("test-singleton")

	assert.Same(t, a, b)
	assert.Equal(t, "test-singleton", a.Kind())
	assert.NotSame(t, a, GetNamespace("test-singleton-other"))
}
