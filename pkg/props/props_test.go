package props

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertySetMerge(t *testing.T) {
	ps := PropertySet{"a": "1", "b": "1"}
	ps.Merge(PropertySet{"b": "2", "c": "2"})

	assert.Equal(t, PropertySet{"a": "1", "b": "2", "c": "2"}, ps)
}

func TestPropertySetClone(t *testing.T) {
	ps := PropertySet{"a": "1"}
	clone := ps.Clone()
	clone["a"] = "changed"

	assert.Equal(t, "1", ps["a"])
}

func TestPropertySetKeys(t *testing.T) {
	ps := PropertySet{"z": "1", "a": "2", "m": "3"}

	assert.Equal(t, []string{"a", "m", "z"}, ps.Keys())
}

func TestSetProperties(t *testing.T) {
	SetProperties(PropertySet{"app.name": "extload"})
	assert.Equal(t, "extload", Properties()["app.name"])

	// last write wins
	SetProperties(PropertySet{"app.name": "other"})
	assert.Equal(t, "other", Properties()["app.name"])
}

func TestSetPropertiesSnapshots(t *testing.T) {
	src := PropertySet{"k": "v"}
	SetProperties(src)
	src["k"] = "mutated"

	assert.Equal(t, "v", Properties()["k"])
}

func TestSetPropertiesConcurrentReaders(t *testing.T) {
	SetProperties(PropertySet{"k": "v"})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = Properties()["k"]
			}
		}()
	}
	SetProperties(PropertySet{"k": "v2"})
	wg.Wait()
}

func TestSystemProperty(t *testing.T) {
	t.Setenv("EXTLOAD_TEST_KEY", "from-env")
	SetProperties(PropertySet{"EXTLOAD_TEST_KEY": "from-slot", "slot.only": "slot"})

	assert.Equal(t, "from-env", SystemProperty("EXTLOAD_TEST_KEY"))
	assert.Equal(t, "slot", SystemProperty("slot.only"))
	assert.Equal(t, "", SystemProperty("completely.absent"))
}

func TestIsEmpty(t *testing.T) {
	for _, v := range []string{"", "false", "FALSE", "0", "null", "NULL", "n/a", "N/A"} {
		assert.True(t, IsEmpty(v), "IsEmpty(%q)", v)
	}
	for _, v := range []string{"true", "1", "value", " "} {
		assert.False(t, IsEmpty(v), "IsEmpty(%q)", v)
		assert.True(t, IsNotEmpty(v), "IsNotEmpty(%q)", v)
	}
}

func TestIsDefault(t *testing.T) {
	for _, v := range []string{"true", "TRUE", "default", "Default"} {
		assert.True(t, IsDefault(v), "IsDefault(%q)", v)
	}
	for _, v := range []string{"", "false", "custom"} {
		assert.False(t, IsDefault(v), "IsDefault(%q)", v)
	}
}

func TestPid(t *testing.T) {
	assert.Equal(t, os.Getpid(), Pid())
	assert.Equal(t, Pid(), Pid())
}
