package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/bluetoothhub/internal/domain/device"
)

func TestDeviceRegistry_AddDedupes(t *testing.T) {
	r := NewDeviceRegistry()
	x := device.New("x", "AA:AA:AA:AA:AA:AA", "X", "")
	y := device.New("y", "BB:BB:BB:BB:BB:BB", "Y", "")

	assert.True(t, r.Add(x))
	assert.False(t, r.Add(x))
	assert.True(t, r.Add(y))
	assert.False(t, r.Add(device.New("x", "", "X renamed", "")))

	assert.Equal(t, []device.Ref{x, y}, r.All())
	assert.Equal(t, 2, r.Count())
}

func TestDeviceRegistry_ConcurrentAdd(t *testing.T) {
	r := NewDeviceRegistry()
	x := device.New("x", "", "X", "")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Add(x)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, r.Count())
}

func TestDeviceRegistry_ReplaceAndClear(t *testing.T) {
	r := NewDeviceRegistry()
	a := device.New("a", "", "A", "")
	b := device.New("b", "", "B", "")

	r.Replace([]device.Ref{a, b, a})
	assert.Equal(t, []device.Ref{a, b}, r.All())

	r.Clear()
	assert.Empty(t, r.All())
	assert.False(t, r.Contains("a"))
}

func TestDeviceRegistry_Get(t *testing.T) {
	r := NewDeviceRegistry()
	a := device.New("a", "", "A", "")
	r.Add(a)

	got, err := r.Get("a")
	require.NoError(t, err)
	assert.Equal(t, a, got)

	_, err = r.Get("missing")
	assert.ErrorIs(t, err, ErrUnknownDevice)
}

func TestDeviceRegistry_AllReturnsCopy(t *testing.T) {
	r := NewDeviceRegistry()
	r.Add(device.New("a", "", "A", ""))

	snapshot := r.All()
	snapshot[0].Name = "mutated"

	got, err := r.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
}
