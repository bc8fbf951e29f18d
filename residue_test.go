package rainflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResidueBuffer_appendAndGet(t *testing.T) {
	r := newResidueBuffer(make([]turningPoint, 4)) // cap 3 + interim slot

	require.Equal(t, 3, r.cap())
	require.Equal(t, 0, r.len())

	require.NoError(t, r.append(turningPoint{value: 1, pos: 1}))
	require.NoError(t, r.append(turningPoint{value: 2, pos: 2}))
	require.NoError(t, r.append(turningPoint{value: 3, pos: 3}))
	assert.Equal(t, 3, r.len())

	err := r.append(turningPoint{value: 4, pos: 4})
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KindOverflow, rerr.Kind)

	assert.Equal(t, turningPoint{value: 1, pos: 1}, r.get(0))
	assert.Equal(t, turningPoint{value: 3, pos: 3}, r.get(2))
}

func TestResidueBuffer_interim(t *testing.T) {
	r := newResidueBuffer(make([]turningPoint, 3))
	require.NoError(t, r.append(turningPoint{value: 1, pos: 1}))

	require.False(t, r.hasInterim())
	r.setInterim(turningPoint{value: 5, pos: 2})
	require.True(t, r.hasInterim())
	assert.Equal(t, turningPoint{value: 5, pos: 2}, r.interimPoint())

	r.promoteInterim()
	require.False(t, r.hasInterim())
	assert.Equal(t, 2, r.len())
	assert.Equal(t, turningPoint{value: 5, pos: 2}, r.get(1))
}

func TestResidueBuffer_removeRange(t *testing.T) {
	r := newResidueBuffer(make([]turningPoint, 5))
	for i := 0; i < 4; i++ {
		require.NoError(t, r.append(turningPoint{value: float64(i), pos: int64(i)}))
	}
	r.setInterim(turningPoint{value: 99, pos: 99})

	// mirrors the four-point detector removing the middle two points while
	// an interim point trails.
	r.removeRange(1, 2)

	require.Equal(t, 2, r.len())
	assert.Equal(t, turningPoint{value: 0, pos: 0}, r.get(0))
	assert.Equal(t, turningPoint{value: 3, pos: 3}, r.get(1))
	require.True(t, r.hasInterim())
	assert.Equal(t, turningPoint{value: 99, pos: 99}, r.interimPoint())
}

func TestResidueBuffer_dropOldest(t *testing.T) {
	r := newResidueBuffer(make([]turningPoint, 4))
	require.NoError(t, r.append(turningPoint{value: 1, pos: 1}))
	r.dropOldest()
	assert.Equal(t, 1, r.len(), "no-op with a single point")

	require.NoError(t, r.append(turningPoint{value: 2, pos: 2}))
	r.dropOldest()
	require.Equal(t, 1, r.len())
	assert.Equal(t, turningPoint{value: 2, pos: 2}, r.get(0))
}

func TestResidueBuffer_panicsOnMisuse(t *testing.T) {
	r := newResidueBuffer(make([]turningPoint, 3))
	assert.Panics(t, func() { r.get(0) })
	assert.Panics(t, func() { r.interimPoint() })
	assert.Panics(t, func() { r.promoteInterim() })
}
