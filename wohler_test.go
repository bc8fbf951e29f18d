package rainflow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWohler_validate(t *testing.T) {
	cases := []struct {
		name    string
		w       Wohler
		wantErr bool
	}{
		{"defaults", DefaultWohler(), false},
		{"zero SD", Wohler{SD: 0, ND: 1e7, K: -5}, true},
		{"negative SD", Wohler{SD: -1, ND: 1e7, K: -5}, true},
		{"zero ND", Wohler{SD: 1e3, ND: 0, K: -5}, true},
		{"positive K", Wohler{SD: 1e3, ND: 1e7, K: 5}, true},
		{"zero K", Wohler{SD: 1e3, ND: 1e7, K: 0}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.w.validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestWohler_damage(t *testing.T) {
	w := DefaultWohler()

	assert.Equal(t, 0.0, w.damage(0))
	assert.Equal(t, 0.0, w.damage(-1))

	// at Sa == SD, damage == 1/ND exactly.
	assert.InDelta(t, 1/w.ND, w.damage(w.SD), 1e-12)

	// damage increases monotonically with amplitude.
	d1 := w.damage(500)
	d2 := w.damage(1000)
	d3 := w.damage(2000)
	assert.Less(t, d1, d2)
	assert.Less(t, d2, d3)

	// matches the closed form (Sa/SD)^|K| / ND for a mid-range amplitude.
	sa := 1234.5
	want := math.Pow(sa/w.SD, -w.K) / w.ND
	assert.InDelta(t, want, w.damage(sa), want*1e-9)
}
