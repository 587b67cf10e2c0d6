package distance_test

import (
	"testing"

	"github.com/ntessore/cosmology/cosmo"
	"github.com/ntessore/cosmology/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAll_MatchesSequential verifies the worker-pool fan-out returns
// exactly what element-wise calls return, in input order.
func TestAll_MatchesSequential(t *testing.T) {
	m := mustModel(t, 70, 0.3, 0.7)

	zs := []float64{0, 0.1, 0.5, 1, 2, 3, 5, 8, 0.25, 4.5, 6, 7.5}
	got, err := distance.All(m, zs, distance.Comoving, distance.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, got, len(zs))

	for i, z := range zs {
		want, err := distance.Comoving(m, z, distance.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, want, got[i], "batch value at z=%g", z)
	}
}

// TestAll_OtherMeasures spot-checks the fan-out over a time measure.
func TestAll_OtherMeasures(t *testing.T) {
	m := mustModel(t, 70, 0.3, 0.7)

	zs := []float64{0.5, 1, 2}
	got, err := distance.All(m, zs, distance.Age, distance.DefaultOptions())
	require.NoError(t, err)

	for i, z := range zs {
		want, err := distance.Age(m, z, distance.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, want, got[i], "batch age at z=%g", z)
	}
}

// TestAll_ErrorAborts verifies a failing redshift fails the whole
// batch with no partial results.
func TestAll_ErrorAborts(t *testing.T) {
	m := mustModel(t, 70, 0.3, 0.7)

	zs := []float64{0.5, -2, 1}
	got, err := distance.All(m, zs, distance.Comoving, distance.DefaultOptions())
	assert.ErrorIs(t, err, cosmo.ErrRedshiftDomain, "domain failure must surface")
	assert.Nil(t, got, "no partial results on failure")
}

// TestAll_EmptyInput verifies empty input yields an empty, non-nil
// result.
func TestAll_EmptyInput(t *testing.T) {
	m := mustModel(t, 70, 0.3, 0.7)

	got, err := distance.All(m, nil, distance.Comoving, distance.DefaultOptions())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// TestAll_NilInputs verifies the sentinel contracts.
func TestAll_NilInputs(t *testing.T) {
	m := mustModel(t, 70, 0.3, 0.7)

	_, err := distance.All(nil, []float64{1}, distance.Comoving, distance.DefaultOptions())
	assert.ErrorIs(t, err, distance.ErrNilModel)

	_, err = distance.All(m, []float64{1}, nil, distance.DefaultOptions())
	assert.ErrorIs(t, err, distance.ErrNilMeasure)
}
