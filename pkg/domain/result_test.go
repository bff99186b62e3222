package domain_test

import (
	"math"
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Bool(t *testing.T) {
	b, err := domain.Result{Value: true}.Bool()
	require.NoError(t, err)
	assert.True(t, b)

	b, err = domain.Result{Value: false}.Bool()
	require.NoError(t, err)
	assert.False(t, b)

	_, err = domain.Result{Value: 1}.Bool()
	assert.ErrorIs(t, err, domain.ErrResultType)

	var typeErr *domain.ResultTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "bool", typeErr.Want)
	assert.Equal(t, 1, typeErr.Got)
}

func TestResult_Index(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{"int", 2, 2},
		{"int64", int64(3), 3},
		{"uint8", uint8(1), 1},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.Result{Value: tt.value}.Index()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := domain.Result{Value: "0"}.Index()
	assert.ErrorIs(t, err, domain.ErrResultType)

	_, err = domain.Result{Value: nil}.Index()
	assert.ErrorIs(t, err, domain.ErrResultType)
}

func TestResult_IndexOverflow(t *testing.T) {
	for _, value := range []any{uint64(math.MaxUint64), uint64(math.MaxInt) + 1, uint(math.MaxUint)} {
		_, err := domain.Result{Value: value}.Index()
		assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)

		var idxErr *domain.IndexError
		require.ErrorAs(t, err, &idxErr)
		assert.Equal(t, value, idxErr.Value)
		assert.Contains(t, err.Error(), "overflows int")
	}

	got, err := domain.Result{Value: uint64(math.MaxInt)}.Index()
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, got)

	got, err = domain.Result{Value: int64(math.MinInt)}.Index()
	require.NoError(t, err)
	assert.Equal(t, math.MinInt, got)
}

func TestIndexError(t *testing.T) {
	err := error(&domain.IndexError{Index: 4, Len: 3})
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "index 4, 3 children")
}
