package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom_Success(t *testing.T) {
	t.Parallel()

	t.Run("string", func(t *testing.T) {
		t.Parallel()

		p := From("name")
		assert.NotNil(t, p)
		assert.Equal(t, "name", *p)
	})

	t.Run("zero int64", func(t *testing.T) {
		t.Parallel()

		p := From(int64(0))
		assert.NotNil(t, p)
		assert.Equal(t, int64(0), *p)
	})

	t.Run("float64", func(t *testing.T) {
		t.Parallel()

		p := From(1.5)
		assert.NotNil(t, p)
		assert.Equal(t, 1.5, *p)
	})

	t.Run("bool", func(t *testing.T) {
		t.Parallel()

		p := From(false)
		assert.NotNil(t, p)
		assert.False(t, *p)
	})
}

func TestValue_Success(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "name", Value(From("name")))
	assert.Equal(t, int64(42), Value(From(int64(42))))
	assert.Equal(t, 1.5, Value(From(1.5)))
	assert.True(t, Value(From(true)))
}

func TestValue_ReturnsZeroForNil(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Value((*string)(nil)))
	assert.Equal(t, int64(0), Value((*int64)(nil)))
	assert.Equal(t, 0.0, Value((*float64)(nil)))
	assert.False(t, Value((*bool)(nil)))
}

func TestClone_Success(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, Clone((*string)(nil)))
	})

	t.Run("copy does not alias the original", func(t *testing.T) {
		t.Parallel()

		original := From("name")
		cloned := Clone(original)

		*original = "changed"

		assert.Equal(t, "name", *cloned)
	})
}

func TestEqual_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        *string
		b        *string
		expected bool
	}{
		{
			name:     "both nil",
			a:        nil,
			b:        nil,
			expected: true,
		},
		{
			name:     "nil and set",
			a:        nil,
			b:        From("name"),
			expected: false,
		},
		{
			name:     "set and nil",
			a:        From("name"),
			b:        nil,
			expected: false,
		},
		{
			name:     "equal values in distinct pointers",
			a:        From("name"),
			b:        From("name"),
			expected: true,
		},
		{
			name:     "different values",
			a:        From("name"),
			b:        From("title"),
			expected: false,
		},
		{
			name:     "nil and pointer to zero value",
			a:        nil,
			b:        From(""),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Equal(tt.a, tt.b))
		})
	}
}
