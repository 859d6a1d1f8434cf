package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamadzoh/phonelib/pkg/phone"
)

func TestSet(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates across formats", func(t *testing.T) {
		t.Parallel()
		s := phone.NewSet()
		assert.True(t, s.Add("+1-202-555-0173"))
		assert.False(t, s.Add("+12025550173"))
		assert.False(t, s.Add("1 (202) 555-0173"))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		t.Parallel()
		s := phone.NewSet()
		assert.False(t, s.Add("garbage"))
		assert.False(t, s.Add(""))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("contains any spelling", func(t *testing.T) {
		t.Parallel()
		s := phone.NewSet()
		require.True(t, s.Add("+12025550173"))
		assert.True(t, s.Contains("1-202-555-0173"))
		assert.False(t, s.Contains("+12025550174"))
		assert.False(t, s.Contains("garbage"))
	})

	t.Run("remove", func(t *testing.T) {
		t.Parallel()
		s := phone.NewSet()
		require.True(t, s.Add("+12025550173"))
		assert.True(t, s.Remove("1 (202) 555-0173"))
		assert.False(t, s.Remove("+12025550173"))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("find keeps first spelling", func(t *testing.T) {
		t.Parallel()
		s := phone.NewSet()
		require.True(t, s.Add("1-202-555-0173"))
		s.Add("+12025550173")

		n, ok := s.Find("(202) 555-0173 x")
		assert.False(t, ok)
		assert.Nil(t, n)

		n, ok = s.Find("+12025550173")
		require.True(t, ok)
		assert.Equal(t, "1-202-555-0173", n.Original)
	})

	t.Run("members", func(t *testing.T) {
		t.Parallel()
		s := phone.NewSet()
		require.True(t, s.Add("+12025550173"))
		require.True(t, s.Add("+447911123456"))

		assert.Len(t, s.Numbers(), 2)
		assert.ElementsMatch(t,
			[]string{"+12025550173", "+447911123456"},
			s.Normalized(),
		)
	})

	t.Run("custom registry", func(t *testing.T) {
		t.Parallel()
		reg := phone.NewRegistry([]phone.Country{
			{Name: "Test", Code: "T1", Prefix: 99, PhoneLengths: []int{7}},
		})
		s := reg.NewSet()
		assert.True(t, s.Add("+991234567"))
		assert.False(t, s.Add("+12025550173"))
		assert.Equal(t, 1, s.Len())
	})
}
