package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamadzoh/phonelib/pkg/phone"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid number", func(t *testing.T) {
		t.Parallel()
		n, err := phone.Parse("+1 (202) 555-0173")
		require.NoError(t, err)
		assert.Equal(t, "+1 (202) 555-0173", n.Original)
		assert.Equal(t, "+12025550173", n.Normalized)
		assert.Equal(t, "US", n.Country.Code)
		assert.Equal(t, phone.FixedLine, n.Type)
		assert.Equal(t, "+12025550173", n.E164())
		assert.Equal(t, "2025550173", n.NationalNumber())
		assert.Equal(t, 1, n.CountryCode())
		assert.Equal(t, "+12025550173", n.String())
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		n, err := phone.Parse("garbage")
		assert.Nil(t, n)
		assert.ErrorIs(t, err, phone.ErrInvalidNumber)
	})

	t.Run("equality across formats", func(t *testing.T) {
		t.Parallel()
		a, err := phone.Parse("+12025550173")
		require.NoError(t, err)
		b, err := phone.Parse("1-202-555-0173")
		require.NoError(t, err)
		assert.Equal(t, a.Normalized, b.Normalized)
		assert.NotEqual(t, a.Original, b.Original)
	})
}

func TestParseWithCountry(t *testing.T) {
	t.Parallel()

	t.Run("national number with hint", func(t *testing.T) {
		t.Parallel()
		n, err := phone.ParseWithCountry("0612345678", "FR")
		require.NoError(t, err)
		assert.Equal(t, "+33612345678", n.Normalized)
		assert.Equal(t, "FR", n.Country.Code)
		// The caller's spelling survives the prefixed retry.
		assert.Equal(t, "0612345678", n.Original)
	})

	t.Run("international input ignores hint", func(t *testing.T) {
		t.Parallel()
		n, err := phone.ParseWithCountry("+12025550173", "FR")
		require.NoError(t, err)
		assert.Equal(t, "US", n.Country.Code)
	})

	t.Run("unknown country", func(t *testing.T) {
		t.Parallel()
		_, err := phone.ParseWithCountry("0612345678", "XX")
		assert.ErrorIs(t, err, phone.ErrUnknownCountry)
	})

	t.Run("hint cannot fix garbage", func(t *testing.T) {
		t.Parallel()
		_, err := phone.ParseWithCountry("12", "FR")
		assert.ErrorIs(t, err, phone.ErrInvalidNumber)
	})
}

func TestNumberFormat(t *testing.T) {
	t.Parallel()

	n, err := phone.Parse("+12025550173")
	require.NoError(t, err)

	assert.Equal(t, "+12025550173", n.Format(phone.E164))
	assert.Equal(t, "(202) 555-0173", n.Format(phone.National))
	// Unsupported styles fall back to the canonical form.
	assert.Equal(t, "+12025550173", n.Format(phone.Style(42)))
}

func TestNumberPredicates(t *testing.T) {
	t.Parallel()

	mobile, err := phone.Parse("+447123456789")
	require.NoError(t, err)
	assert.True(t, mobile.IsMobile())
	assert.False(t, mobile.IsLandline())
	assert.False(t, mobile.IsTollFree())

	tollFree, err := phone.Parse("+18001234567")
	require.NoError(t, err)
	assert.True(t, tollFree.IsTollFree())
}
