package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mohamadzoh/phonelib/pkg/phone"
)

func TestCountryAcceptsLength(t *testing.T) {
	t.Parallel()

	c := phone.Country{Code: "GB", Prefix: 44, PhoneLengths: []int{10, 11}}
	assert.True(t, c.AcceptsLength(10))
	assert.True(t, c.AcceptsLength(11))
	assert.False(t, c.AcceptsLength(9))
	assert.False(t, c.AcceptsLength(0))

	empty := phone.Country{}
	assert.False(t, empty.AcceptsLength(10))
}

func TestCountryPrefixDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix int
		want   int
	}{
		{prefix: 0, want: 1},
		{prefix: 1, want: 1},
		{prefix: 44, want: 2},
		{prefix: 961, want: 3},
		{prefix: 1876, want: 4},
	}

	for _, tt := range tests {
		tt := tt
		c := phone.Country{Prefix: tt.prefix}
		assert.Equal(t, tt.want, c.PrefixDigits(), "prefix %d", tt.prefix)
	}
}

func TestTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mobile", phone.Mobile.String())
	assert.Equal(t, "fixed_line", phone.FixedLine.String())
	assert.Equal(t, "toll_free", phone.TollFree.String())
	assert.Equal(t, "unknown", phone.Unknown.String())
	assert.Equal(t, "unknown", phone.Type(999).String())
}

func TestStyleString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "e164", phone.E164.String())
	assert.Equal(t, "international", phone.International.String())
	assert.Equal(t, "national", phone.National.String())
	assert.Equal(t, "rfc3966", phone.RFC3966.String())
	assert.Equal(t, "unknown", phone.Style(99).String())
}
