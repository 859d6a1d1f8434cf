package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamadzoh/phonelib/pkg/phone"
)

func TestDetectType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  phone.Type
		ok    bool
	}{
		{
			name:  "us landline",
			input: "+12025550173",
			want:  phone.FixedLine,
			ok:    true,
		},
		{
			name:  "us toll free 800",
			input: "+18001234567",
			want:  phone.TollFree,
			ok:    true,
		},
		{
			name:  "us toll free 888",
			input: "+18881234567",
			want:  phone.TollFree,
			ok:    true,
		},
		{
			name:  "us premium rate",
			input: "+19001234567",
			want:  phone.PremiumRate,
			ok:    true,
		},
		{
			name:  "uk mobile",
			input: "+447123456789",
			want:  phone.Mobile,
			ok:    true,
		},
		{
			name:  "uk freephone",
			input: "+448012345678",
			want:  phone.TollFree,
			ok:    true,
		},
		{
			name:  "uk fixed london",
			input: "+442012345678",
			want:  phone.FixedLine,
			ok:    true,
		},
		{
			name:  "uk uan",
			input: "+443012345678",
			want:  phone.Uan,
			ok:    true,
		},
		{
			name:  "german mobile",
			input: "+4915123456789",
			want:  phone.Mobile,
			ok:    true,
		},
		{
			name:  "german fixed berlin",
			input: "+493012345678",
			want:  phone.FixedLine,
			ok:    true,
		},
		{
			name:  "french mobile",
			input: "+33612345678",
			want:  phone.Mobile,
			ok:    true,
		},
		{
			name:  "french fixed paris",
			input: "+33123456789",
			want:  phone.FixedLine,
			ok:    true,
		},
		{
			name:  "french toll free",
			input: "+33812345678",
			want:  phone.TollFree,
			ok:    true,
		},
		{
			name:  "australian mobile",
			input: "+61412345678",
			want:  phone.Mobile,
			ok:    true,
		},
		{
			name:  "australian fixed sydney",
			input: "+61212345678",
			want:  phone.FixedLine,
			ok:    true,
		},
		{
			name:  "indian mobile",
			input: "+919876543210",
			want:  phone.Mobile,
			ok:    true,
		},
		{
			name:  "generic fallback mobile",
			input: "+31612345678",
			want:  phone.Mobile,
			ok:    true,
		},
		{
			name:  "generic fallback fixed",
			input: "+31212345678",
			want:  phone.FixedLine,
			ok:    true,
		},
		{
			name:  "invalid number",
			input: "not a number",
			want:  phone.Unknown,
			ok:    false,
		},
		{
			name:  "unresolvable number",
			input: "+987654321",
			want:  phone.Unknown,
			ok:    false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := phone.DetectType(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyNational(t *testing.T) {
	t.Parallel()

	us := phone.Country{Code: "US", Prefix: 1, PhoneLengths: []int{10}}

	assert.Equal(t, phone.Unknown, phone.ClassifyNational("", us))
	assert.Equal(t, phone.TollFree, phone.ClassifyNational("8001234567", us))
	// Service codes classify by prefix even at the wrong length.
	assert.Equal(t, phone.TollFree, phone.ClassifyNational("800123", us))
	// Regular NANP numbers need all ten digits.
	assert.Equal(t, phone.Unknown, phone.ClassifyNational("2025550", us))

	// Callers may pass a national number with its trunk zero still on; a
	// zero-leading number reads as a service number, not a fixed line.
	de := phone.Country{Code: "DE", Prefix: 49, PhoneLengths: []int{10, 11}}
	assert.Equal(t, phone.TollFree, phone.ClassifyNational("0800123456", de))
	assert.Equal(t, phone.Mobile, phone.ClassifyNational("15123456789", de))
	assert.Equal(t, phone.FixedLine, phone.ClassifyNational("3012345678", de))

	zz := phone.Country{Code: "ZZ", Prefix: 990, PhoneLengths: []int{9}}
	assert.Equal(t, phone.TollFree, phone.ClassifyNational("080012345", zz))
	assert.Equal(t, phone.Mobile, phone.ClassifyNational("612345678", zz))
}

func TestTypePredicates(t *testing.T) {
	t.Parallel()

	require.True(t, phone.IsMobileNumber("+447123456789"))
	require.False(t, phone.IsMobileNumber("+12025550173"))
	require.False(t, phone.IsMobileNumber("garbage"))

	require.True(t, phone.IsLandlineNumber("+12025550173"))
	require.False(t, phone.IsLandlineNumber("+447123456789"))

	require.True(t, phone.IsTollFreeNumber("+18001234567"))
	require.False(t, phone.IsTollFreeNumber("+12025550173"))
	require.False(t, phone.IsTollFreeNumber(""))
}
