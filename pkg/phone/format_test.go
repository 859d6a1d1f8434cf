package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamadzoh/phonelib/pkg/phone"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		style phone.Style
		want  string
	}{
		{
			name:  "us e164",
			input: "1 (202) 555-0173",
			style: phone.E164,
			want:  "+12025550173",
		},
		{
			name:  "us international",
			input: "+12025550173",
			style: phone.International,
			want:  "+1 (202) 555-0173",
		},
		{
			name:  "us national",
			input: "+12025550173",
			style: phone.National,
			want:  "(202) 555-0173",
		},
		{
			name:  "us rfc3966",
			input: "+12025550173",
			style: phone.RFC3966,
			want:  "tel:+1-202-555-017-3",
		},
		{
			name:  "uk national grouping",
			input: "+447911123456",
			style: phone.National,
			want:  "7911 123 456",
		},
		{
			name:  "uk international grouping",
			input: "+447911123456",
			style: phone.International,
			want:  "+44 7911 123 456",
		},
		{
			name:  "german national grouping",
			input: "+4915123456789",
			style: phone.National,
			want:  "151 23456789",
		},
		{
			name:  "generic midpoint split",
			input: "+31612345678",
			style: phone.National,
			want:  "6123 45678",
		},
		{
			name:  "generic rfc3966",
			input: "+31612345678",
			style: phone.RFC3966,
			want:  "tel:+31-612-345-678",
		},
		{
			name:  "lebanese midpoint split",
			input: "+96114123456",
			style: phone.National,
			want:  "1412 3456",
		},
		{
			name:  "short national stays plain",
			input: "+376123456",
			style: phone.National,
			want:  "123456",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := phone.Format(tt.input, tt.style)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatInvalid(t *testing.T) {
	t.Parallel()

	_, ok := phone.Format("garbage", phone.E164)
	assert.False(t, ok)

	_, ok = phone.Format("+987654321", phone.International)
	assert.False(t, ok)

	_, ok = phone.Format("+12025550173", phone.Style(42))
	assert.False(t, ok)
}
