package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mohamadzoh/phonelib/pkg/extract"
)

func TestReplace(t *testing.T) {
	t.Parallel()

	t.Run("placeholder", func(t *testing.T) {
		t.Parallel()
		got := extract.Replace("Call me at +12025550173", func(extract.Candidate) string {
			return "[REDACTED]"
		})
		assert.Equal(t, "Call me at [REDACTED]", got)
	})

	t.Run("replacement sees the candidate", func(t *testing.T) {
		t.Parallel()
		got := extract.Replace("a +12025550173 b +447911123456 c", func(c extract.Candidate) string {
			if c.Valid {
				return c.Normalized
			}
			return c.Raw
		})
		assert.Equal(t, "a +12025550173 b +447911123456 c", got)
	})

	t.Run("text without numbers is unchanged", func(t *testing.T) {
		t.Parallel()
		text := "nothing to see here"
		got := extract.Replace(text, func(extract.Candidate) string { return "X" })
		assert.Equal(t, text, got)
	})

	t.Run("surrounding text is untouched", func(t *testing.T) {
		t.Parallel()
		got := extract.Replace("前: +81 90 1234 5678 後", func(extract.Candidate) string {
			return "#"
		})
		assert.Equal(t, "前: # 後", got)
	})
}

func TestRedact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		visible int
		want    string
	}{
		{
			name:    "keep last four digits",
			text:    "Call +12025550173",
			visible: 4,
			want:    "Call *******0173",
		},
		{
			name:    "zero visible hides everything",
			text:    "Call +12025550173",
			visible: 0,
			want:    "Call [PHONE]",
		},
		{
			name:    "visible beyond digit count hides everything",
			text:    "Call +12025550173",
			visible: 100,
			want:    "Call [PHONE]",
		},
		{
			name:    "separators are not preserved",
			text:    "Call +1-202-555-0173 now",
			visible: 4,
			want:    "Call *******0173 now",
		},
		{
			name:    "multiple numbers",
			text:    "+12025550173 / +447911123456",
			visible: 2,
			want:    "*********73 / **********56",
		},
		{
			name:    "no numbers",
			text:    "hello world",
			visible: 4,
			want:    "hello world",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := extract.Redact(tt.text, tt.visible)
			assert.Equal(t, tt.want, got)
		})
	}
}
