package phone

import (
	"math/rand"
	"strconv"
	"sync"
	"time"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Random generates a valid number for the territory: the country's first
// accepted national length, random digits, non-zero first digit so the
// result survives normalisation. Intended for tests and fixtures, not for
// anything needing cryptographic randomness.
func (r *Registry) Random(code string) (string, bool) {
	c, ok := r.ByCode(code)
	if !ok || len(c.PhoneLengths) == 0 {
		return "", false
	}
	length := c.PhoneLengths[0]

	b := make([]byte, 0, 1+c.PrefixDigits()+length)
	b = append(b, '+')
	b = strconv.AppendInt(b, int64(c.Prefix), 10)

	rngMu.Lock()
	for i := 0; i < length; i++ {
		d := byte(rng.Intn(10))
		if i == 0 && d == 0 {
			d = byte(1 + rng.Intn(9))
		}
		b = append(b, '0'+d)
	}
	rngMu.Unlock()

	return string(b), true
}

// RandomN generates n random numbers for the territory. An unknown code
// yields an empty slice.
func (r *Registry) RandomN(code string, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		s, ok := r.Random(code)
		if !ok {
			break
		}
		out = append(out, s)
	}
	return out
}

// Random generates a number using the default registry.
func Random(code string) (string, bool) {
	return defaultRegistry.Random(code)
}

// RandomN generates n numbers using the default registry.
func RandomN(code string, n int) []string {
	return defaultRegistry.RandomN(code, n)
}
