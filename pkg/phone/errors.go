package phone

import "errors"

var (
	// ErrInvalidNumber is returned by Parse when the input does not
	// normalise to any known country.
	ErrInvalidNumber = errors.New("phone: invalid phone number")

	// ErrUnknownCountry is returned when a territory code has no rule in
	// the registry.
	ErrUnknownCountry = errors.New("phone: unknown country code")
)
