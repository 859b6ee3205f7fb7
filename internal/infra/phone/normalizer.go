// Package phone validates provider phone numbers with libphonenumber metadata.
package phone

import (
	"strings"

	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/domain/service"

	"github.com/nyaruka/phonenumbers"
)

type normalizer struct {
	defaultRegion string
}

// NewNormalizer returns a normalizer that requires numbers in international
// form, such as "+1 415 555 2671".
func NewNormalizer() service.PhoneNormalizer {
	return &normalizer{}
}

// NewNormalizerForRegion also accepts national numbers of region (ISO 3166 code).
func NewNormalizerForRegion(region string) service.PhoneNormalizer {
	return &normalizer{defaultRegion: strings.ToUpper(region)}
}

// Normalize returns the E.164 form of raw.
func (n *normalizer) Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", domainerrors.ErrInvalidArgument.WithDetails("phone number is empty")
	}

	num, err := phonenumbers.Parse(trimmed, n.defaultRegion)
	if err != nil {
		return "", domainerrors.ErrInvalidArgument.WithDetails("invalid phone number: " + err.Error())
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", domainerrors.ErrInvalidArgument.WithDetails("invalid phone number: " + raw)
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}
