package service

// PhoneNormalizer validates phone numbers and formats them as E.164.
type PhoneNormalizer interface {
	Normalize(raw string) (string, error)
}
