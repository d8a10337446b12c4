package store

import "credstore/internal/domain"

// validateAttributes rejects any attribute key outside the recognized set.
// Values are not validated; recognized-but-unused attributes are accepted
// as-is.
func validateAttributes(attributes map[string]string, recognized []string) error {
	for key := range attributes {
		ok := false
		for _, r := range recognized {
			if key == r {
				ok = true
				break
			}
		}
		if !ok {
			return &domain.ConfigurationError{Attribute: key, Reason: "unrecognized attribute"}
		}
	}
	return nil
}
