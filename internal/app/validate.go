package app

import (
	"fmt"
	"strings"
)

func validateBackendName(kind BackendKind, name string) error {
	if name == "" {
		return nil
	}
	allowed := CandidateNames(kind)
	for _, candidate := range allowed {
		if candidate == name {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown %s %q (allowed: %s)", ErrUnsupportedBackend, kind, name, strings.Join(allowed, ", "))
}

func redactSecret(value string) string {
	if value == "" {
		return "(empty)"
	}
	return "****"
}
