package ports

import "github.com/bnema/chatgate/internal/domain"

// ConfigValidator must be deterministic and free of side effects.
type ConfigValidator interface {
	Validate(doc domain.Document) domain.ValidationResult
}

type ConfigValidatorFunc func(doc domain.Document) domain.ValidationResult

func (f ConfigValidatorFunc) Validate(doc domain.Document) domain.ValidationResult {
	return f(doc)
}
