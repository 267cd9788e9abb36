package rules

import (
	"cmp"
	"slices"

	"github.com/bnema/chatgate/internal/domain"
	"github.com/bnema/chatgate/internal/ports"
)

// Pipeline runs validators in order and reports every issue they find.
// Plugins append their own validators after the built-in rules.
type Pipeline struct {
	validators []ports.ConfigValidator
}

var _ ports.ConfigValidator = (*Pipeline)(nil)

func NewPipeline(validators ...ports.ConfigValidator) *Pipeline {
	kept := make([]ports.ConfigValidator, 0, len(validators))
	for _, validator := range validators {
		if validator != nil {
			kept = append(kept, validator)
		}
	}
	return &Pipeline{validators: kept}
}

// Default is the pipeline with only the built-in rules.
func Default() *Pipeline {
	return NewPipeline(Builtin())
}

func (p *Pipeline) Validate(doc domain.Document) domain.ValidationResult {
	var issues []domain.ValidationIssue
	for _, validator := range p.validators {
		result := validator.Validate(domain.CloneDocument(doc))
		if result.OK {
			continue
		}
		if len(result.Issues) == 0 {
			issues = append(issues, domain.ValidationIssue{Message: "rejected by validator"})
			continue
		}
		issues = append(issues, result.Issues...)
	}

	if len(issues) > 0 {
		slices.SortStableFunc(issues, func(a, b domain.ValidationIssue) int {
			return cmp.Compare(a.Path, b.Path)
		})
		return domain.Invalid(issues...)
	}

	return domain.Valid(domain.CloneDocument(doc))
}
