package domain

type ValidationIssue struct {
	Path    string
	Message string
}

type ValidationResult struct {
	OK     bool
	Config Document
	Issues []ValidationIssue
}

func Valid(config Document) ValidationResult {
	return ValidationResult{OK: true, Config: config}
}

func Invalid(issues ...ValidationIssue) ValidationResult {
	return ValidationResult{OK: false, Issues: issues}
}
