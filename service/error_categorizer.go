package service

import (
	"strings"

	"github.com/ludo-technologies/cmreport/domain"
)

// ErrorCategorizerImpl implements the ErrorCategorizer interface
type ErrorCategorizerImpl struct {
	codes    map[string]domain.ErrorCategory
	patterns []categoryPatterns
}

type categoryPatterns struct {
	category domain.ErrorCategory
	patterns []string
}

// NewErrorCategorizer creates a new error categorizer
func NewErrorCategorizer() domain.ErrorCategorizer {
	return &ErrorCategorizerImpl{
		codes:    initializeErrorCodes(),
		patterns: initializeErrorPatterns(),
	}
}

func initializeErrorCodes() map[string]domain.ErrorCategory {
	return map[string]domain.ErrorCategory{
		domain.ErrCodeInvalidInput:      domain.ErrorCategoryInput,
		domain.ErrCodeFileNotFound:      domain.ErrorCategoryInput,
		domain.ErrCodeMalformedXML:      domain.ErrorCategoryProcessing,
		domain.ErrCodeMissingSection:    domain.ErrorCategoryProcessing,
		domain.ErrCodeMissingAttribute:  domain.ErrorCategoryProcessing,
		domain.ErrCodeMalformedMetric:   domain.ErrorCategoryProcessing,
		domain.ErrCodeConfigError:       domain.ErrorCategoryConfig,
		domain.ErrCodeOutputError:       domain.ErrorCategoryOutput,
		domain.ErrCodeUnsupportedFormat: domain.ErrorCategoryOutput,
	}
}

// initializeErrorPatterns is consulted in order when an error carries no known code
func initializeErrorPatterns() []categoryPatterns {
	return []categoryPatterns{
		{domain.ErrorCategoryConfig, []string{
			"config",
			"configuration",
			"toml",
			"yaml",
		}},
		{domain.ErrorCategoryInput, []string{
			"invalid input",
			"file not found",
			"no such file",
			"cannot access",
			"permission denied",
		}},
		{domain.ErrorCategoryProcessing, []string{
			"xml",
			"parse",
			"syntax",
			"missing",
			"metric",
		}},
		{domain.ErrorCategoryOutput, []string{
			"write",
			"output",
			"cannot create",
			"format",
		}},
	}
}

// Categorize determines the category of an error
func (ec *ErrorCategorizerImpl) Categorize(err error) *domain.CategorizedError {
	if err == nil {
		return nil
	}

	category, ok := ec.codes[domain.ErrorCode(err)]
	if !ok {
		category = ec.categorizeByMessage(err.Error())
	}

	message := err.Error()
	if category != domain.ErrorCategoryUnknown {
		message = ec.getCategoryMessage(category)
	}

	return &domain.CategorizedError{
		Category: category,
		Message:  message,
		Original: err,
	}
}

func (ec *ErrorCategorizerImpl) categorizeByMessage(msg string) domain.ErrorCategory {
	msg = strings.ToLower(msg)
	for _, cp := range ec.patterns {
		if containsAnyPattern(msg, cp.patterns) {
			return cp.category
		}
	}
	return domain.ErrorCategoryUnknown
}

// GetRecoverySuggestions returns recovery suggestions for an error category
func (ec *ErrorCategorizerImpl) GetRecoverySuggestions(category domain.ErrorCategory) []string {
	suggestions := map[domain.ErrorCategory][]string{
		domain.ErrorCategoryInput: {
			"Check that the input report exists and is a regular file",
			"Ensure you have read permissions for the input file",
			"Use an absolute path if the relative path is resolved from an unexpected directory",
		},
		domain.ErrorCategoryConfig: {
			"Verify configuration file format and values",
			"Try: cmreport init to generate a valid config file",
			"Check for syntax errors in cmreport.yaml or .cmreport.toml",
		},
		domain.ErrorCategoryProcessing: {
			"Make sure the input is a code metrics XML report",
			"Check that the report contains an Assembly with Metrics and Namespaces",
			"Metric values must be non-negative whole numbers",
		},
		domain.ErrorCategoryOutput: {
			"Ensure the output directory exists and is writable",
			"Use an .html or .htm extension for HTML, anything else for CSV",
			"Try writing to a different location",
		},
		domain.ErrorCategoryUnknown: {
			"Run with --verbose for detailed error information",
			"Report the issue if it persists",
		},
	}

	if sug, ok := suggestions[category]; ok {
		return sug
	}
	return []string{"Check the error message for more details"}
}

// getCategoryMessage returns a user-friendly message for an error category
func (ec *ErrorCategorizerImpl) getCategoryMessage(category domain.ErrorCategory) string {
	messages := map[domain.ErrorCategory]string{
		domain.ErrorCategoryInput:      "Failed to read the input report",
		domain.ErrorCategoryConfig:     "Configuration file or settings error",
		domain.ErrorCategoryProcessing: "The input is not a valid code metrics report",
		domain.ErrorCategoryOutput:     "Failed to generate or write output",
	}

	if msg, ok := messages[category]; ok {
		return msg
	}
	return "An unexpected error occurred"
}

// containsAnyPattern checks if a string contains any of the given patterns
func containsAnyPattern(str string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(str, pattern) {
			return true
		}
	}
	return false
}
