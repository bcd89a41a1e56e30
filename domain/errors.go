package domain

import (
	"errors"
	"fmt"
)

// DomainError represents errors in the domain layer
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

func (e DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e DomainError) Unwrap() error {
	return e.Cause
}

// Domain error codes
const (
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeFileNotFound      = "FILE_NOT_FOUND"
	ErrCodeMalformedXML      = "MALFORMED_XML"
	ErrCodeMissingSection    = "MISSING_SECTION"
	ErrCodeMissingAttribute  = "MISSING_ATTRIBUTE"
	ErrCodeMalformedMetric   = "MALFORMED_METRIC"
	ErrCodeConfigError       = "CONFIG_ERROR"
	ErrCodeOutputError       = "OUTPUT_ERROR"
	ErrCodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
)

// NewDomainError creates a new domain error
func NewDomainError(code, message string, cause error) error {
	return DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewInvalidInputError creates an invalid input error
func NewInvalidInputError(message string, cause error) error {
	return NewDomainError(ErrCodeInvalidInput, message, cause)
}

// NewFileNotFoundError creates a file not found error
func NewFileNotFoundError(path string, cause error) error {
	return NewDomainError(ErrCodeFileNotFound, fmt.Sprintf("file not found: %s", path), cause)
}

// NewMalformedXMLError reports a document that could not be parsed
func NewMalformedXMLError(source string, cause error) error {
	return NewDomainError(ErrCodeMalformedXML, fmt.Sprintf("failed to parse XML: %s", source), cause)
}

// NewMissingSectionError reports a required element that is absent
func NewMissingSectionError(element, parent string) error {
	if parent == "" {
		return NewDomainError(ErrCodeMissingSection, fmt.Sprintf("missing <%s> element", element), nil)
	}
	return NewDomainError(ErrCodeMissingSection, fmt.Sprintf("missing <%s> element under <%s>", element, parent), nil)
}

// NewMissingAttributeError reports a required attribute that is absent or unusable
func NewMissingAttributeError(attribute, element, detail string) error {
	msg := fmt.Sprintf("missing %s attribute on <%s>", attribute, element)
	if detail != "" {
		msg += " (" + detail + ")"
	}
	return NewDomainError(ErrCodeMissingAttribute, msg, nil)
}

// NewMalformedMetricError reports a metric Value that is not a non-negative integer
func NewMalformedMetricError(metric, value string, cause error) error {
	return NewDomainError(ErrCodeMalformedMetric, fmt.Sprintf("metric %q has non-integer value %q", metric, value), cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) error {
	return NewDomainError(ErrCodeConfigError, message, cause)
}

// NewOutputError creates an output error
func NewOutputError(message string, cause error) error {
	return NewDomainError(ErrCodeOutputError, message, cause)
}

// NewUnsupportedFormatError creates an unsupported format error
func NewUnsupportedFormatError(format string) error {
	return NewDomainError(ErrCodeUnsupportedFormat, fmt.Sprintf("unsupported format: %s", format), nil)
}

// NewValidationError creates a validation error
func NewValidationError(message string) error {
	return NewDomainError(ErrCodeInvalidInput, message, nil)
}

// HasCode reports whether any DomainError in err's chain carries code.
func HasCode(err error, code string) bool {
	for err != nil {
		var de DomainError
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Cause
	}
	return false
}

// ErrorCode returns the code of the outermost DomainError in err's chain, or "".
func ErrorCode(err error) string {
	var de DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
