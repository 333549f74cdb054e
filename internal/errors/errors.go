package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrCorpusNotFound is returned when a corpus is not found
	ErrCorpusNotFound = errors.New("corpus not found")

	// ErrCorpusAlreadyExists is returned when trying to load a corpus under a name that is taken
	ErrCorpusAlreadyExists = errors.New("corpus already exists")

	// ErrUnknownScorer is returned when a scorer name does not resolve to a backend
	ErrUnknownScorer = errors.New("unknown scorer")

	// ErrJobNotFound is returned when a job is not found
	ErrJobNotFound = errors.New("job not found")

	// ErrReportNotFound is returned when a benchmark report is not found
	ErrReportNotFound = errors.New("report not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// CorpusNotFoundError represents a corpus not found error with context
type CorpusNotFoundError struct {
	CorpusName string
}

func (e *CorpusNotFoundError) Error() string {
	return fmt.Sprintf("corpus named '%s' not found", e.CorpusName)
}

func (e *CorpusNotFoundError) Is(target error) bool {
	return target == ErrCorpusNotFound
}

// NewCorpusNotFoundError creates a new CorpusNotFoundError
func NewCorpusNotFoundError(corpusName string) *CorpusNotFoundError {
	return &CorpusNotFoundError{CorpusName: corpusName}
}

// CorpusAlreadyExistsError represents a corpus name collision with context
type CorpusAlreadyExistsError struct {
	CorpusName string
}

func (e *CorpusAlreadyExistsError) Error() string {
	return fmt.Sprintf("corpus named '%s' already exists", e.CorpusName)
}

func (e *CorpusAlreadyExistsError) Is(target error) bool {
	return target == ErrCorpusAlreadyExists
}

// NewCorpusAlreadyExistsError creates a new CorpusAlreadyExistsError
func NewCorpusAlreadyExistsError(corpusName string) *CorpusAlreadyExistsError {
	return &CorpusAlreadyExistsError{CorpusName: corpusName}
}

// UnknownScorerError represents an unknown scorer name with context
type UnknownScorerError struct {
	Name string
}

func (e *UnknownScorerError) Error() string {
	return fmt.Sprintf("unknown scorer '%s'", e.Name)
}

func (e *UnknownScorerError) Is(target error) bool {
	return target == ErrUnknownScorer
}

// NewUnknownScorerError creates a new UnknownScorerError
func NewUnknownScorerError(name string) *UnknownScorerError {
	return &UnknownScorerError{Name: name}
}

// JobNotFoundError represents a job not found error with context
type JobNotFoundError struct {
	JobID string
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job with ID '%s' not found", e.JobID)
}

func (e *JobNotFoundError) Is(target error) bool {
	return target == ErrJobNotFound
}

// NewJobNotFoundError creates a new JobNotFoundError
func NewJobNotFoundError(jobID string) *JobNotFoundError {
	return &JobNotFoundError{JobID: jobID}
}

// ReportNotFoundError represents a benchmark report not found error with context
type ReportNotFoundError struct {
	ReportID string
}

func (e *ReportNotFoundError) Error() string {
	return fmt.Sprintf("report with ID '%s' not found", e.ReportID)
}

func (e *ReportNotFoundError) Is(target error) bool {
	return target == ErrReportNotFound
}

// NewReportNotFoundError creates a new ReportNotFoundError
func NewReportNotFoundError(reportID string) *ReportNotFoundError {
	return &ReportNotFoundError{ReportID: reportID}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
