package services

import (
	"errors"
	"fmt"
)

var (
	ErrNoFile            = errors.New("no file uploaded")
	ErrUnsupportedFormat = errors.New("unsupported file format. Please upload PDF or DOCX")
	ErrEmptyText         = errors.New("could not extract text from the file")
	ErrCompletion        = errors.New("language model completion failed")
)

// ExtractionError reports a document that could not be read.
type ExtractionError struct {
	Format string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Format, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// CompletionError reports a failed model call for one analysis task.
type CompletionError struct {
	Task Task
	Err  error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("failed to generate %s: %v", e.Task, e.Err)
}

func (e *CompletionError) Is(target error) bool {
	return target == ErrCompletion
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}
