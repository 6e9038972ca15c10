// SPDX-License-Identifier: Apache-2.0

// Package extraction finds structured data items (emails, URLs, phone
// numbers, card numbers, times, markup tags, hashtags and currency amounts)
// in unstructured text using an ordered, immutable table of patterns.
package extraction

import (
	"errors"
	"fmt"
)

// Category names a class of data to extract, e.g. "Email Addresses".
type Category string

// Categories registered by the default registry, in report order.
const (
	CategoryEmail      Category = "Email Addresses"
	CategoryURL        Category = "URLs"
	CategoryPhone      Category = "Phone Numbers"
	CategoryCreditCard Category = "Credit Card Numbers"
	CategoryTime       Category = "Time Formats"
	CategoryHTMLTag    Category = "HTML Tags"
	CategoryHashtag    Category = "Hashtags"
	CategoryCurrency   Category = "Currency Amounts"
)

var (
	// ErrEmptyCategory is returned when a definition has no category label.
	ErrEmptyCategory = errors.New("category label is empty")
	// ErrDuplicateCategory is returned when two definitions share a label.
	ErrDuplicateCategory = errors.New("duplicate category")
	// ErrUnknownCategory is returned when a category is not registered.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrInvalidEncoding is returned when the input text is not valid UTF-8.
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
	// ErrInputTooLarge is returned when the input exceeds the configured size limit.
	ErrInputTooLarge = errors.New("input exceeds maximum size")
)

// ExtractionError reports a scan that could not complete for a category.
// No partial report accompanies it.
type ExtractionError struct {
	Category Category
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction of %q failed: %v", e.Category, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
