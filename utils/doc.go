// Package utils provides internal utility functions for the FatturaPA codec.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Calendar date formatting for schema date fields
//   - Payment due-date arithmetic
package utils
