// Package messages holds the diagnostics reported against form fields.
//
// A Messages value maps field names to an ordered list of payloads. A
// payload is free-form: plain text, an error, or any structured value a
// processing step chose to report. A field with no messages is valid, and
// a Messages value is valid only when no field has any message.
//
// Payloads are never deduplicated or overwritten; they are kept in the
// order they were reported.
package messages
