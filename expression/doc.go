// Package expression builds triggers, validations and processing steps from
// expr-lang expressions, so pipelines can be described in configuration.
//
// Triggers see a single variable, field, and must produce a boolean:
//
//	field startsWith "tmp_"
//
// Validations and processing steps see:
//
//	value  the current value of the field
//	field  the field name
//	raw    the raw input map
//	get    get("other") evaluates another field and returns its value
//
// A validation may produce a boolean, or a list of messages where an empty
// list means valid:
//
//	get("password") == value ? [] : ["passwords do not match"]
package expression
