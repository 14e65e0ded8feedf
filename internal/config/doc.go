// Package config provides the YAML definition file of the command line tool,
// its validation, and the assembly of a form from it.
//
// # Schema Overview
//
//	version: "1"
//	fields:
//	  - name: age
//	    kind: integer          # see field.Kinds; generic when omitted
//	    options:
//	      required: true
//	      min: 18
//	processing:
//	  - field: name            # a name or a list of names
//	    expr: trim(value)
//	validations:
//	  - field: confirm
//	    expr: 'get("password") == value ? [] : ["passwords do not match"]'
//	  - when: field endsWith "_id"   # a trigger expression instead of names
//	    expr: value != ""
//	disable: field startsWith "debug_"   # a trigger expression or a list
//
// Steps are registered in file order: field kinds first, then processing,
// then validations. An entry with neither field nor when applies to every
// field.
package config
