// Package field provides ready-made collaborators for form.AddField.
//
// Every kind embeds Generic, so all of them accept the "required" and
// "rules" options and custom steps through AddProcessing. The steps of a
// field run in this order: the required check, the kind's conversion, the
// validator rules and finally the custom steps.
//
//	f := form.New()
//	err := f.AddField("age", field.NewInteger(), map[string]any{
//		"required": true,
//		"min":      18,
//	})
package field
