package response_models

// PackingCategory is one group of a generated packing list. Checked maps the
// item index (as a string key, the way it round-trips through JSON) to
// whether the user ticked it off.
type PackingCategory struct {
	Category string          `json:"category"`
	Items    []string        `json:"items"`
	Checked  map[string]bool `json:"checked,omitempty"`
}
