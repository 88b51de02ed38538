package models

// Template is a named, reusable job configuration published on the farm.
// Descriptors reference templates by ID; the template body itself is the
// dispatcher's concern and is not parsed beyond these two keys.
type Template struct {
	ID   string `json:"template_id"`
	Name string `json:"name,omitempty"`
}

// DisplayName returns the human-facing name, falling back to the ID when the
// template file carries no name.
func (t Template) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.ID
}
