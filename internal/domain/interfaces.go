package domain

// Displayable is implemented by every entity that can appear as a list row.
// Film and Starship implement this interface directly.
type Displayable interface {
	// TitleLabelText returns the primary row text
	TitleLabelText() string

	// SubtitleLabelText returns the secondary row text (e.g., release date, model)
	SubtitleLabelText() string
}

// Field is a labelled value shown in the detail pane
type Field struct {
	Label string
	Value string
}

// Describer is implemented by entities that have more to show than a row.
type Describer interface {
	// DetailFields returns the fields for the detail pane, in display order.
	// Fields with an empty value are omitted.
	DetailFields() []Field
}
