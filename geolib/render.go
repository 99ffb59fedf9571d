package geolib

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// LabelWidth is a width of the label column for canonical fields.
	LabelWidth = 15

	// RawLabelWidth is a width of the label column for raw provider
	// fields which are rendered verbatim.
	RawLabelWidth = 35

	// SeparatorWidth is a length of the rule under the section header.
	SeparatorWidth = 50

	// RecordTitle is a title of the section with a merged record.
	RecordTitle = "Geolocation"
)

// Separator is a rule which is printed under the header.
var Separator = strings.Repeat("-", SeparatorWidth)

// Line is a single rendered field.
type Line struct {
	Label string
	Value string
}

// Section is a rendered block of fields with a title.
type Section struct {
	Title      string
	LabelWidth int
	Fields     []Line
}

// Header returns a header of the section, without decoration.
func (s Section) Header() string {
	return s.Title + " Results"
}

// Lines returns formatted "Label: value" lines with labels justified
// to the label width.
func (s Section) Lines() []string {
	rv := make([]string, 0, len(s.Fields))

	for _, v := range s.Fields {
		rv = append(rv, fmt.Sprintf("%-*s: %s", s.LabelWidth, v.Label, v.Value))
	}

	return rv
}

// Block returns a text which is appended to the results file: a blank
// line, a header, a separator and lines.
func (s Section) Block() string {
	builder := strings.Builder{}

	builder.WriteString("\n")
	builder.WriteString(s.Header())
	builder.WriteString("\n")
	builder.WriteString(Separator)
	builder.WriteString("\n")

	for _, v := range s.Lines() {
		builder.WriteString(v)
		builder.WriteString("\n")
	}

	return builder.String()
}

// Empty tells if there is nothing to render.
func (s Section) Empty() bool {
	return len(s.Fields) == 0
}

// RenderRecord renders canonical fields in DisplayOrder. Absent or
// empty fields are skipped.
func RenderRecord(record Record) Section {
	rv := Section{
		Title:      RecordTitle,
		LabelWidth: LabelWidth,
		Fields:     make([]Line, 0, len(DisplayOrder)),
	}

	for _, name := range DisplayOrder {
		value, ok := record[name]
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}

		rv.Fields = append(rv.Fields, Line{
			Label: Label(name),
			Value: value,
		})
	}

	return rv
}

// RenderRaw renders provider fields as is, sorted by name. Labels are
// not normalized.
func RenderRaw(title string, raw RawResult) Section {
	names := make([]string, 0, len(raw))

	for k := range raw {
		names = append(names, k)
	}

	sort.Strings(names)

	rv := Section{
		Title:      title,
		LabelWidth: RawLabelWidth,
		Fields:     make([]Line, 0, len(names)),
	}

	for _, name := range names {
		if value, ok := stringifyValue(raw[name]); ok {
			rv.Fields = append(rv.Fields, Line{
				Label: name,
				Value: value,
			})
		}
	}

	return rv
}
