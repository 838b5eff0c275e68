package gen

import (
	"strings"

	"github.com/viant/tagly/format/text"
)

type jsonTag struct {
	Name      string
	OmitEmpty bool
	Explicit  bool
	Transient bool
}

func parseJSONTag(defaultName string, raw string) jsonTag {
	if raw == "" {
		return jsonTag{Name: defaultName}
	}
	parts := strings.Split(raw, ",")
	name := parts[0]
	explicit := true
	if name == "" {
		name = defaultName
		explicit = false
	}
	tag := jsonTag{
		Name:      name,
		Explicit:  explicit,
		Transient: name == "-" && len(parts) == 1,
	}
	for _, p := range parts[1:] {
		if p == "omitempty" {
			tag.OmitEmpty = true
			break
		}
	}
	return tag
}

// formatName converts a Go field name to caseFormat; an undefined format keeps it.
func formatName(fieldName string, caseFormat text.CaseFormat) string {
	if !caseFormat.IsDefined() {
		return fieldName
	}
	if fieldName == "ID" {
		switch caseFormat {
		case text.CaseFormatLower, text.CaseFormatLowerCamel, text.CaseFormatLowerUnderscore:
			return "id"
		}
	}
	src := text.DetectCaseFormat(fieldName)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(fieldName, caseFormat)
}
