package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayName turns a product key like "iron_bar" into "Iron Bar"
func DisplayName(name string) string {
	name = strings.ReplaceAll(name, "_", " ")
	return cases.Title(language.English).String(strings.Join(strings.Fields(name), " "))
}
