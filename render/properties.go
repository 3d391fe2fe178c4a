package render

import (
	"github.com/dcolson/schemagen/naming"
	"github.com/dcolson/schemagen/source"
	"github.com/dcolson/schemagen/typeir"
)

// PropertyBlankLineMode controls how ForEachClassProperty spaces
// consecutive properties when some carry descriptions worth setting off
// visually (spec.md §4.3).
type PropertyBlankLineMode int

const (
	// PropertiesCompact never interposes blank lines.
	PropertiesCompact PropertyBlankLineMode = iota
	// PropertiesSpaceDescribed inserts a blank line before any property
	// that has a Description, except the first.
	PropertiesSpaceDescribed
)

// ForEachClassProperty visits c's properties in declaration order,
// resolving each one's assigned Name from names before calling fn. mode
// controls interposed blank lines.
func ForEachClassProperty(
	b *source.Buffer,
	names *Names,
	c *typeir.ClassType,
	mode PropertyBlankLineMode,
	fn func(name *naming.Name, rawJSONName string, prop typeir.Property),
) {
	for i, p := range c.Properties {
		if mode == PropertiesSpaceDescribed && i > 0 && p.Description != "" {
			b.EnsureBlankLine()
		}
		fn(names.PropertyName(c, p.Name), p.Name, p)
	}
}
