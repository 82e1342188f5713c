/*
Package style holds the resolved CSS properties of a styled node.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/styledom/dom/style/cssom"
)

// tracer will return a tracer. We are tracing to 'styledom.style'
func tracer() tracing.Trace {
	return tracing.Select("styledom.style")
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value cssom.Value
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds resolved CSS properties, keyed by property name.
// nil is a legal (empty) property map for reading.
type PropertyMap struct {
	m map[string]cssom.Value // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{m: make(map[string]cssom.Value)}
}

// Len returns the number of properties.
func (pmap *PropertyMap) Len() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Get returns a property value, together with an indicator wether it has
// been found in the property map. No cascading is performed.
func (pmap *PropertyMap) Get(key string) (cssom.Value, bool) {
	if pmap == nil {
		return nil, false
	}
	v, ok := pmap.m[key]
	return v, ok
}

// Set a property's value. Overwrites an existing value, if present.
func (pmap *PropertyMap) Set(key string, v cssom.Value) {
	if pmap.m == nil {
		pmap.m = make(map[string]cssom.Value)
	}
	pmap.m[key] = v
}

// Keys returns all property names, sorted.
func (pmap *PropertyMap) Keys() []string {
	if pmap == nil {
		return nil
	}
	keys := make([]string, 0, len(pmap.m))
	for k := range pmap.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Properties returns all properties ordered by key.
func (pmap *PropertyMap) Properties() []KeyValue {
	keys := pmap.Keys()
	r := make([]KeyValue, len(keys))
	for i, k := range keys {
		r[i] = KeyValue{k, pmap.m[k]}
	}
	return r
}

func (pmap *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, kv := range pmap.Properties() {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", kv.Key, kv.Value)
	}
	b.WriteString("}")
	return b.String()
}

// Equal checks if two property maps hold the same properties.
func (pmap *PropertyMap) Equal(other *PropertyMap) bool {
	if pmap.Len() != other.Len() {
		return false
	}
	for _, k := range pmap.Keys() {
		v, _ := pmap.Get(k)
		w, ok := other.Get(k)
		if !ok || v != w {
			return false
		}
	}
	return true
}

// --- CSS Property Groups ----------------------------------------------

// PropertyGroup is a read-only selection of properties sharing a common
// topic. CSS knows a whole lot of properties; we split them up into
// organisatorial groups for display purposes.
//
// The mapping of property into groups is documented with
// GroupNameFromPropertyKey[...].
type PropertyGroup struct {
	name  string
	props []KeyValue
}

// Name returns the name of the property group.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Properties returns all properties of a group, ordered by key.
func (pg *PropertyGroup) Properties() []KeyValue {
	return pg.props
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	s := "[" + pg.name + "] =\n"
	for _, kv := range pg.props {
		s += fmt.Sprintf("  %s = %s\n", kv.Key, kv.Value)
	}
	return s
}

// Group returns the properties of a property map belonging to a group,
// or nil if the map has no property of this group.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	var pg *PropertyGroup
	for _, kv := range pmap.Properties() {
		if GroupNameFromPropertyKey(kv.Key) != groupname {
			continue
		}
		if pg == nil {
			pg = &PropertyGroup{name: groupname}
		}
		pg.props = append(pg.props, kv)
	}
	return pg
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGRegion    = "Region"
	PGColor     = "Color"
	PGText      = "Text"
	PGX         = "X"
)

// AllGroups lists all property group names.
var AllGroups = []string{
	PGMargins, PGPadding, PGBorder, PGDimension, PGDisplay,
	PGRegion, PGColor, PGText, PGX,
}

var groupNameFromPropertyKey = map[string]string{
	"margin":                     PGMargins, // Margins
	"margin-top":                 PGMargins,
	"margin-left":                PGMargins,
	"margin-right":               PGMargins,
	"margin-bottom":              PGMargins,
	"padding":                    PGPadding, // Padding
	"padding-top":                PGPadding,
	"padding-left":               PGPadding,
	"padding-right":              PGPadding,
	"padding-bottom":             PGPadding,
	"border-color":               PGBorder, // Border
	"border-width":               PGBorder,
	"border-style":               PGBorder,
	"border-top-color":           PGBorder,
	"border-left-color":          PGBorder,
	"border-right-color":         PGBorder,
	"border-bottom-color":        PGBorder,
	"border-top-width":           PGBorder,
	"border-left-width":          PGBorder,
	"border-right-width":         PGBorder,
	"border-bottom-width":        PGBorder,
	"border-top-style":           PGBorder,
	"border-left-style":          PGBorder,
	"border-right-style":         PGBorder,
	"border-bottom-style":        PGBorder,
	"border-top-left-radius":     PGBorder,
	"border-top-right-radius":    PGBorder,
	"border-bottom-left-radius":  PGBorder,
	"border-bottom-right-radius": PGBorder,
	"width":                      PGDimension, // Dimension
	"height":                     PGDimension,
	"min-width":                  PGDimension,
	"min-height":                 PGDimension,
	"max-width":                  PGDimension,
	"max-height":                 PGDimension,
	"display":                    PGDisplay, // Display
	"float":                      PGDisplay,
	"visibility":                 PGDisplay,
	"position":                   PGDisplay,
	"flow-into":                  PGRegion,
	"flow-from":                  PGRegion,
	"color":                      PGColor,
	"background":                 PGColor,
	"background-color":           PGColor,
	"direction":                  PGText,
	"white-space":                PGText,
	"word-spacing":               PGText,
	"letter-spacing":             PGText,
	"word-break":                 PGText,
	"word-wrap":                  PGText,
	"font-size":                  PGText,
	"font-family":                PGText,
	"font-weight":                PGText,
	"line-height":                PGText,
}

// IsCascading returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., a call to retrieve its value will cascade.
func IsCascading(key string) bool {
	if strings.HasPrefix(key, "list-style") || strings.HasPrefix(key, "font") {
		return true
	}
	switch key {
	case "color", "cursor", "direction", "flow-into", "flow-from":
		return true
	case "letter-spacing", "line-height", "quotes", "visibility", "white-space":
		return true
	case "word-spacing", "word-break", "word-wrap":
		return true
	}
	return false
}
