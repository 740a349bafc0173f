package keymap

import (
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/gridnav/config"
)

var bindingType = reflect.TypeOf(key.Binding{})

// ApplyOverrides replaces the keys of every key.Binding field in km whose
// snake_case name appears in overrides, keeping the help description. km must
// be a pointer to a struct; embedded structs are searched too. It returns the
// override actions that matched no field, sorted.
//
//	ApplyOverrides(&km, overrides) // overrides["first_cell"] -> km.FirstCell
func ApplyOverrides(km interface{}, overrides config.KeybindingSectionConfig) []string {
	if len(overrides) == 0 {
		return nil
	}

	v := reflect.ValueOf(km)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return nil
	}

	fields := map[string]reflect.Value{}
	collectBindings(v.Elem(), fields)

	var unknown []string
	for action, keys := range overrides {
		field, ok := fields[action]
		if !ok {
			unknown = append(unknown, action)
			continue
		}
		if len(keys) == 0 {
			continue
		}
		current := field.Interface().(key.Binding)
		field.Set(reflect.ValueOf(key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], current.Help().Desc),
		)))
	}
	sort.Strings(unknown)
	return unknown
}

// collectBindings indexes the settable key.Binding fields of v by their
// config name. Fields of the outer struct shadow embedded ones.
func collectBindings(v reflect.Value, into map[string]reflect.Value) {
	t := v.Type()
	var embedded []reflect.Value

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		sf := t.Field(i)
		if !field.CanSet() {
			continue
		}
		if sf.Anonymous && field.Kind() == reflect.Struct {
			embedded = append(embedded, field)
			continue
		}
		if sf.Type == bindingType {
			into[camelToSnake(sf.Name)] = field
		}
	}

	for _, e := range embedded {
		inner := map[string]reflect.Value{}
		collectBindings(e, inner)
		for name, field := range inner {
			if _, ok := into[name]; !ok {
				into[name] = field
			}
		}
	}
}

// camelToSnake converts a field name to its config key: FirstCell ->
// first_cell, HTTPServer -> http_server.
func camelToSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// word boundary: after a lowercase letter, or at the last capital
			// of an acronym followed by lowercase
			if i > 0 && (unicode.IsLower(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsUpper(runes[i-1]) && unicode.IsLower(runes[i+1]))) {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
