// Package forms holds the draft-editing primitives shared by every create and
// edit screen: repeated-string scratch fields, multipart assembly, the
// single-flight submission gate, and the failure-to-message table.
package forms

import "strings"

// AppendItem adds a scratch-field value to a repeated-string list. The input
// is trimmed first; an empty result or an exact duplicate leaves the list
// unchanged. The second return reports whether the item was appended, which
// tells the caller to clear the scratch field.
func AppendItem(list []string, input string) ([]string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return list, false
	}
	for _, existing := range list {
		if existing == trimmed {
			return list, false
		}
	}
	return append(list, trimmed), true
}

// RemoveItem drops the first occurrence of value.
func RemoveItem(list []string, value string) []string {
	for i, existing := range list {
		if existing == value {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}

// RemoveAt drops the item at index; out-of-range indexes are a no-op.
func RemoveAt(list []string, index int) []string {
	if index < 0 || index >= len(list) {
		return list
	}
	return append(list[:index:index], list[index+1:]...)
}
