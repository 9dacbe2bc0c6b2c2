// Package mediaid extracts media identifiers from mxc:// URLs and bare
// file names.
package mediaid

import "strings"

// Extract returns the substring after the last '/' in s. A string without
// a '/' (including the empty string) is returned unchanged.
//
// No validation of scheme or server name is performed. Upload logs and
// sticker packs in the wild contain loosely formatted values, so a
// malformed input yields a best-effort ID rather than an error.
func Extract(s string) string {
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		return s[i+1:]
	}
	return s
}
