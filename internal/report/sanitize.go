package report

import "regexp"

// maxSheetNameLen is the xlsx limit on sheet name length.
const maxSheetNameLen = 31

// illegalSheetChars matches the characters xlsx forbids in sheet names. The
// same sanitized name is used for per-channel cache filenames, so the set
// also covers path separators.
var illegalSheetChars = regexp.MustCompile(`[\\/*?:\[\]]`)

// SanitizeSheetName replaces illegal characters with underscores and
// truncates the result to the maximum sheet name length.
func SanitizeSheetName(name string) string {
	safe := illegalSheetChars.ReplaceAllString(name, "_")
	runes := []rune(safe)
	if len(runes) > maxSheetNameLen {
		runes = runes[:maxSheetNameLen]
	}
	return string(runes)
}
