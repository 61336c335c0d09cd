package secrets

// Mask formats a leaf value for display without revealing the secret. It is a
// display formatter, not security-grade redaction.
//
// Non-string values mask to "*". Strings of up to 8 characters mask to "***"
// regardless of their actual length; longer strings keep their first and last
// two characters around the marker, e.g. "admin@example.com" becomes
// "ad***om". Length is counted in characters, not bytes.
func Mask(value any) string {
	s, ok := value.(string)
	if !ok {
		return "*"
	}
	runes := []rune(s)
	if len(runes) <= 8 {
		return "***"
	}
	return string(runes[:2]) + "***" + string(runes[len(runes)-2:])
}
