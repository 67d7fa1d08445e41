package utils

// MaskSecret hides all but the first character of a credential so it can be
// logged without leaking the value. Short secrets are fully masked.
func MaskSecret(s string) string {
	if len(s) <= 2 {
		return "***"
	}
	return s[:1] + "***"
}

// MaskEmail hides the local part of an e-mail address, keeping the domain
// visible for diagnostics.
func MaskEmail(addr string) string {
	for i := 0; i < len(addr); i++ {
		if addr[i] == '@' {
			return "***" + addr[i:]
		}
	}
	return MaskSecret(addr)
}
