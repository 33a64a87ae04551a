package util

import (
	"regexp"
	"strings"
)

var secretPatterns = []*regexp.Regexp{
	regexp.MustCompile(`sk-[A-Za-z0-9_\-]{8,}`),
	regexp.MustCompile(`AIza[0-9A-Za-z_\-]{20,}`),
	regexp.MustCompile(`(?i)([?&]key=)[^&\s"]+`),
}

// RedactSecrets masks API keys that providers or transports may echo back
// in error text. Any extra values are masked verbatim.
func RedactSecrets(msg string, extra ...string) string {
	for _, v := range extra {
		if len(v) >= 4 {
			msg = strings.ReplaceAll(msg, v, "[redacted]")
		}
	}
	for i, re := range secretPatterns {
		if i == len(secretPatterns)-1 {
			msg = re.ReplaceAllString(msg, "${1}[redacted]")
			continue
		}
		msg = re.ReplaceAllString(msg, "[redacted]")
	}
	return msg
}
