package rule

import (
	"net/mail"
	"strings"
)

// Email fails when the value is not a valid email address. The value must
// parse under RFC 5322 and additionally carry a dotted domain, which filters
// out addresses like "a@b" that are technically valid but useless for
// typical web forms.
func Email() Sync[string] {
	return Sync[string]{
		Description: "Must be a valid email address",
		Feedback:    "This is not a valid email address",
		Check: func(value string) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			parts := strings.Split(addr.Address, "@")
			if len(parts) != 2 {
				return false
			}

			localPart := parts[0]
			domain := parts[1]

			if localPart == "" {
				return false
			}

			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			return true
		},
	}
}
