package rule

import (
	"fmt"
	"regexp"
	"strings"
)

// Required fails when the value is empty after trimming whitespace.
func Required() Sync[string] {
	return Sync[string]{
		Description: "This item is required",
		Feedback:    "You have not provided this item",
		Check: func(value string) bool {
			return strings.TrimSpace(value) != ""
		},
	}
}

// MinLen fails when the value is shorter than min bytes.
func MinLen(min int) Sync[string] {
	return Sync[string]{
		Description: fmt.Sprintf("Must be at least %d characters long", min),
		Feedback:    fmt.Sprintf("This item must be at least %d characters long", min),
		Check: func(value string) bool {
			return len(value) >= min
		},
	}
}

// MaxLen fails when the value is longer than max bytes.
func MaxLen(max int) Sync[string] {
	return Sync[string]{
		Description: fmt.Sprintf("Must be at most %d characters long", max),
		Feedback:    fmt.Sprintf("This item must be at most %d characters long", max),
		Check: func(value string) bool {
			return len(value) <= max
		},
	}
}

// Match fails when the value does not match re. The description and feedback
// texts are supplied by the caller since a raw pattern is rarely useful to
// end users.
func Match(re *regexp.Regexp, description, feedback string) Sync[string] {
	return Sync[string]{
		Description: description,
		Feedback:    feedback,
		Check: func(value string) bool {
			return re.MatchString(value)
		},
	}
}
