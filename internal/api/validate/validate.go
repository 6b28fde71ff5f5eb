package validate

import (
	"regexp"
	"strings"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Helpers
func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

// Match skips empty values; pair with Required for mandatory fields.
func Match(field, value string, re *regexp.Regexp, msg string) *ErrField {
	if value == "" {
		return nil
	}
	if !re.MatchString(value) {
		return &ErrField{Field: field, Msg: msg}
	}
	return nil
}
