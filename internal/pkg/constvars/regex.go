package constvars

const (
	RegexDigitsOnly = `^\d+$`
)
