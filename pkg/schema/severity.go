package schema

// Severity is the reporting level configured for a rule.
type Severity int

// Severity levels, mirroring ESLint's "off"/"warn"/"error" (or 0/1/2).
const (
	// SeverityOff disables the rule.
	SeverityOff Severity = iota
	// SeverityWarn reports violations without affecting the exit code.
	SeverityWarn
	// SeverityError reports violations and fails the run.
	SeverityError
)

// String returns the canonical string form of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a raw configuration value to a Severity.
// Accepts the string forms ("off", "warn", "error") and the numeric
// forms (0, 1, 2), including float64 as produced by JSON decoding.
// Returns the severity and true if valid, or SeverityOff and false if not.
func ParseSeverity(v any) (Severity, bool) {
	switch x := v.(type) {
	case string:
		switch x {
		case "off":
			return SeverityOff, true
		case "warn":
			return SeverityWarn, true
		case "error":
			return SeverityError, true
		}
	case int:
		return severityFromInt(x)
	case int64:
		return severityFromInt(int(x))
	case float64:
		if x == float64(int(x)) {
			return severityFromInt(int(x))
		}
	}
	return SeverityOff, false
}

func severityFromInt(n int) (Severity, bool) {
	if n < 0 || n > 2 {
		return SeverityOff, false
	}
	return Severity(n), true
}
