package critic

import "fmt"

// Severity grades how urgently a policy violation should be addressed.
// The scale runs 1 (gentle) to 5 (brutal), highest is most severe.
type Severity int

const (
	SeverityGentle Severity = iota + 1
	SeverityCautious
	SeverityModerate
	SeverityHarsh
	SeverityBrutal
)

var severityNames = map[Severity]string{
	SeverityGentle:   "gentle",
	SeverityCautious: "cautious",
	SeverityModerate: "moderate",
	SeverityHarsh:    "harsh",
	SeverityBrutal:   "brutal",
}

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// IsValid reports whether the severity is on the 1..5 scale.
func (s Severity) IsValid() bool {
	return s >= SeverityGentle && s <= SeverityBrutal
}

// ParseSeverity converts a name or digit into a Severity.
func ParseSeverity(text string) (Severity, error) {
	for sev, name := range severityNames {
		if name == text {
			return sev, nil
		}
	}
	switch text {
	case "1", "2", "3", "4", "5":
		return Severity(text[0] - '0'), nil
	}
	return 0, fmt.Errorf("unknown severity %q", text)
}
