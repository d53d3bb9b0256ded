package encoder

import "strings"

// MUTCD sign-code equivalents. Evaluated top to bottom, first match wins -
// accident is deliberately checked before lane closures.
var signCodeRules = []struct {
	keywords []string
	code     string
}{
	{[]string{"accident", "crash"}, "W3-4"},
	{[]string{"construction", "road work", "work"}, "W20-1"},
	{[]string{"lane closed", "lane closure"}, "W20-5"},
	{[]string{"detour"}, "M4-9"},
}

const defaultSignCode = "W1-1"

func eventSignCode(text string) string {
	lower := strings.ToLower(text)

	for _, rule := range signCodeRules {
		if containsAny(lower, rule.keywords...) {
			return rule.code
		}
	}

	return defaultSignCode
}

var sensorSignCodes = map[WarningType]string{
	WarningTypeIce:           "W8-13",
	WarningTypeSlippery:      "W8-5",
	WarningTypeLowVisibility: "W8-18",
	WarningTypeHighWinds:     "W8-19",
	WarningTypeCongestion:    "W23-1",
}

func sensorSignCode(warningType WarningType) string {
	if code, ok := sensorSignCodes[warningType]; ok {
		return code
	}

	return defaultSignCode
}
