package encoder

import (
	"fmt"
	"strings"

	"github.com/roadcast/roadcast/pkg/rcdf"
)

// Classification is the derived priority, condition codes and sign code for a
// single record.
type Classification struct {
	Priority int // 0-7
	Codes    []ITISCode
	SignCode string
}

const defaultPriority = 3

// severityRules is evaluated top to bottom, first match wins. The ordering is
// load-bearing for compatibility with deployed receivers; reordering is a
// behaviour change, not a cleanup.
var severityRules = []struct {
	keywords []string
	priority int
}{
	{[]string{"fatality", "wrong way"}, 7},
	{[]string{"injury", "fire"}, 6},
	{[]string{"accident", "crash"}, 5},
	{[]string{"stalled", "debris"}, 4},
	{[]string{"construction", "lane closed"}, 3},
	{[]string{"slow traffic"}, 2},
}

func containsAny(text string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}

	return false
}

func classifyPriority(text string) int {
	lower := strings.ToLower(text)

	for _, rule := range severityRules {
		if containsAny(lower, rule.keywords...) {
			return rule.priority
		}
	}

	return defaultPriority
}

func classifyEventCodes(text string) []ITISCode {
	lower := strings.ToLower(text)

	var codes []ITISCode

	switch {
	case containsAny(lower, "accident", "crash"):
		codes = append(codes, ITISAccident)
	case containsAny(lower, "stalled", "disabled"):
		codes = append(codes, ITISStalledVehicle)
	case strings.Contains(lower, "debris"):
		codes = append(codes, ITISDebrisOnRoadway)
	case strings.Contains(lower, "wrong way"):
		codes = append(codes, ITISWrongWayDriver, ITISDanger)
	}

	if strings.Contains(lower, "construction") {
		codes = append(codes, ITISConstruction)
	} else if containsAny(lower, "road work", "work") {
		codes = append(codes, ITISRoadWorkAhead)
	}

	if containsAny(lower, "lane closed", "lane closure") {
		codes = append(codes, ITISLaneClosed)
	}

	if len(codes) == 0 {
		codes = append(codes, ITISIncidentAhead)
	}

	return codes
}

// ClassifyEvent derives priority, condition codes and the sign code from the
// event's free text fields
func ClassifyEvent(event *rcdf.SourceEvent) Classification {
	text := fmt.Sprintf("%s %s", event.Description, event.EventType)

	return Classification{
		Priority: classifyPriority(text),
		Codes:    classifyEventCodes(text),
		SignCode: eventSignCode(text),
	}
}
