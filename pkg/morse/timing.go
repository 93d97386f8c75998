package morse

import (
	"iter"
	"strings"
	"time"
)

// EventKind tags one entry in a transmission plan.
type EventKind int

const (
	// MarkDot is a sounded dot, 1 unit long.
	MarkDot EventKind = iota
	// MarkDash is a sounded dash, 3 units long.
	MarkDash
	// GapMark is the silence between marks of one character, 1 unit.
	GapMark
	// GapChar is the silence between characters of one word, 3 units
	// counted from the end of the previous mark.
	GapChar
	// GapWord is the silence between words, 7 units counted from the end
	// of the previous mark.
	GapWord
	// Literal is a passthrough of a symbol that is neither a mark nor a
	// separator, e.g. the ### unknown-character marker. Zero duration.
	Literal
)

func (k EventKind) String() string {
	switch k {
	case MarkDot:
		return "dot"
	case MarkDash:
		return "dash"
	case GapMark:
		return "mark gap"
	case GapChar:
		return "char gap"
	case GapWord:
		return "word gap"
	case Literal:
		return "literal"
	default:
		return "unknown"
	}
}

// Event is one timed step of a transmission. Sym carries the original
// rune for mark and literal events, for callers that render the plan.
type Event struct {
	Kind     EventKind
	Sym      rune
	Duration time.Duration
}

// fallbackUnit is used when the WPM parameter would make the unit
// duration zero or negative.
const fallbackUnit = 100 * time.Millisecond

// Unit returns the base duration all mark and gap durations derive from.
// The calibration word PARIS spans 50 units, so one unit is
// 60/(50*wpm) seconds. Degenerate wpm values fall back to 100ms instead
// of dividing by zero.
func Unit(wpm int) time.Duration {
	if wpm <= 0 {
		return fallbackUnit
	}
	unit := time.Duration(float64(time.Second) * 60 / (50 * float64(wpm)))
	if unit <= 0 {
		return fallbackUnit
	}
	return unit
}

// PlanTransmission turns a morse message into the ordered event sequence
// that a player would realize as sound and delay. The sequence is lazy,
// finite and restartable: ranging over it twice replays the same plan,
// and breaking out early has no side effects. Dot:dash durations are 1:3
// and mark:char:word gaps 1:3:7, per the International Morse timing
// standard. The planner itself never sleeps and never writes output.
func PlanTransmission(message string, wpm int) iter.Seq[Event] {
	unit := Unit(wpm)
	return func(yield func(Event) bool) {
		message := strings.TrimSpace(message)
		if message == "" {
			return
		}
		words := wordSep.Split(message, -1)
		for wi, word := range words {
			codes := strings.Fields(word)
			for ci, code := range codes {
				marks := []rune(code)
				for mi, mark := range marks {
					var ev Event
					switch mark {
					case Dot:
						ev = Event{Kind: MarkDot, Sym: mark, Duration: unit}
					case Dash:
						ev = Event{Kind: MarkDash, Sym: mark, Duration: 3 * unit}
					default:
						ev = Event{Kind: Literal, Sym: mark}
					}
					if !yield(ev) {
						return
					}
					if ev.Kind != Literal && mi < len(marks)-1 {
						if !yield(Event{Kind: GapMark, Duration: unit}) {
							return
						}
					}
				}
				if ci < len(codes)-1 {
					if !yield(Event{Kind: GapChar, Duration: 3 * unit}) {
						return
					}
				}
			}
			if wi < len(words)-1 {
				if !yield(Event{Kind: GapWord, Duration: 7 * unit}) {
					return
				}
			}
		}
	}
}
