package questionnaire

import (
	"strconv"
	"strings"
)

// Kind tags the shape of a submitted answer value.
type Kind int

const (
	KindEmpty  Kind = iota // no answer
	KindBool               // yes/no submitted as a real boolean
	KindLabel              // one label (single choice) or free text
	KindLabels             // selected labels (multi choice)
	KindNumber             // scale/number value
)

// AnswerValue is a tagged variant holding one submitted answer. The
// scoring strategies switch on the question type and read the variant
// through the accessors below, so malformed shapes degrade to zero
// credit instead of failing. Free-text answers ride in the label
// variant; they are never scored.
type AnswerValue struct {
	kind   Kind
	b      bool
	s      string
	labels []string
	n      float64
}

func Empty() AnswerValue             { return AnswerValue{kind: KindEmpty} }
func Bool(v bool) AnswerValue        { return AnswerValue{kind: KindBool, b: v} }
func Label(s string) AnswerValue     { return AnswerValue{kind: KindLabel, s: s} }
func Labels(ls []string) AnswerValue { return AnswerValue{kind: KindLabels, labels: ls} }
func Number(v float64) AnswerValue   { return AnswerValue{kind: KindNumber, n: v} }

func (v AnswerValue) Kind() Kind { return v.kind }

// IsEmpty reports whether the value counts as unanswered for progress
// tracking: missing, empty string, or empty selection.
func (v AnswerValue) IsEmpty() bool {
	switch v.kind {
	case KindEmpty:
		return true
	case KindLabel:
		return v.s == ""
	case KindLabels:
		return len(v.labels) == 0
	}
	return false
}

// Truthy implements the yes/no acceptance rule: a boolean is taken as
// is, and a string counts as yes iff it is one of 1/true/t/yes/y,
// case-insensitively. Everything else, including no answer at all, is
// no; yes/no questions have no neutral state.
func (v AnswerValue) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindLabel:
		switch strings.ToLower(strings.TrimSpace(v.s)) {
		case "1", "true", "t", "yes", "y":
			return true
		}
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64) == "1"
	}
	return false
}

// Label returns the chosen label for a single-choice question, and
// false when nothing usable was chosen.
func (v AnswerValue) Label() (string, bool) {
	if v.kind == KindLabel && v.s != "" {
		return v.s, true
	}
	return "", false
}

// Labels returns the selected labels for a multi-choice question. A
// lone label counts as a one-element selection.
func (v AnswerValue) Labels() []string {
	switch v.kind {
	case KindLabels:
		return v.labels
	case KindLabel:
		if v.s != "" {
			return []string{v.s}
		}
	}
	return nil
}

// Number returns the numeric value for scale/number questions,
// parsing numeric strings, and false when the value is non-numeric.
func (v AnswerValue) Number() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.n, true
	case KindLabel:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// String renders the raw answer for reporting. Not a round-trippable
// encoding; selections join with a comma.
func (v AnswerValue) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindLabel:
		return v.s
	case KindLabels:
		return strings.Join(v.labels, ", ")
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	}
	return ""
}

// FromJSON resolves a decoded JSON value into the tagged variant once,
// at the boundary, so the scorers never probe interface{} shapes.
func FromJSON(v interface{}) AnswerValue {
	switch t := v.(type) {
	case nil:
		return Empty()
	case bool:
		return Bool(t)
	case float64:
		return Number(t)
	case string:
		if t == "" {
			return Empty()
		}
		return Label(t)
	case []string:
		if len(t) == 0 {
			return Empty()
		}
		return Labels(t)
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return Empty()
		}
		return Labels(out)
	default:
		return Empty()
	}
}

// AnswersFromJSON resolves a whole decoded answers map keyed by
// question code. Keys that match no question are simply never read.
func AnswersFromJSON(raw map[string]interface{}) map[string]AnswerValue {
	out := make(map[string]AnswerValue, len(raw))
	for code, v := range raw {
		out[code] = FromJSON(v)
	}
	return out
}
