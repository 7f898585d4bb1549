package questionnaire

import (
	"encoding/json"
	"fmt"
)

// QuestionType selects the scoring strategy for a question.
type QuestionType string

const (
	TypeYesNo  QuestionType = "yesno"
	TypeSingle QuestionType = "single"
	TypeMulti  QuestionType = "multi"
	TypeScale  QuestionType = "scale"
	TypeNumber QuestionType = "number"
	TypeText   QuestionType = "text"
)

// IsValid reports whether t is one of the known question types.
// Unknown types are still accepted by the scorer (they contribute
// nothing), so this is only for boundary validation.
func (t QuestionType) IsValid() bool {
	switch t {
	case TypeYesNo, TypeSingle, TypeMulti, TypeScale, TypeNumber, TypeText:
		return true
	}
	return false
}

// Option is one selectable choice for single/multi questions.
// Weight defaults to 1 when the source data doesn't specify one;
// an explicit 0 is a valid weight and is kept.
type Option struct {
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
}

func (o *Option) UnmarshalJSON(data []byte) error {
	raw := struct {
		Label  string   `json:"label"`
		Weight *float64 `json:"weight"`
	}{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	o.Label = raw.Label
	if raw.Weight != nil {
		o.Weight = *raw.Weight
	} else {
		o.Weight = 1
	}
	return nil
}

type Question struct {
	Section  string       `json:"section"`
	Code     string       `json:"code"`
	Title    string       `json:"title"`
	Type     QuestionType `json:"type"`
	Options  []Option     `json:"options,omitempty"` // single/multi only
	Weight   float64      `json:"weight"`
	Required bool         `json:"required"`
	Help     string       `json:"help,omitempty"`
	Min      *float64     `json:"min,omitempty"` // scale/number only
	Max      *float64     `json:"max,omitempty"`
}

// UnmarshalJSON applies the definition defaults that differ from Go
// zero values: required is true unless explicitly false.
func (q *Question) UnmarshalJSON(data []byte) error {
	type alias Question
	raw := struct {
		*alias
		Required *bool `json:"required"`
	}{alias: (*alias)(q)}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	q.Required = raw.Required == nil || *raw.Required
	return nil
}

// OptionWeight looks up the weight of a label in the options table.
// A label missing from the table defaults to def.
func (q Question) OptionWeight(label string, def float64) float64 {
	for _, o := range q.Options {
		if o.Label == label {
			return o.Weight
		}
	}
	return def
}

// TotalOptionWeight is the sum of all option weights, the normalization
// denominator for multi questions.
func (q Question) TotalOptionWeight() float64 {
	sum := 0.0
	for _, o := range q.Options {
		sum += o.Weight
	}
	return sum
}

// Section groups questions for sub-score reporting. Section names are
// not unique across a questionnaire; two sections with the same name
// are reported under one key.
type Section struct {
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// Questionnaire is one immutable version of a survey definition.
type Questionnaire struct {
	SurveyID string    `json:"survey_id"`
	Version  int       `json:"version"`
	Title    string    `json:"title,omitempty"`
	Sections []Section `json:"sections"`
	IsActive bool      `json:"is_active"`
}

// Normalize fills in the defaults the scorer relies on: blank codes get
// a Q%03d code by ordinal position across the whole questionnaire, and
// zero question weights become 1. Option weights are left alone; their
// default is applied when the option table is decoded. Mutates the
// sections in place and returns them for chaining.
func Normalize(sections []Section) []Section {
	ord := 0
	for si := range sections {
		for qi := range sections[si].Questions {
			q := &sections[si].Questions[qi]
			ord++
			if q.Code == "" {
				q.Code = fmt.Sprintf("Q%03d", ord)
			}
			if q.Weight == 0 {
				q.Weight = 1
			}
		}
	}
	return sections
}
