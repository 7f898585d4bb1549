package scoring

import (
	"github.com/complize/selfassess/internal/questionnaire"
)

// GapEntry is one row of the gap register: a question whose answer
// did not earn full credit, in questionnaire order.
type GapEntry struct {
	Section        string  `json:"section"`
	RequirementRef string  `json:"requirement_ref,omitempty"`
	Code           string  `json:"question_id"`
	Text           string  `json:"question_text"`
	Hint           string  `json:"hint,omitempty"`
	Answer         string  `json:"answer"`
	Weight         float64 `json:"weight"`
}

// BuildGapRegister collects the deficiencies of a typed submission: a
// question is a gap when it was answered, counts toward the
// denominator, and its normalized credit is below 1. Text questions
// and unanswered questions never appear. Order follows the
// questionnaire, sections first, then position within the section.
func BuildGapRegister(sections []questionnaire.Section, answers map[string]questionnaire.AnswerValue) []GapEntry {
	gaps := []GapEntry{}
	for _, e := range evaluate(sections, answers) {
		if e.answer.IsEmpty() || e.contrib.Weight <= 0 || e.contrib.Ratio() >= 1 {
			continue
		}
		gaps = append(gaps, GapEntry{
			Section: e.section,
			Code:    e.question.Code,
			Text:    e.question.Title,
			Hint:    e.question.Help,
			Answer:  e.answer.String(),
			Weight:  e.question.Weight,
		})
	}
	return gaps
}

// FixedGapRegister collects the deficiencies of a fixed-vocabulary
// assessment: exactly the rows answered No or Partial, in input
// order. N.A. rows are exclusions, not gaps.
func FixedGapRegister(rows []Row) []GapEntry {
	gaps := []GapEntry{}
	for _, r := range rows {
		if r.Answer != AnswerNo && r.Answer != AnswerPartial {
			continue
		}
		gaps = append(gaps, GapEntry{
			Section:        r.Section,
			RequirementRef: r.RequirementRef,
			Code:           r.Code,
			Text:           r.Text,
			Hint:           r.Hint,
			Answer:         r.Answer,
			Weight:         r.Weight,
		})
	}
	return gaps
}
