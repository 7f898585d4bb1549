package scoring

import (
	"math"

	"github.com/complize/selfassess/internal/questionnaire"
)

// Result is the outcome of scoring one submission against a typed
// questionnaire. Rebuilt from scratch on every call.
type Result struct {
	ScorePct         float64            `json:"score_pct"` // 0..100, one decimal
	Color            Color              `json:"color"`
	RequiredTotal    int                `json:"required_total"`
	RequiredAnswered int                `json:"required_answered"`
	ProgressPct      int                `json:"progress_pct"`
	BySection        map[string]float64 `json:"by_section"`
}

// questionEval pairs a question with its submitted answer and scored
// contribution; shared by the aggregator and the gap register builder
// so both see identical per-question results.
type questionEval struct {
	section  string
	question questionnaire.Question
	answer   questionnaire.AnswerValue
	contrib  Contribution
}

func evaluate(sections []questionnaire.Section, answers map[string]questionnaire.AnswerValue) []questionEval {
	var evals []questionEval
	for _, sec := range sections {
		for _, q := range sec.Questions {
			v := answers[q.Code] // zero value is the empty answer
			evals = append(evals, questionEval{
				section:  sec.Name,
				question: q,
				answer:   v,
				contrib:  scoreQuestion(q, v),
			})
		}
	}
	return evals
}

// Score computes the weighted compliance result for a submission.
// Pure: it reads sections and answers without mutating either, holds
// no state between calls, and cannot fail for any well-shaped input.
func Score(sections []questionnaire.Section, answers map[string]questionnaire.AnswerValue, t Thresholds) Result {
	var gotW, totalW float64
	secGot := map[string]float64{}
	secTotal := map[string]float64{}
	requiredTotal, requiredAnswered := 0, 0

	for _, e := range evaluate(sections, answers) {
		gotW += e.contrib.Points
		totalW += e.contrib.Weight
		secGot[e.section] += e.contrib.Points
		secTotal[e.section] += e.contrib.Weight

		if e.question.Required {
			requiredTotal++
			if !e.answer.IsEmpty() {
				requiredAnswered++
			}
		}
	}

	bySection := make(map[string]float64, len(secTotal))
	for name, tw := range secTotal {
		bySection[name] = pct(secGot[name], tw)
	}

	overall := pct(gotW, totalW)
	progress := 0
	if requiredTotal > 0 {
		progress = int(math.Round(100 * float64(requiredAnswered) / float64(requiredTotal)))
	}

	return Result{
		ScorePct:         overall,
		Color:            t.Classify(overall),
		RequiredTotal:    requiredTotal,
		RequiredAnswered: requiredAnswered,
		ProgressPct:      progress,
		BySection:        bySection,
	}
}

// pct is the shared percentage rule: zero denominator reports 0, and
// results round to one decimal place.
func pct(got, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return round1(100 * got / total)
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
