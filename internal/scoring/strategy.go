package scoring

import (
	"github.com/complize/selfassess/internal/questionnaire"
)

// Contribution is the outcome of scoring a single question: the
// weighted credit earned and the weight the question adds to the
// denominator. Points can exceed Weight for single-choice questions
// with bonus option weights above 1; nothing clamps that on purpose.
type Contribution struct {
	Points float64
	Weight float64
}

// Ratio is Points/Weight, the question's normalized credit. Questions
// excluded from the denominator report full credit so they never
// surface as gaps.
func (c Contribution) Ratio() float64 {
	if c.Weight <= 0 {
		return 1
	}
	return c.Points / c.Weight
}

// Strategy scores a single question. Strategies are total: any answer
// shape resolves to some contribution, never an error.
type Strategy interface {
	Score(q questionnaire.Question, v questionnaire.AnswerValue) Contribution
}

// strategies routes by question type. Types not in the map (unknown,
// and text) contribute nothing and stay out of the denominator.
var strategies = map[questionnaire.QuestionType]Strategy{
	questionnaire.TypeYesNo:  yesNoStrategy{},
	questionnaire.TypeSingle: singleStrategy{},
	questionnaire.TypeMulti:  multiStrategy{},
	questionnaire.TypeScale:  rangeStrategy{},
	questionnaire.TypeNumber: rangeStrategy{},
}

func scoreQuestion(q questionnaire.Question, v questionnaire.AnswerValue) Contribution {
	s, ok := strategies[q.Type]
	if !ok {
		return Contribution{}
	}
	return s.Score(q, v)
}

type yesNoStrategy struct{}

func (yesNoStrategy) Score(q questionnaire.Question, v questionnaire.AnswerValue) Contribution {
	c := Contribution{Weight: q.Weight}
	if v.Truthy() {
		c.Points = q.Weight
	}
	return c
}

type singleStrategy struct{}

func (singleStrategy) Score(q questionnaire.Question, v questionnaire.AnswerValue) Contribution {
	c := Contribution{Weight: q.Weight}
	label, ok := v.Label()
	if !ok {
		return c
	}
	// A label missing from the options table (or an empty table)
	// earns weight 1.
	c.Points = q.OptionWeight(label, 1) * q.Weight
	return c
}

type multiStrategy struct{}

func (multiStrategy) Score(q questionnaire.Question, v questionnaire.AnswerValue) Contribution {
	c := Contribution{Weight: q.Weight}
	selected := v.Labels()
	if len(selected) == 0 {
		return c
	}
	if len(q.Options) == 0 {
		// Vocabulary-free fallback: any selection earns full
		// credit. Inherited behavior, kept as is.
		c.Points = q.Weight
		return c
	}
	sum := 0.0
	for _, label := range selected {
		sum += q.OptionWeight(label, 0)
	}
	denom := q.TotalOptionWeight()
	if denom == 0 {
		denom = 1
	}
	c.Points = clamp01(sum/denom) * q.Weight
	return c
}

// rangeStrategy linearly interpolates scale and number answers between
// the question's min and max bounds.
type rangeStrategy struct{}

func (rangeStrategy) Score(q questionnaire.Question, v questionnaire.AnswerValue) Contribution {
	c := Contribution{Weight: q.Weight}
	val, ok := v.Number()
	if !ok || q.Min == nil || q.Max == nil || *q.Max == *q.Min {
		return c
	}
	c.Points = clamp01((val-*q.Min)/(*q.Max-*q.Min)) * q.Weight
	return c
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
