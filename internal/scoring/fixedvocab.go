package scoring

import "encoding/json"

// Fixed-vocabulary scoring: the simplified questionnaire variant where
// every answer is one of four values instead of a typed response. It
// shares the weighted-average math with the typed mode but needs no
// question definitions beyond the rows themselves.

const (
	AnswerYes     = "Yes"
	AnswerPartial = "Partial"
	AnswerNo      = "No"
	AnswerNA      = "N.A."
)

// Row is one question of a fixed-vocabulary assessment, carrying its
// answer inline.
type Row struct {
	Section        string  `json:"section"`
	RequirementRef string  `json:"requirement_ref,omitempty"`
	Code           string  `json:"question_id"`
	Text           string  `json:"question_text"`
	Hint           string  `json:"hint,omitempty"`
	Weight         float64 `json:"weight"`
	Answer         string  `json:"answer"`
}

// UnmarshalJSON defaults a missing weight to 1; an explicit 0 is kept.
func (r *Row) UnmarshalJSON(data []byte) error {
	type alias Row
	raw := struct {
		*alias
		Weight *float64 `json:"weight"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Weight != nil {
		r.Weight = *raw.Weight
	} else {
		r.Weight = 1
	}
	return nil
}

// FixedResult is the outcome of scoring fixed-vocabulary rows.
type FixedResult struct {
	OverallPct float64            `json:"overall_pct"` // 0..100, one decimal
	Color      Color              `json:"color"`
	BySection  map[string]float64 `json:"by_section"`
	Gaps       []GapEntry         `json:"gaps"`
}

// vocabScore maps an answer to its credit ratio. N.A. and anything
// outside the vocabulary are excluded from the denominator entirely,
// not scored as zero.
func vocabScore(answer string) (float64, bool) {
	switch answer {
	case AnswerYes:
		return 1, true
	case AnswerPartial:
		return 0.5, true
	case AnswerNo:
		return 0, true
	default:
		return 0, false
	}
}

// ScoreFixedVocabulary computes the overall and per-section
// percentages for a flat row set. Same totality guarantees as Score:
// rows are read-only, zero denominators report 0, and no input can
// make it fail.
func ScoreFixedVocabulary(rows []Row, t Thresholds) FixedResult {
	var gotW, totalW float64
	secGot := map[string]float64{}
	secTotal := map[string]float64{}
	secSeen := map[string]bool{}

	for _, r := range rows {
		secSeen[r.Section] = true
		score, counted := vocabScore(r.Answer)
		if !counted {
			continue
		}
		w := r.Weight
		gotW += score * w
		totalW += w
		secGot[r.Section] += score * w
		secTotal[r.Section] += w
	}

	bySection := make(map[string]float64, len(secSeen))
	for name := range secSeen {
		bySection[name] = pct(secGot[name], secTotal[name])
	}

	overall := pct(gotW, totalW)
	return FixedResult{
		OverallPct: overall,
		Color:      t.Classify(overall),
		BySection:  bySection,
		Gaps:       FixedGapRegister(rows),
	}
}
