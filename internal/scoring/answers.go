package scoring

import (
	"strconv"
	"strings"
)

// Normalize converts a raw submission into the typed inputs the scorers
// consume. It is deliberately forgiving: unknown question ids, missing
// answers, and values of the wrong shape are skipped rather than rejected,
// so a partial submission still yields a report.
func (b *QuestionBank) Normalize(sub Submission) NormalizedInputs {
	in := NormalizedInputs{
		RiasecAnswers: make(map[string]int),
		SubjectScores: make(map[string]int),
	}

	var freeText []string
	for _, id := range b.order {
		raw, ok := sub.Answers[id]
		if !ok || raw == nil {
			continue
		}
		q := b.questions[id]
		switch q.Type {
		case KindScale:
			rating, ok := asInt(raw)
			if !ok {
				continue
			}
			in.RiasecAnswers[id] = clampInt(rating, 1, 5)
		case KindGradeGrid:
			for subject, v := range asIntMap(raw) {
				in.SubjectScores[subject] = clampInt(v, 0, 100)
			}
		case KindMultiChoice:
			values := asStringSlice(raw)
			switch id {
			case qExtracurriculars:
				in.Extracurriculars = append(in.Extracurriculars, values...)
			case qParentCareers:
				in.ParentCareers = append(in.ParentCareers, values...)
			}
		case KindSingleChoice:
			value, ok := asString(raw)
			if !ok {
				continue
			}
			switch id {
			case qWorkStyle:
				in.WorkStyle = value
			case qStudyAbroad:
				abroad := strings.EqualFold(value, "yes")
				in.StudyAbroad = &abroad
			}
		case KindFreeText:
			if value, ok := asString(raw); ok && strings.TrimSpace(value) != "" {
				freeText = append(freeText, value)
			}
		}
	}

	// Structured submission fields win over grid answers for the same key
	// and simply extend the list-valued inputs.
	for subject, score := range sub.SubjectScores {
		in.SubjectScores[subject] = clampInt(score, 0, 100)
	}
	in.Extracurriculars = append(in.Extracurriculars, sub.Extracurriculars...)
	in.ParentCareers = append(in.ParentCareers, sub.ParentCareers...)
	if sub.WorkStyle != "" {
		in.WorkStyle = sub.WorkStyle
	}
	if sub.StudyAbroad != nil {
		in.StudyAbroad = sub.StudyAbroad
	}

	in.FreeText = strings.ToLower(strings.Join(freeText, " "))
	return in
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asStringSlice(v any) []string {
	switch values := v.(type) {
	case []string:
		return values
	case []any:
		out := make([]string, 0, len(values))
		for _, item := range values {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if values == "" {
			return nil
		}
		return []string{values}
	}
	return nil
}

func asIntMap(v any) map[string]int {
	switch m := v.(type) {
	case map[string]int:
		return m
	case map[string]any:
		out := make(map[string]int, len(m))
		for k, item := range m {
			if n, ok := asInt(item); ok {
				out[k] = n
			}
		}
		return out
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
