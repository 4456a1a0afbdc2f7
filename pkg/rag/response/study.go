package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"neurostudy-be/internal/entity"
)

var ErrMalformedGenerationOutput = errors.New("malformed generation output")

// StudyParseResult keeps the degraded session and the reason it degraded.
// Session is always usable; Malformed tells strict callers to refuse it.
type StudyParseResult struct {
	Session     entity.StudySession
	Malformed   bool
	Diagnostics []string
}

func (r *StudyParseResult) Err() error {
	if !r.Malformed {
		return nil
	}
	if len(r.Diagnostics) == 0 {
		return ErrMalformedGenerationOutput
	}
	return fmt.Errorf("%w: %s", ErrMalformedGenerationOutput, r.Diagnostics[0])
}

func (r *StudyParseResult) note(format string, args ...interface{}) {
	r.Diagnostics = append(r.Diagnostics, fmt.Sprintf(format, args...))
}

// rawStudySession mirrors the requested JSON without trusting any field.
type rawStudySession struct {
	MCQs  []json.RawMessage `json:"mcqs"`
	Short []json.RawMessage `json:"short"`
}

type rawMCQ struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   *int     `json:"answer"`
}

// ParseStudySession coerces model output into a StudySession. It never fails:
// anything unusable degrades to an empty session flagged as malformed.
func ParseStudySession(raw string) *StudyParseResult {
	result := &StudyParseResult{Session: entity.EmptyStudySession()}

	body := stripFence(raw)
	if body == "" {
		result.Malformed = true
		result.note("empty generation output")
		return result
	}

	var parsed rawStudySession
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		result.Malformed = true
		result.note("invalid json: %v", err)
		return result
	}

	for i, item := range parsed.MCQs {
		mcq, reason := coerceMCQ(item)
		if reason != "" {
			result.note("mcq %d dropped: %s", i, reason)
			continue
		}
		result.Session.MCQs = append(result.Session.MCQs, mcq)
	}

	for i, item := range parsed.Short {
		var q entity.ShortQuestion
		if err := json.Unmarshal(item, &q); err != nil {
			result.note("short %d dropped: %v", i, err)
			continue
		}
		if strings.TrimSpace(q.Question) == "" {
			result.note("short %d dropped: empty question", i)
			continue
		}
		result.Session.Short = append(result.Session.Short, q)
	}

	if n := len(result.Session.MCQs); n != entity.StudyMCQCount {
		result.note("expected %d mcqs, got %d", entity.StudyMCQCount, n)
	}
	if n := len(result.Session.Short); n != entity.StudyShortCount {
		result.note("expected %d short questions, got %d", entity.StudyShortCount, n)
	}

	return result
}

func coerceMCQ(item json.RawMessage) (entity.MCQ, string) {
	var m rawMCQ
	if err := json.Unmarshal(item, &m); err != nil {
		return entity.MCQ{}, err.Error()
	}
	if strings.TrimSpace(m.Question) == "" {
		return entity.MCQ{}, "empty question"
	}
	if len(m.Options) != entity.StudyOptionCount {
		return entity.MCQ{}, fmt.Sprintf("%d options", len(m.Options))
	}
	if m.Answer == nil {
		return entity.MCQ{}, "missing answer"
	}

	mcq := entity.MCQ{Question: m.Question, Options: m.Options, Answer: *m.Answer}
	if !mcq.Valid() {
		return entity.MCQ{}, fmt.Sprintf("answer %d out of range", mcq.Answer)
	}
	return mcq, ""
}

// stripFence removes a surrounding ``` or ```json block some models add even in JSON mode.
func stripFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = ""
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
