package entity

const (
	StudyMCQCount    = 5
	StudyOptionCount = 4
	StudyShortCount  = 3
)

type MCQ struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
}

// Valid reports whether the answer indexes into options.
func (q MCQ) Valid() bool {
	return q.Answer >= 0 && q.Answer < len(q.Options)
}

type ShortQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type StudySession struct {
	MCQs  []MCQ           `json:"mcqs"`
	Short []ShortQuestion `json:"short"`
}

// EmptyStudySession is what a malformed generation degrades to.
func EmptyStudySession() StudySession {
	return StudySession{MCQs: []MCQ{}, Short: []ShortQuestion{}}
}

func (s StudySession) IsEmpty() bool {
	return len(s.MCQs) == 0 && len(s.Short) == 0
}
