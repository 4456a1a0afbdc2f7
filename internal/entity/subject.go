package entity

import (
	"errors"
	"fmt"
)

type Subject string

const (
	SubjectMath      Subject = "Math"
	SubjectPhysics   Subject = "Physics"
	SubjectChemistry Subject = "Chemistry"
)

var ErrUnknownSubject = errors.New("unknown subject")

// Subjects lists the fixed study topics in display order.
func Subjects() []Subject {
	return []Subject{SubjectMath, SubjectPhysics, SubjectChemistry}
}

func ParseSubject(s string) (Subject, error) {
	for _, subject := range Subjects() {
		if string(subject) == s {
			return subject, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSubject, s)
}

func (s Subject) String() string {
	return string(s)
}
