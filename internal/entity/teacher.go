package entity

import (
	"github.com/samdwyer/rpgschool/internal/gamedata"
	"github.com/samdwyer/rpgschool/internal/world"
)

// Teacher is a character who teaches a subject.
type Teacher struct {
	Base
	Subject string
}

// NewTeacher creates a teacher with their own dialogue line.
func NewTeacher(name string, age int, subject string, pos world.Position, dialogue string) *Teacher {
	return &Teacher{
		Base:    NewBase(name, age, pos, gamedata.MustColor("blue"), dialogue),
		Subject: subject,
	}
}

// Describe extends the base description with the subject taught.
func (t *Teacher) Describe() string {
	return t.Base.Describe() + ", teaches " + t.Subject
}
