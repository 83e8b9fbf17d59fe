package domain

import (
	"time"

	"github.com/google/uuid"
)

type QuizStatus string

const (
	QuizPending  QuizStatus = "pending"
	QuizApproved QuizStatus = "approved"
	QuizRejected QuizStatus = "rejected"
)

// Quiz is the aggregate root; Questions and Options are hydrated by the
// quiz repo in ascending position order and written as one atomic unit.
type Quiz struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title           string     `gorm:"not null;column:title" json:"title"`
	Description     string     `gorm:"column:description" json:"description"`
	CategoryID      string     `gorm:"index;not null;column:category_id" json:"category_id"`
	CreatedBy       uuid.UUID  `gorm:"index;not null;column:created_by" json:"created_by"`
	Status          QuizStatus `gorm:"index;not null;default:pending;column:status" json:"status"`
	ReviewedBy      *uuid.UUID `gorm:"column:reviewed_by" json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	RejectionReason string     `gorm:"column:rejection_reason" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null;default:now()" json:"-"`

	Questions []*Question `gorm:"-" json:"questions"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

type Question struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuizID   uuid.UUID `gorm:"index;not null;column:quiz_id" json:"-"`
	Prompt   string    `gorm:"not null;column:prompt" json:"prompt"`
	Position int       `gorm:"not null;column:position" json:"position"`

	Options []*Option `gorm:"-" json:"options"`
}

func (Question) TableName() string {
	return "questions"
}

type Option struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"index;not null;column:question_id" json:"-"`
	Label      string    `gorm:"not null;column:label" json:"label"`
	IsCorrect  bool      `gorm:"not null;default:false;column:is_correct" json:"is_correct"`
	Position   int       `gorm:"not null;column:position" json:"position"`
}

func (Option) TableName() string {
	return "options"
}
