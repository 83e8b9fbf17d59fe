package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yungbote/cyberquiz-backend/internal/domain"
)

const (
	maxTitleLen        = 120
	maxDescLen         = 500
	maxQuestionCount   = 20
	minOptionCount     = 2
	maxOptionCount     = 6
	maxPromptLen       = 240
	maxOptionLen       = 140
	maxUsernameLen     = 24
	maxEmailLen        = 120
	minPasswordLen     = 8
	maxPasswordLen     = 128
	maxCategoryNameLen = 40
	maxCategoryDescLen = 160
	maxRejectionLen    = 200
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	slugStrip       = regexp.MustCompile(`[^a-z0-9]+`)
)

func requireText(op, value, field string, maxLen int) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", domain.ValidationError(op, fmt.Sprintf("%s is required", field))
	}
	if len(trimmed) > maxLen {
		return "", domain.ValidationError(op, fmt.Sprintf("%s is too long", field))
	}
	return trimmed, nil
}

func optionalText(op, value string, maxLen int) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if len(trimmed) > maxLen {
		return "", domain.ValidationError(op, "value is too long")
	}
	return trimmed, nil
}

func validateEmail(op, email string) error {
	if len(email) > maxEmailLen {
		return domain.ValidationError(op, "email is too long")
	}
	if !emailPattern.MatchString(email) {
		return domain.ValidationError(op, "email is invalid")
	}
	return nil
}

func validateUsername(op, username string) error {
	if len(username) > maxUsernameLen {
		return domain.ValidationError(op, "username is too long")
	}
	if !usernamePattern.MatchString(username) {
		return domain.ValidationError(op, "username can only use letters, numbers, ., - and _")
	}
	return nil
}

func validatePassword(op, password string) error {
	if len(password) < minPasswordLen {
		return domain.ValidationError(op, fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	if len(password) > maxPasswordLen {
		return domain.ValidationError(op, "password is too long")
	}
	return nil
}

// slugify lowercases, collapses non-alphanumeric runs into "-" and trims
// leading/trailing dashes. An empty result means the name was unusable.
func slugify(value string) string {
	lowered := strings.ToLower(value)
	dashed := slugStrip.ReplaceAllString(lowered, "-")
	return strings.Trim(dashed, "-")
}

type OptionInput struct {
	Label     string `json:"label"`
	IsCorrect bool   `json:"isCorrect"`
}

type QuestionInput struct {
	Prompt  string        `json:"prompt"`
	Options []OptionInput `json:"options"`
}

type QuizInput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	CategoryID  string          `json:"categoryId"`
	Questions   []QuestionInput `json:"questions"`
}

type normalizedQuiz struct {
	Title       string
	Description string
	CategoryID  string
	Questions   []QuestionInput
}

// normalizeQuiz range-checks the whole aggregate before any write happens.
func normalizeQuiz(op string, input QuizInput) (*normalizedQuiz, error) {
	title, err := requireText(op, input.Title, "title", maxTitleLen)
	if err != nil {
		return nil, err
	}
	description, err := optionalText(op, input.Description, maxDescLen)
	if err != nil {
		return nil, err
	}
	categoryID, err := requireText(op, input.CategoryID, "category", maxCategoryNameLen)
	if err != nil {
		return nil, err
	}

	if len(input.Questions) == 0 {
		return nil, domain.ValidationError(op, "questions are required")
	}
	if len(input.Questions) > maxQuestionCount {
		return nil, domain.ValidationError(op, "too many questions")
	}

	questions := make([]QuestionInput, 0, len(input.Questions))
	for _, question := range input.Questions {
		prompt, err := requireText(op, question.Prompt, "question prompt", maxPromptLen)
		if err != nil {
			return nil, err
		}
		if len(question.Options) < minOptionCount {
			return nil, domain.ValidationError(op, "each question needs at least two options")
		}
		if len(question.Options) > maxOptionCount {
			return nil, domain.ValidationError(op, "too many options in a question")
		}
		options := make([]OptionInput, 0, len(question.Options))
		correctCount := 0
		for _, option := range question.Options {
			label, err := requireText(op, option.Label, "option label", maxOptionLen)
			if err != nil {
				return nil, err
			}
			if option.IsCorrect {
				correctCount++
			}
			options = append(options, OptionInput{Label: label, IsCorrect: option.IsCorrect})
		}
		if correctCount != 1 {
			return nil, domain.ValidationError(op, "each question needs exactly one correct option")
		}
		questions = append(questions, QuestionInput{Prompt: prompt, Options: options})
	}

	return &normalizedQuiz{
		Title:       title,
		Description: description,
		CategoryID:  categoryID,
		Questions:   questions,
	}, nil
}
