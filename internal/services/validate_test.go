package services

import (
	"strings"
	"testing"

	"github.com/yungbote/cyberquiz-backend/internal/domain"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Web Security", "web-security"},
		{"  IoT & Radio!  ", "iot-radio"},
		{"Crypto", "crypto"},
		{"---", ""},
		{"!!!", ""},
		{"A  B   C", "a-b-c"},
	}
	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Fatalf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func validQuizInput() QuizInput {
	return QuizInput{
		Title:      "XSS basics",
		CategoryID: "web-security",
		Questions: []QuestionInput{
			{
				Prompt: "Which header mitigates clickjacking?",
				Options: []OptionInput{
					{Label: "X-Frame-Options", IsCorrect: true},
					{Label: "X-Powered-By"},
				},
			},
		},
	}
}

func TestNormalizeQuizValid(t *testing.T) {
	normalized, err := normalizeQuiz("quiz.submit", validQuizInput())
	if err != nil {
		t.Fatalf("normalizeQuiz: %v", err)
	}
	if normalized.Title != "XSS basics" || len(normalized.Questions) != 1 {
		t.Fatalf("unexpected normalization: %+v", normalized)
	}
}

func TestNormalizeQuizCorrectCount(t *testing.T) {
	zero := validQuizInput()
	zero.Questions[0].Options = []OptionInput{
		{Label: "a"}, {Label: "b"},
	}
	if _, err := normalizeQuiz("quiz.submit", zero); !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("zero correct options: expected validation error, got %v", err)
	}

	two := validQuizInput()
	two.Questions[0].Options = []OptionInput{
		{Label: "a", IsCorrect: true}, {Label: "b", IsCorrect: true},
	}
	if _, err := normalizeQuiz("quiz.submit", two); !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("two correct options: expected validation error, got %v", err)
	}
}

func TestNormalizeQuizOptionBounds(t *testing.T) {
	one := validQuizInput()
	one.Questions[0].Options = []OptionInput{{Label: "only", IsCorrect: true}}
	if _, err := normalizeQuiz("quiz.submit", one); !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("single option: expected validation error, got %v", err)
	}

	many := validQuizInput()
	options := make([]OptionInput, 7)
	for i := range options {
		options[i] = OptionInput{Label: "opt"}
	}
	options[0].IsCorrect = true
	many.Questions[0].Options = options
	if _, err := normalizeQuiz("quiz.submit", many); !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("seven options: expected validation error, got %v", err)
	}
}

func TestNormalizeQuizQuestionBounds(t *testing.T) {
	empty := validQuizInput()
	empty.Questions = nil
	if _, err := normalizeQuiz("quiz.submit", empty); !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("no questions: expected validation error, got %v", err)
	}

	many := validQuizInput()
	question := many.Questions[0]
	many.Questions = make([]QuestionInput, 21)
	for i := range many.Questions {
		many.Questions[i] = question
	}
	if _, err := normalizeQuiz("quiz.submit", many); !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("21 questions: expected validation error, got %v", err)
	}
}

func TestNormalizeQuizTitleLength(t *testing.T) {
	long := validQuizInput()
	long.Title = strings.Repeat("x", 121)
	if _, err := normalizeQuiz("quiz.submit", long); !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("long title: expected validation error, got %v", err)
	}
}

func TestValidatePasswordPolicy(t *testing.T) {
	if err := validatePassword("auth", "short"); !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("short password: expected validation error, got %v", err)
	}
	if err := validatePassword("auth", strings.Repeat("p", 129)); !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("long password: expected validation error, got %v", err)
	}
	if err := validatePassword("auth", "exactly8c"); err != nil {
		t.Fatalf("valid password rejected: %v", err)
	}
}

func TestValidateUsernameCharset(t *testing.T) {
	if err := validateUsername("auth", "good_user.name-1"); err != nil {
		t.Fatalf("valid username rejected: %v", err)
	}
	if err := validateUsername("auth", "bad user"); !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("space in username: expected validation error, got %v", err)
	}
	if err := validateUsername("auth", "nope!"); !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("punctuation in username: expected validation error, got %v", err)
	}
}

func TestValidateEmail(t *testing.T) {
	if err := validateEmail("auth", "user@example.com"); err != nil {
		t.Fatalf("valid email rejected: %v", err)
	}
	if err := validateEmail("auth", "not-an-email"); !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("bad email: expected validation error, got %v", err)
	}
}
