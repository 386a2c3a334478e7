package quiz

import (
	"time"

	"github.com/google/uuid"

	"tableflip.dev/studyed/pkg/store"
)

// Outcome is how a question fared after submission.
type Outcome int

const (
	Unanswered Outcome = iota
	Correct
	Incorrect
)

func (o Outcome) String() string {
	switch o {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "unanswered"
	}
}

const (
	VerdictPerfect = "Excellent! Perfect score!"
	VerdictGood    = "Good job! Keep practicing!"
	VerdictLow     = "Keep studying! You can do better!"
)

// Attempt is one round over a bank. Choices are locked once submitted.
type Attempt struct {
	bank      *Bank
	choices   map[int]string
	submitted bool
}

func NewAttempt(b *Bank) *Attempt {
	return &Attempt{bank: b, choices: map[int]string{}}
}

func (a *Attempt) Bank() *Bank { return a.bank }

// Choose records optionID as the answer to questionID.
func (a *Attempt) Choose(questionID int, optionID string) error {
	if a.submitted {
		return ErrSubmitted
	}
	q, ok := a.bank.Question(questionID)
	if !ok {
		return ErrUnknownQuestion
	}
	if _, ok := q.Option(optionID); !ok {
		return ErrUnknownOption
	}
	a.choices[questionID] = optionID
	return nil
}

// Choice is the chosen option id, or "".
func (a *Attempt) Choice(questionID int) string {
	return a.choices[questionID]
}

func (a *Attempt) Submit()         { a.submitted = true }
func (a *Attempt) Submitted() bool { return a.submitted }

func (a *Attempt) Reset() {
	a.choices = map[int]string{}
	a.submitted = false
}

// Score counts correct choices.
func (a *Attempt) Score() int {
	n := 0
	for _, q := range a.bank.Questions {
		if a.choices[q.ID] == q.Answer {
			n++
		}
	}
	return n
}

func (a *Attempt) Total() int { return len(a.bank.Questions) }

// Verdict is the message shown with the score. An empty bank never counts
// as a perfect score.
func (a *Attempt) Verdict() string {
	score, total := a.Score(), a.Total()
	switch {
	case total == 0:
		return VerdictLow
	case score == total:
		return VerdictPerfect
	case 2*score >= total:
		return VerdictGood
	default:
		return VerdictLow
	}
}

// Outcome is Unanswered until the attempt is submitted.
func (a *Attempt) Outcome(questionID int) Outcome {
	q, ok := a.bank.Question(questionID)
	if !a.submitted || !ok {
		return Unanswered
	}
	choice, ok := a.choices[questionID]
	switch {
	case !ok:
		return Unanswered
	case choice == q.Answer:
		return Correct
	default:
		return Incorrect
	}
}

// Result is the attempt as a store record.
func (a *Attempt) Result(at time.Time) store.QuizResult {
	answers := make(map[int]string, len(a.choices))
	for k, v := range a.choices {
		answers[k] = v
	}
	return store.QuizResult{
		ID:      uuid.NewString(),
		Score:   a.Score(),
		Total:   a.Total(),
		Answers: answers,
		At:      at,
	}
}
