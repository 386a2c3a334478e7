package quiz

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultBank(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)
	require.Len(t, b.Questions, 5)

	q, ok := b.Question(1)
	require.True(t, ok)
	require.Equal(t, "b", q.Answer)
	require.Equal(t, "Physics", q.Subject)
}

func TestParseRejectsBadBanks(t *testing.T) {
	_, err := Parse([]byte(`[{"id":1,"options":[{"id":"a"}],"answer":"z"}]`))
	require.Error(t, err)

	_, err = Parse([]byte(`[{"id":1,"options":[{"id":"a"}],"answer":"a"},{"id":1,"options":[{"id":"a"}],"answer":"a"}]`))
	require.Error(t, err)

	_, err = Parse([]byte(`{"id":1}`))
	require.Error(t, err)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- id: 7
  prompt: Two plus two?
  options:
    - {id: a, text: "3"}
    - {id: b, text: "4"}
  answer: b
`), 0o644))

	b, err := Load(path)
	require.NoError(t, err)
	require.Len(t, b.Questions, 1)
	require.Equal(t, "Two plus two?", b.Questions[0].Prompt)
}

func TestVerdicts(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	tests := []struct {
		name    string
		correct int
		want    string
	}{
		{name: "none", correct: 0, want: VerdictLow},
		{name: "two of five", correct: 2, want: VerdictLow},
		{name: "three of five", correct: 3, want: VerdictGood},
		{name: "all", correct: 5, want: VerdictPerfect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAttempt(b)
			for i, q := range b.Questions {
				if i < tt.correct {
					require.NoError(t, a.Choose(q.ID, q.Answer))
				}
			}
			a.Submit()
			require.Equal(t, tt.correct, a.Score())
			require.Equal(t, tt.want, a.Verdict())
		})
	}
}

func TestEmptyBankIsNeverPerfect(t *testing.T) {
	b, err := Parse([]byte("[]"))
	require.NoError(t, err)
	a := NewAttempt(b)
	a.Submit()
	require.Equal(t, 0, a.Total())
	require.Equal(t, VerdictLow, a.Verdict())
}

func TestAttemptLifecycle(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)
	a := NewAttempt(b)

	require.ErrorIs(t, a.Choose(99, "a"), ErrUnknownQuestion)
	require.ErrorIs(t, a.Choose(1, "z"), ErrUnknownOption)

	require.NoError(t, a.Choose(1, "a"))
	require.NoError(t, a.Choose(1, "b"))
	require.NoError(t, a.Choose(2, "a"))
	require.Equal(t, "b", a.Choice(1))
	require.Equal(t, Unanswered, a.Outcome(1))

	a.Submit()
	require.ErrorIs(t, a.Choose(3, "c"), ErrSubmitted)
	require.Equal(t, Correct, a.Outcome(1))
	require.Equal(t, Incorrect, a.Outcome(2))
	require.Equal(t, Unanswered, a.Outcome(3))

	r := a.Result(time.Unix(5, 0))
	require.Equal(t, 1, r.Score)
	require.Equal(t, 5, r.Total)
	require.Equal(t, "b", r.Answers[1])
	require.NotEmpty(t, r.ID)

	a.Reset()
	require.False(t, a.Submitted())
	require.Equal(t, "", a.Choice(1))
	require.NoError(t, a.Choose(1, "b"))
}
