package notes

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultNotes(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)
	require.Len(t, b.Notes, 5)
	require.Equal(t, "Newton's Laws of Motion", b.Notes[0].Topic)
	require.Equal(t, time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC), b.Notes[0].At)
	require.Equal(t, []string{All, "Physics", "Chemistry", "Biology", "Mathematics", "English"}, b.Courses())
}

func TestFilter(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	require.Len(t, b.Filter(All), 5)
	require.Len(t, b.Filter(""), 5)

	bio := b.Filter("Biology")
	require.Len(t, bio, 1)
	require.Equal(t, "Cell Division", bio[0].Topic)

	require.Empty(t, b.Filter("History"))
}

func TestParseRejectsBadNotes(t *testing.T) {
	tests := map[string]string{
		"duplicate id":  `[{id: 1, date: "2023-01-01", course: A, topic: x}, {id: 1, date: "2023-01-02", course: B, topic: y}]`,
		"missing topic": `[{id: 1, date: "2023-01-01", course: A}]`,
		"bad date":      `[{id: 1, date: "June 1", course: A, topic: x}]`,
		"reserved":      `[{id: 1, date: "2023-01-01", course: All, topic: x}]`,
		"not a list":    `{id: 1}`,
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(in))
			require.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- id: 9\n  date: \"2024-02-01\"\n  course: History\n  topic: Rana Regime\n  content: 104 years\n"), 0o600))
	b, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{All, "History"}, b.Courses())

	b, err = Load("")
	require.NoError(t, err)
	require.Len(t, b.Notes, 5)
}

func TestShelf(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)
	s := NewShelf(b)
	require.Equal(t, All, s.Course())
	require.Len(t, s.Notes(), 5)

	require.NoError(t, s.SetCourse("Chemistry"))
	require.Len(t, s.Notes(), 1)
	err = s.SetCourse("History")
	require.True(t, errors.Is(err, ErrUnknownCourse))
	require.Equal(t, "Chemistry", s.Course())

	s.CycleCourse(1)
	require.Equal(t, "Biology", s.Course())
	s.CycleCourse(-3)
	require.Equal(t, All, s.Course())
	s.CycleCourse(-1)
	require.Equal(t, "English", s.Course())

	s.Toggle(2)
	require.True(t, s.Expanded(2))
	s.Toggle(3)
	require.False(t, s.Expanded(2))
	require.True(t, s.Expanded(3))
	s.Toggle(3)
	require.False(t, s.Expanded(3))
}

func TestCountLabel(t *testing.T) {
	require.Equal(t, "1 Note", CountLabel(1))
	require.Equal(t, "0 Notes", CountLabel(0))
	require.Equal(t, "5 Notes", CountLabel(5))
}
