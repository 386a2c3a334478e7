package upload

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"tableflip.dev/studyed/pkg/store"
)

const minimalPDF = "%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n"

type testConfig struct{ path string }

func (c testConfig) BasePath() string    { return c.path }
func (c testConfig) ContentPath() string { return "" }
func (c testConfig) QuizPath() string    { return "" }
func (c testConfig) NotesPath() string   { return "" }
func (c testConfig) LogPath() string     { return "" }
func (c testConfig) LogLevel() string    { return "" }

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestCheckAcceptsPDF(t *testing.T) {
	path := write(t, "notes.pdf", minimalPDF)

	u, err := Check(path)
	require.NoError(t, err)
	require.Equal(t, "notes.pdf", u.Name)
	require.Equal(t, int64(len(minimalPDF)), u.Size)
	require.Equal(t, "application/pdf", u.MIME)
	require.NotEmpty(t, u.ID)
}

func TestCheckRejectsOthers(t *testing.T) {
	_, err := Check(write(t, "notes.pdf", "just some text pretending"))
	require.ErrorIs(t, err, ErrNotPDF)

	_, err = Check(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)

	_, err = Check(t.TempDir())
	require.Error(t, err)
}

func TestSaveRecordsUpload(t *testing.T) {
	p, err := store.Load(testConfig{path: t.TempDir()})
	require.NoError(t, err)

	_, err = Save(p, write(t, "a.pdf", minimalPDF))
	require.NoError(t, err)

	got, err := p.Uploads(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "a.pdf", got[0].Name)
}
