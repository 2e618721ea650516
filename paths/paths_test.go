package paths

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindUsesDataEnv(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "walk.mot")
	require.NoError(t, os.WriteFile(want, []byte{255}, 0644))
	t.Setenv(DataEnv, dir)

	assert.Equal(t, dir, Dirs()[0])
	assert.Equal(t, want, Find("walk.mot"))
	assert.Equal(t, "", Find("run.mot"))

	f, err := Open("walk.mot")
	require.NoError(t, err)
	defer f.Close()
	b, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, []byte{255}, b)
}

func TestOpenMissing(t *testing.T) {
	t.Setenv(DataEnv, t.TempDir())
	_, err := Open("missing.mot")
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestOpenFallsBackToSample(t *testing.T) {
	t.Setenv(DataEnv, t.TempDir())
	assert.Equal(t, "", Find("walk.mot"))

	f, err := Open("walk.mot")
	require.NoError(t, err)
	defer f.Close()
	b, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, byte(255), b[len(b)-1])
}

func TestNoFindOpenHTTPCaches(t *testing.T) {
	forgetCache()
	defer forgetCache()

	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/walk.mot" {
			http.NotFound(w, r)
			return
		}
		hits++
		w.Write([]byte{0, 0x00, 0x05, 255})
	}))
	defer srv.Close()

	for i := 0; i < 2; i++ {
		f, err := NoFindOpen(srv.URL + "/walk.mot")
		require.NoError(t, err)
		b, err := io.ReadAll(f)
		require.NoError(t, err)
		f.Close()
		assert.Equal(t, []byte{0, 0x00, 0x05, 255}, b)
	}
	assert.Equal(t, 1, hits)

	_, err := NoFindOpen(srv.URL + "/missing.mot")
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}
