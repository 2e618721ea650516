// Package paths locates motion datafiles on the local filesystem, and opens
// them either locally or over HTTP.
package paths

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-afteralive/datafiles"
)

// DataEnv names the environment variable holding extra directories, separated
// by the OS path list separator, that are searched before the defaults.
const DataEnv = "AFTERALIVE_DATA"

// ReadSeekCloser is what Open and NoFindOpen return.
type ReadSeekCloser interface {
	io.ReadCloser
	io.Seeker
}

// Dirs returns the directories Find looks in, in order.
func Dirs() []string {
	var dirs []string
	if env := os.Getenv(DataEnv); env != "" {
		dirs = append(dirs, filepath.SplitList(env)...)
	}
	dirs = append(dirs,
		"datafiles",
		os.Args[0]+".runfiles/go_afteralive/datafiles",
	)
	return dirs
}

// Find locates the passed datafile shortname and returns an absolute or
// relative path to find the datafile at, or an empty string if it is not in
// any of Dirs.
//
// For example, for "walk.mot" it may return "datafiles/walk.mot".
func Find(fileName string) string {
	for _, dir := range Dirs() {
		path := filepath.Join(dir, fileName)
		if st, err := os.Stat(path); err == nil && !st.IsDir() {
			glog.V(2).Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}
	return ""
}

// Open locates the passed file in the same locations that Find would look, and
// opens it. If Find returns an empty string, the built-in sample of that name
// is opened instead; if there is none, an error is returned.
func Open(fileName string) (ReadSeekCloser, error) {
	path := Find(fileName)
	if path == "" {
		if b, err := datafiles.Sample(fileName); err == nil {
			glog.V(2).Infof("paths.Open(%q): using built-in sample", fileName)
			return &bytesReaderWithDummyClose{bytes.NewReader(b)}, nil
		}
		return nil, errors.Wrapf(os.ErrNotExist, "go-afteralive/paths/Open(%q): not found in %v", fileName, Dirs())
	}
	return NoFindOpen(path)
}

// NoFindOpen opens the passed path without searching for it. Paths starting
// with http:// or https:// are fetched once and served from memory.
func NoFindOpen(path string) (ReadSeekCloser, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return noFindOpenHTTPImp(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "go-afteralive/paths/NoFindOpen(%q)", path)
	}
	return f, nil
}
