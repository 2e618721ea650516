package paths

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

var (
	cache     map[string][]byte
	cacheLock sync.Mutex
)

// noFindOpenHTTPImp fetches url, or reuses an earlier fetch of it, and returns
// a seekable reader over the body.
func noFindOpenHTTPImp(url string) (ReadSeekCloser, error) {
	cacheLock.Lock()
	defer cacheLock.Unlock()

	if cache == nil {
		cache = make(map[string][]byte)
	}
	if b, ok := cache[url]; ok {
		glog.V(2).Infof("paths/http.go: NoFindOpen(%q): returning reader for cached buffer", url)
		return &bytesReaderWithDummyClose{bytes.NewReader(b)}, nil
	}

	glog.V(2).Infof("paths/http.go: getting http file %q", url)
	response, err := http.Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "go-afteralive/paths/NoFindOpen(%q): failed to open", url)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		e := os.ErrInvalid
		if response.StatusCode == http.StatusNotFound {
			e = os.ErrNotExist
		}
		return nil, errors.Wrapf(e, "go-afteralive/paths/NoFindOpen(%q): http response.StatusCode=%v, want 200", url, response.StatusCode)
	}

	buf := &bytes.Buffer{}
	if _, err := io.Copy(buf, response.Body); err != nil {
		return nil, errors.Wrap(err, "copying response to seekable buffer")
	}

	cache[url] = buf.Bytes()
	return &bytesReaderWithDummyClose{bytes.NewReader(buf.Bytes())}, nil
}

// forgetCache drops every cached response.
func forgetCache() {
	cacheLock.Lock()
	cache = nil
	cacheLock.Unlock()
}

type bytesReaderWithDummyClose struct {
	*bytes.Reader
}

func (bytesReaderWithDummyClose) Close() error {
	return nil
}
