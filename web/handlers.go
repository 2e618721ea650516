// Package web serves decoded motions over HTTP: as JSON, and as PNG or GIF
// renderings of their root track.
package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vincent-petithory/dataurl"

	"badc0de.net/pkg/go-afteralive/mot"
	"badc0de.net/pkg/go-afteralive/motview"
	"badc0de.net/pkg/go-afteralive/paths"
)

const (
	maxUploadSize   = 1 << 20
	defaultSize     = 256
	inlineTrackSize = 128
	gifDelay        = 10
)

type Handler struct {
	dataDir string
	decodes *prometheus.CounterVec
}

// NewHandler constructs a web handler reading named motions from dataDir. If
// dataDir is empty, motions are located with paths.Find instead. Decode
// counters are registered with reg unless it is nil.
func NewHandler(dataDir string, reg prometheus.Registerer) *Handler {
	h := &Handler{
		dataDir: dataDir,
		decodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "afteralive",
			Subsystem: "motion",
			Name:      "decodes_total",
			Help:      "Motion decodes performed by the web handler, by result.",
		}, []string{"result"}),
	}
	if reg != nil {
		reg.MustRegister(h.decodes)
	}
	return h
}

type partJSON struct {
	ID         uint8           `json:"id"`
	Directions map[uint8]int32 `json:"directions"`
	Distances  map[uint8]int32 `json:"distances"`
	Angles     map[uint8]int16 `json:"angles"`
	Pictures   map[uint8]int16 `json:"pictures"`
	ScaleX     map[uint8]int16 `json:"scaleX"`
	ScaleY     map[uint8]int16 `json:"scaleY"`
}

type motionJSON struct {
	StepCount int              `json:"stepCount"`
	FrameSpan int              `json:"frameSpan"`
	KeyFrames map[uint8]uint16 `json:"keyFrames"`
	PosX      map[uint8]int16  `json:"posX"`
	PosY      map[uint8]int16  `json:"posY"`
	Parts     []partJSON       `json:"parts"`
	Track     string           `json:"track,omitempty"`
}

func newMotionJSON(m *mot.Motion) *motionJSON {
	out := &motionJSON{
		StepCount: m.StepCount,
		FrameSpan: m.FrameSpan(),
		KeyFrames: m.KeyFrames,
		PosX:      m.PosX,
		PosY:      m.PosY,
		Parts:     []partJSON{},
	}
	for _, id := range m.PartIDs() {
		p := m.Parts[id]
		out.Parts = append(out.Parts, partJSON{
			ID:         p.ID,
			Directions: p.Directions,
			Distances:  p.Distances,
			Angles:     p.Angles,
			Pictures:   p.Pictures,
			ScaleX:     p.ScaleX,
			ScaleY:     p.ScaleY,
		})
	}
	return out
}

// decode decodes r and records the outcome.
func (h *Handler) decode(r io.Reader) (*mot.Motion, error) {
	m, err := mot.Decode(r)
	if err != nil {
		h.decodes.WithLabelValues("error").Inc()
		return nil, err
	}
	h.decodes.WithLabelValues("ok").Inc()
	return m, nil
}

// open locates a named motion, returning it with its modification time.
func (h *Handler) open(name string) (paths.ReadSeekCloser, time.Time, error) {
	fileName := name + ".mot"
	path := filepath.Join(h.dataDir, fileName)
	if h.dataDir == "" {
		path = paths.Find(fileName)
		if path == "" {
			return nil, time.Time{}, errors.Wrapf(os.ErrNotExist, "motion %q", name)
		}
	}
	f, err := paths.NoFindOpen(path)
	if err != nil {
		return nil, time.Time{}, err
	}
	var modTime time.Time
	if st, err := os.Stat(path); err == nil {
		modTime = st.ModTime()
	}
	return f, modTime, nil
}

// named loads the motion named in the route. It writes an error response and
// returns nil if that fails.
func (h *Handler) named(w http.ResponseWriter, r *http.Request) (*mot.Motion, time.Time) {
	name := mux.Vars(r)["name"]
	f, modTime, err := h.open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			http.Error(w, "no such motion", http.StatusNotFound)
		} else {
			glog.Errorf("error opening motion %q: %v", name, err)
			http.Error(w, "failed to open motion", http.StatusInternalServerError)
		}
		return nil, time.Time{}
	}
	defer f.Close()

	m, err := h.decode(f)
	if err != nil {
		glog.Errorf("error decoding motion %q: %v", name, err)
		http.Error(w, "failed to decode motion", http.StatusInternalServerError)
		return nil, time.Time{}
	}
	return m, modTime
}

// notModified sets caching headers and reports whether the client already
// has the current representation.
func notModified(w http.ResponseWriter, r *http.Request, etag string, modTime time.Time) bool {
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.Header().Set("ETag", etag)
	if !modTime.IsZero() {
		w.Header().Set("Last-Modified", modTime.UTC().Format(http.TimeFormat))
	}
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	return false
}

func sizeParam(r *http.Request) int {
	size := defaultSize
	if s := r.URL.Query().Get("size"); s != "" {
		size, _ = strconv.Atoi(s)
		// ignore invalid size
	}
	if size < 16 {
		size = 16
	}
	if size > 1024 {
		size = 1024
	}
	return size
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, m *mot.Motion) {
	out := newMotionJSON(m)
	if r.URL.Query().Get("track") != "" {
		buf := &bytes.Buffer{}
		if err := motview.EncodePNG(buf, motview.RenderTrack(m, inlineTrackSize)); err != nil {
			glog.Errorf("error rendering inline track: %v", err)
		} else {
			out.Track = dataurl.New(buf.Bytes(), "image/png").String()
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(out); err != nil {
		glog.Warningf("error writing motion json: %v", err)
	}
}

func (h *Handler) decodeHandler(w http.ResponseWriter, r *http.Request) {
	m, err := h.decode(http.MaxBytesReader(w, r.Body, maxUploadSize))
	if err != nil {
		http.Error(w, "failed to decode motion: "+err.Error(), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, r, m)
}

func (h *Handler) motionHandler(w http.ResponseWriter, r *http.Request) {
	m, _ := h.named(w, r)
	if m == nil {
		return
	}
	h.writeJSON(w, r, m)
}

func (h *Handler) trackPNGHandler(w http.ResponseWriter, r *http.Request) {
	m, modTime := h.named(w, r)
	if m == nil {
		return
	}
	size := sizeParam(r)

	generation := 1 // bump if the way we generate it changes
	mime := "image/png"
	etag := fmt.Sprintf(`W/"track:%d:%s:%d:%d:%s"`, generation, mux.Vars(r)["name"], modTime.Unix(), size, mime)
	if notModified(w, r, etag, modTime) {
		return
	}

	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	if err := motview.EncodePNG(w, motview.RenderTrack(m, size)); err != nil {
		glog.Warningf("error writing track png: %v", err)
	}
}

func (h *Handler) trackGIFHandler(w http.ResponseWriter, r *http.Request) {
	m, modTime := h.named(w, r)
	if m == nil {
		return
	}
	size := sizeParam(r)

	generation := 1 // bump if the way we generate it changes
	mime := "image/gif"
	etag := fmt.Sprintf(`W/"track:%d:%s:%d:%d:%s"`, generation, mux.Vars(r)["name"], modTime.Unix(), size, mime)
	if notModified(w, r, etag, modTime) {
		return
	}

	buf := &bytes.Buffer{}
	if err := motview.EncodeGIF(buf, m, size, gifDelay); err != nil {
		glog.Errorf("error rendering track gif: %v", err)
		http.Error(w, "failed to render motion", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/motion", h.decodeHandler).Methods(http.MethodPost)
	r.HandleFunc("/motion/{name:[A-Za-z0-9_-]+}", h.motionHandler).Methods(http.MethodGet)
	r.HandleFunc("/motion/{name:[A-Za-z0-9_-]+}/track.png", h.trackPNGHandler).Methods(http.MethodGet)
	r.HandleFunc("/motion/{name:[A-Za-z0-9_-]+}/track.gif", h.trackGIFHandler).Methods(http.MethodGet)
}
