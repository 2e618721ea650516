package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/common-nighthawk/go-figure"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"badc0de.net/pkg/go-afteralive/mot"
	"badc0de.net/pkg/go-afteralive/motview"
	"badc0de.net/pkg/go-afteralive/paths"
)

var (
	format    = flag.String("format", "table", "output format: table, yaml or none")
	col       = flag.Bool("color", true, "whether to use color in table output")
	showTrack = flag.Bool("track", false, "whether to print the root track as an image, on terminals supporting it")
	trackSize = flag.Int("track_size", 256, "size in pixels of the printed root track")
	downsize  = flag.Bool("downsize", true, "whether to shrink the printed root track to fit the terminal")
	banner    = flag.Bool("banner", false, "whether to print a banner before the output")
	parallel  = flag.Int("parallel", 4, "how many motions to decode at once")

	motionPath string
)

func setupFilePathFlags() {
	paths.SetupFilePathFlag("walk.mot", "motion_path", &motionPath)
}

// openMotion opens a command line argument: a URL, an existing file, or a
// datafile name with or without the .mot extension.
func openMotion(arg string) (paths.ReadSeekCloser, error) {
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		return paths.NoFindOpen(arg)
	}
	if _, err := os.Stat(arg); err == nil {
		return paths.NoFindOpen(arg)
	}
	for _, name := range []string{arg, arg + ".mot"} {
		if f, err := paths.Open(name); err == nil {
			return f, nil
		}
	}
	return nil, errors.Wrapf(os.ErrNotExist, "motion %q not found in %v", arg, paths.Dirs())
}

func decodeOne(arg string) (*mot.Motion, error) {
	f, err := openMotion(arg)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := mot.Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, "decoding motion")
	}
	return m, nil
}

// decodeAll decodes every argument, at most limit at a time. Results are in
// argument order. The first failure cancels decodes that have not started.
func decodeAll(ctx context.Context, args []string, limit int) ([]*mot.Motion, error) {
	motions := make([]*mot.Motion, len(args))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, arg := range args {
		i, arg := i, arg
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := decodeOne(arg)
			if err != nil {
				return errors.Wrapf(err, "motion %q", arg)
			}
			glog.V(2).Infof("decoded %q: %v", arg, m)
			motions[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return motions, nil
}

func printMotion(w io.Writer, name string, m *mot.Motion) error {
	switch *format {
	case "table":
		fmt.Fprintf(w, "== %s\n", name)
		if err := motview.WriteTable(w, m, *col); err != nil {
			return err
		}
	case "yaml":
		fmt.Fprintf(w, "---\n# %s\n", name)
		if err := motview.WriteYAML(w, m); err != nil {
			return err
		}
	case "none":
	default:
		return errors.Errorf("unknown output format %q", *format)
	}

	if *showTrack {
		out(w, m)
	}
	return nil
}

func main() {
	setupFilePathFlags()
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	args := flag.Args()
	if len(args) == 0 {
		if motionPath == "" {
			motionPath = "walk.mot" // built-in sample
		}
		args = []string{motionPath}
	}

	if *banner {
		fmt.Fprintln(os.Stderr, figure.NewFigure("motprint", "", true).String())
	}

	motions, err := decodeAll(context.Background(), args, *parallel)
	if err != nil {
		glog.Errorf("%v", err)
		glog.Flush()
		os.Exit(1)
	}
	for i, m := range motions {
		if err := printMotion(os.Stdout, args[i], m); err != nil {
			glog.Errorf("printing %q: %v", args[i], err)
			glog.Flush()
			os.Exit(1)
		}
	}
	glog.Flush()
}
