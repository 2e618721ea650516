package main

import (
	"flag"
	"net/http"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/trace"

	"badc0de.net/pkg/go-afteralive/web"
)

var (
	listenAddress  = flag.String("listen_address", ":8080", "http listen address for motweb")
	dataDir        = flag.String("data_dir", "", "directory holding .mot files; if empty, the default datafile locations are searched")
	debugWebServer = flag.String("debug_web_server_listen_address", "", "where the debug server (/debug/requests) will listen")
)

// traced records each request in the x/net/trace request log.
func traced(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tr := trace.New("motweb", r.Method+" "+r.URL.Path)
		defer tr.Finish()
		tr.LazyPrintf("remote %s", r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

func newRouter(dataDir string, reg *prometheus.Registry) http.Handler {
	r := mux.NewRouter()
	web.NewHandler(dataDir, reg).RegisterRoutes(r)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	var h http.Handler = r
	h = handlers.CompressHandler(h)
	h = handlers.CombinedLoggingHandler(os.Stderr, h)
	h = handlers.RecoveryHandler()(h)
	return traced(h)
}

func main() {
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	if *debugWebServer != "" {
		go func() {
			// x/net/trace registers its pages on the default mux.
			glog.Errorf("debug web server: %v", http.ListenAndServe(*debugWebServer, nil))
		}()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	glog.Infof("motweb listening on %s", *listenAddress)
	glog.Fatal(http.ListenAndServe(*listenAddress, newRouter(*dataDir, reg)))
}
