package fileserver

import (
	"fmt"
	"net/http"

	"github.com/michlin0825/todo-frontend-server/metrics"
	"github.com/michlin0825/todo-frontend-server/timer"
)

// statusWriter captures the status code and the number of body bytes
// written to the underlying http.ResponseWriter.
type statusWriter struct {
	http.ResponseWriter
	status      int
	size        int
	wroteHeader bool
}

func newStatusWriter(rw http.ResponseWriter) *statusWriter {
	return &statusWriter{
		ResponseWriter: rw,
		status:         http.StatusOK,
	}
}

func (w *statusWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.status = code
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Handler returns the handler chain serving files from the root directory.
// Path resolution, index.html lookup, directory listings and the mapping of
// missing files and permission errors to 404 and 403 are delegated to
// http.FileServer, which also rejects paths escaping the root.
// One log line is written per request after the response has been sent.
func (s *Server) Handler() http.Handler {
	fs := http.FileServer(http.Dir(s.root))

	serve := func(rw http.ResponseWriter, req *http.Request) error {
		metrics.IncRequestsNow()
		defer metrics.DecRequestsNow()
		defer metrics.IncRequests()

		sw := newStatusWriter(rw)
		fs.ServeHTTP(sw, req)

		metrics.UpdateResponseBodySize(float64(sw.size))
		s.logger.Info("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", sw.status,
			"size", sw.size,
		)

		if sw.status >= http.StatusInternalServerError {
			return fmt.Errorf("%s %s: status %d", req.Method, req.URL.Path, sw.status)
		}
		return nil
	}

	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		if err := timer.MakeRequestTimeTracker(serve, timer.SaveServeTime, true)(rw, req); err != nil {
			s.logger.Error("Serving failed", "err", err)
		}
	})
}
