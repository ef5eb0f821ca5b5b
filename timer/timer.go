// Package timer provides time tracking for request handlers.
package timer

import (
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
})

// LoggerConfig sets the prefix of the package logger.
func LoggerConfig(prefix string) {
	logger.SetPrefix(prefix)
}

// MakeRequestTimeTracker sticks a time measurement to the handler that is
// called while the request processes. The measured duration is passed to
// saver; on a handler error it is saved only if saveOnError is set.
func MakeRequestTimeTracker(
	handler func(rw http.ResponseWriter, req *http.Request) error,
	saver func(t time.Duration),
	saveOnError bool,
) func(rw http.ResponseWriter, req *http.Request) error {
	return func(rw http.ResponseWriter, req *http.Request) error {
		start := time.Now()
		err := handler(rw, req)
		if err == nil || saveOnError {
			saver(time.Since(start))
		}

		return err
	}
}

// SaveServeTime logs how long the file server took to write a response.
func SaveServeTime(serveTime time.Duration) {
	logger.Infof("Serve time: %v", serveTime)
}
