package server

import (
	"net/http"

	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/golang/glog"
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var (
	pathKey   = tag.MustNewKey("path")
	sceneKey  = tag.MustNewKey("scene")
	statusKey = tag.MustNewKey("status")
)

// requestMetrics counts handled requests by path, scene and status
type requestMetrics struct {
	requestCount     *stats.Int64Measure
	requestCountView *view.View
}

func newRequestMetrics() *requestMetrics {
	m := &requestMetrics{}
	m.requestCount = stats.Int64("pathtracer/http_requests", "", stats.UnitDimensionless)
	m.requestCountView = &view.View{
		Name:        "pathtracer/http_requests",
		Description: "Counter of requests that have been handled",
		TagKeys:     []tag.Key{pathKey, sceneKey, statusKey},
		Measure:     m.requestCount,
		Aggregation: view.Count(),
	}
	return m
}

func (m *requestMetrics) register() error {
	return view.Register(m.requestCountView)
}

// statusRecorder remembers the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (m *requestMetrics) wrap(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		inner.ServeHTTP(rec, r)

		sceneName := r.URL.Query().Get("scene")
		glog.V(1).Infof("Served path=%q scene=%q status=%d", r.URL.Path, sceneName, rec.status)

		mutators := []tag.Mutator{
			tag.Insert(pathKey, pathTag(r.URL.Path)),
			tag.Insert(statusKey, http.StatusText(rec.status)),
		}
		if sceneName != "" {
			mutators = append(mutators, tag.Insert(sceneKey, sceneTag(sceneName)))
		}

		stats.RecordWithOptions(
			r.Context(),
			stats.WithTags(mutators...),
			stats.WithMeasurements(m.requestCount.M(1)))
	})
}

// unknownTag replaces tag values that are not in a fixed set
const unknownTag = "unknown"

var routes = map[string]bool{
	"/api/render":       true,
	"/api/scenes":       true,
	"/api/scene-config": true,
	"/api/health":       true,
}

func pathTag(path string) string {
	if routes[path] {
		return path
	}
	return unknownTag
}

func sceneTag(name string) string {
	for _, known := range scene.Names() {
		if name == known {
			return name
		}
	}
	return unknownTag
}
