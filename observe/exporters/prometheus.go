package exporters

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusHandler returns an HTTP handler serving the default Prometheus
// registry. The "prometheus" metrics reader created by NewMetricsReader
// records into that registry, so mounting this handler exposes all resource
// lifecycle metrics for scraping.
func PrometheusHandler() http.Handler {
	return promhttp.Handler()
}
