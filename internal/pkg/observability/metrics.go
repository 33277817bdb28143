package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	daysSaved = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "oredipendenti",
		Name:      "timesheet_days_saved_total",
		Help:      "Number of day entries saved or merged",
	})

	summariesComputed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "oredipendenti",
		Name:      "timesheet_summaries_computed_total",
		Help:      "Number of monthly summaries computed",
	})

	ratingsSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "oredipendenti",
		Name:      "ratings_submitted_total",
		Help:      "Number of product ratings submitted",
	})

	uploads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "oredipendenti",
		Name:      "product_image_uploads_total",
		Help:      "Number of product image upload attempts by result",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(daysSaved, summariesComputed, ratingsSubmitted, uploads)
}

func RecordDaySaved() {
	daysSaved.Inc()
}

func RecordSummaryComputed() {
	summariesComputed.Inc()
}

func RecordRatingSubmitted() {
	ratingsSubmitted.Inc()
}

func RecordUpload(ok bool) {
	result := "success"
	if !ok {
		result = "failure"
	}
	uploads.WithLabelValues(result).Inc()
}
