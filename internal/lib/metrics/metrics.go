package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const OutcomeAccepted = "accepted"

var BookingDecisions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "spot_booker_booking_decisions_total",
		Help: "Booking attempts by outcome: accepted or the rejection kind.",
	},
	[]string{"outcome"},
)

func Handler() http.Handler {
	return promhttp.Handler()
}
