package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RegistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "donorhub_registrations_total",
		Help: "Registrations created since start.",
	})

	DonationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "donorhub_donations_total",
		Help: "Finalized donation outcomes by status.",
	}, []string{"status"})

	PaymentAttemptsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "donorhub_payment_attempts_in_flight",
		Help: "Payment attempts currently running.",
	})
)
