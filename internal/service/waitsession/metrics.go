package waitsession

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PollTicksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "wait_poll_ticks_total",
		Help: "Total number of wait session poll ticks by outcome",
	},
	[]string{"role", "outcome"},
)

const (
	tickOutcomeContinue = "continue"
	tickOutcomeMatched  = "matched"
	tickOutcomeTimeout  = "timeout"
	tickOutcomeError    = "error"
)
