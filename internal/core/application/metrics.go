package application

import "github.com/prometheus/client_golang/prometheus"

var (
	swapsPricedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poolswap_swaps_priced_total",
			Help: "Number of swap pricings served, by outcome.",
		},
		[]string{"outcome"},
	)
	liquidityOpsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poolswap_liquidity_ops_total",
			Help: "Number of deposit and withdrawal pricings served.",
		},
		[]string{"op"},
	)
)

func init() {
	prometheus.MustRegister(swapsPricedCounter, liquidityOpsCounter)
}

func observeSwap(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	swapsPricedCounter.WithLabelValues(outcome).Inc()
}
