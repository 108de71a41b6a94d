package order

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "laundry_orders_created_total",
		Help: "Total number of created laundry orders",
	},
	[]string{"package"},
)
