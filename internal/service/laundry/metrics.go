package laundry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersPaidTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "laundry_orders_paid_total",
			Help: "Total number of paid laundry orders",
		},
		[]string{"package"},
	)

	RevenueTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "laundry_revenue_total",
			Help: "Total amount deducted from user balances",
		},
	)

	OrdersCompletedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "laundry_orders_completed_total",
			Help: "Total number of laundry orders marked as done",
		},
		[]string{"package"},
	)
)
