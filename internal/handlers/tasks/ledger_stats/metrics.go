package ledger_stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UsersTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "laundry_users",
			Help: "Number of users in the ledger",
		},
	)

	OrdersByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "laundry_orders",
			Help: "Number of laundry orders in the ledger by status",
		},
		[]string{"status"},
	)

	OutstandingAmount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "laundry_outstanding_amount",
			Help: "Sum of amount_to_pay over orders awaiting payment",
		},
	)
)
