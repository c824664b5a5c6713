// Package metrics defines the custom Prometheus metrics for the booking
// API. It is the single source of truth for metric names, labels, and
// help strings. All metrics register themselves with the default registry
// at package init via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// UsersRegisteredTotal counts successfully created accounts.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created.",
	},
)

// BookingsCreatedTotal counts successfully created bookings.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created.",
	},
)

// WriteConflictsTotal counts create/update attempts rejected because a
// uniqueness or referential rule would be violated.
// Label:
//   - entity: "role", "user", "tag", "event", "event_tag", "booking"
var WriteConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "write_conflicts_total",
		Help:      "Total number of writes rejected with a conflict, by entity.",
	},
	[]string{"entity"},
)
