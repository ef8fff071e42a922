package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	foodLogged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nutritrack",
			Name:      "food_logged_total",
			Help:      "Count of foods added, by kind (eaten or planned).",
		},
		[]string{"kind"},
	)

	foodConfirmed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "nutritrack",
			Name:      "food_confirmed_total",
			Help:      "Count of planned foods marked as eaten.",
		},
	)

	foodDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "nutritrack",
			Name:      "food_deleted_total",
			Help:      "Count of foods removed from a day.",
		},
	)

	coinsAwarded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nutritrack",
			Name:      "coins_awarded_total",
			Help:      "Coins awarded, by reason.",
		},
		[]string{"reason"},
	)

	checkIns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nutritrack",
			Name:      "checkins_total",
			Help:      "Completed coach check-ins, by flow.",
		},
		[]string{"flow"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(foodLogged, foodConfirmed, foodDeleted, coinsAwarded, checkIns)
	})
}

func IncFoodLogged(planned bool) {
	kind := "eaten"
	if planned {
		kind = "planned"
	}
	foodLogged.WithLabelValues(kind).Inc()
}

func IncFoodConfirmed() {
	foodConfirmed.Inc()
}

func IncFoodDeleted() {
	foodDeleted.Inc()
}

func AddCoins(reason string, n int) {
	coinsAwarded.WithLabelValues(reason).Add(float64(n))
}

func IncCheckIn(flow string) {
	checkIns.WithLabelValues(flow).Inc()
}
