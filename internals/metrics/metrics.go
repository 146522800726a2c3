// file: internals/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counter engine sesi live & gerbang akses. Registrasi lewat promauto ke
// default registry supaya ikut terekspos di /metrics bersama metric runtime Go.
var (
	SnapshotPolls = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kodingku_live_snapshot_polls_total",
		Help: "Jumlah permintaan snapshot sesi live yang dilayani.",
	})

	BroadcastWrites = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kodingku_live_broadcast_writes_total",
		Help: "Jumlah update broadcast trainer yang diterapkan.",
	})

	ScratchpadWrites = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kodingku_live_scratchpad_writes_total",
		Help: "Jumlah upsert scratchpad student.",
	})

	SessionsReaped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kodingku_live_sessions_reaped_total",
		Help: "Jumlah sesi live yang dinonaktifkan karena lewat batas umur.",
	})

	AccessChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kodingku_access_checks_total",
		Help: "Jumlah cek status akses student, dilabel hasil akhirnya.",
	}, []string{"status"})
)
