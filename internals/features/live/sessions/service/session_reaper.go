// file: internals/features/live/sessions/service/session_reaper.go
package service

import (
	"log"
	"time"

	"github.com/google/uuid"

	sessionModel "kodingku_backend/internals/features/live/sessions/model"
	"kodingku_backend/internals/metrics"
)

// Sesi yang umurnya (sejak started_at, fallback created_at) melewati batas
// ini dianggap selesai dan dinonaktifkan otomatis.
const SessionMaxAge = 24 * time.Hour

// ExpiredSessionIDs memilih sesi aktif yang sudah kedaluwarsa. Murni,
// dipakai jalur list dan dites langsung.
func ExpiredSessionIDs(sessions []sessionModel.LiveSessionModel, now time.Time) []uuid.UUID {
	var ids []uuid.UUID
	for i := range sessions {
		s := &sessions[i]
		if s.LiveSessionIsActive && s.IsExpired(now, SessionMaxAge) {
			ids = append(ids, s.LiveSessionID)
		}
	}
	return ids
}

// ReapIfExpired dipanggil inline di jalur snapshot: satu sesi, sinkron,
// supaya caller langsung melihat view yang sudah nonaktif. Gagal tulis
// hanya dicatat; view nonaktif tetap disajikan dan dievaluasi ulang di
// poll berikutnya.
func (svc *LiveSessionService) ReapIfExpired(m *sessionModel.LiveSessionModel, now time.Time) bool {
	if !m.LiveSessionIsActive || !m.IsExpired(now, SessionMaxAge) {
		return false
	}

	if err := svc.SetActive(m.LiveSessionID, false, &now); err != nil {
		log.Printf("[WARN] reaper: gagal menonaktifkan sesi %s: %v", m.LiveSessionID, err)
	} else {
		metrics.SessionsReaped.Inc()
	}

	m.LiveSessionIsActive = false
	m.LiveSessionEndedAt = &now
	return true
}

// ReapExpired menonaktifkan banyak sesi sekaligus. Dipanggil best-effort
// dari goroutine di jalur list; kegagalan dicatat, tidak pernah sampai
// ke caller.
func (svc *LiveSessionService) ReapExpired(ids []uuid.UUID, now time.Time) {
	if len(ids) == 0 {
		return
	}

	res := svc.DB.Model(&sessionModel.LiveSessionModel{}).
		Where("live_session_id IN ? AND live_session_is_active = TRUE", ids).
		Updates(map[string]interface{}{
			"live_session_is_active":  false,
			"live_session_ended_at":   now,
			"live_session_updated_at": now,
		})
	if res.Error != nil {
		log.Printf("[WARN] reaper: gagal menonaktifkan %d sesi: %v", len(ids), res.Error)
		return
	}
	metrics.SessionsReaped.Add(float64(res.RowsAffected))
}
