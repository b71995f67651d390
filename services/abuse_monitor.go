package services

import (
	"context"
	"log"
	"sync"
	"time"
)

const (
	abuseWindow        = 10 * time.Minute
	abuseThreshold     = 5
	abuseAlertCooldown = time.Hour
	abuseMaxAlerts     = 100
)

// AbuseAlert is raised when one IP keeps sending rejected contact forms
type AbuseAlert struct {
	Timestamp time.Time
	IP        string
	Reason    string
}

// AbuseMonitor counts rejected contact submissions per IP. Five rejections
// inside ten minutes raise an alert, at most one per IP per hour.
type AbuseMonitor struct {
	mu         sync.Mutex
	now        func() time.Time
	rejections map[string][]time.Time
	alertedIPs map[string]time.Time
	alerts     []AbuseAlert
}

// NewAbuseMonitor creates an empty monitor
func NewAbuseMonitor() *AbuseMonitor {
	return &AbuseMonitor{
		now:        time.Now,
		rejections: make(map[string][]time.Time),
		alertedIPs: make(map[string]time.Time),
	}
}

// TrackRejection records one rejected submission from ip. reason is the
// message key of the rejection.
func (m *AbuseMonitor) TrackRejection(ip, reason string) {
	if m == nil || ip == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	windowStart := now.Add(-abuseWindow)
	recent := m.rejections[ip][:0]
	for _, t := range m.rejections[ip] {
		if t.After(windowStart) {
			recent = append(recent, t)
		}
	}
	recent = append(recent, now)
	m.rejections[ip] = recent

	if len(recent) >= abuseThreshold {
		m.alertLocked(now, ip, reason)
	}
}

func (m *AbuseMonitor) alertLocked(now time.Time, ip, reason string) {
	if last, ok := m.alertedIPs[ip]; ok && now.Sub(last) < abuseAlertCooldown {
		return
	}
	m.alertedIPs[ip] = now

	m.alerts = append([]AbuseAlert{{Timestamp: now, IP: ip, Reason: reason}}, m.alerts...)
	if len(m.alerts) > abuseMaxAlerts {
		m.alerts = m.alerts[:abuseMaxAlerts]
	}
	log.Printf("[SECURITY ALERT] Repeated rejected contact submissions from IP %s (last: %s)", ip, reason)
}

// RecentAlerts returns the alerts, newest first
func (m *AbuseMonitor) RecentAlerts() []AbuseAlert {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]AbuseAlert, len(m.alerts))
	copy(out, m.alerts)
	return out
}

// Run drops stale entries every interval until ctx is done
func (m *AbuseMonitor) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.cleanup()
		}
	}
}

func (m *AbuseMonitor) cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for ip, attempts := range m.rejections {
		if len(attempts) == 0 || now.Sub(attempts[len(attempts)-1]) > abuseWindow {
			delete(m.rejections, ip)
		}
	}
	for ip, last := range m.alertedIPs {
		if now.Sub(last) > abuseAlertCooldown {
			delete(m.alertedIPs, ip)
		}
	}
}
