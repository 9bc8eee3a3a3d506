package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"sarveen_landing_go/config"
)

const (
	abuseWindow    = 10 * time.Minute
	abuseThreshold = 5
	alertCooldown  = 1 * time.Hour
	maxAlerts      = 100
)

// Reasons a contact submission is rejected before reaching the form endpoint
const (
	RejectCaptcha     = "captcha"
	RejectRateLimited = "rate_limited"
)

// AbuseMonitor counts rejected contact submissions per IP and raises an
// alert when one address keeps getting turned away
type AbuseMonitor struct {
	mu         sync.Mutex
	cfg        *config.Config
	rejections map[string][]time.Time // IP -> rejection timestamps
	alertedIPs map[string]time.Time   // IP -> last alert time
	alerts     []AbuseAlert
}

// AbuseAlert is one raised alert, newest first in GetRecentAlerts
type AbuseAlert struct {
	Timestamp time.Time
	IP        string
	Reason    string
	Count     int
}

// Monitor is the process-wide abuse monitor, nil until InitAbuseMonitor runs
var Monitor *AbuseMonitor

// InitAbuseMonitor creates the global monitor and starts its cleanup loop.
// Alerts are mailed to cfg.LeadNotifyEmail when it is set.
func InitAbuseMonitor(cfg *config.Config) {
	Monitor = NewAbuseMonitor(cfg)
	go Monitor.cleanup()
}

// NewAbuseMonitor returns a monitor without a cleanup loop
func NewAbuseMonitor(cfg *config.Config) *AbuseMonitor {
	return &AbuseMonitor{
		cfg:        cfg,
		rejections: make(map[string][]time.Time),
		alertedIPs: make(map[string]time.Time),
	}
}

// TrackRejected records a rejected submission from ip. A nil monitor ignores it.
func (m *AbuseMonitor) TrackRejected(ip, reason string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	windowStart := now.Add(-abuseWindow)
	recent := []time.Time{now}
	for _, t := range m.rejections[ip] {
		if t.After(windowStart) {
			recent = append(recent, t)
		}
	}
	m.rejections[ip] = recent

	if len(recent) >= abuseThreshold {
		m.alertLocked(ip, reason, len(recent))
	}
}

// alertLocked logs and mails an alert, at most once per cooldown per IP
func (m *AbuseMonitor) alertLocked(ip, reason string, count int) {
	if last, ok := m.alertedIPs[ip]; ok && time.Since(last) < alertCooldown {
		return
	}
	m.alertedIPs[ip] = time.Now()

	alert := AbuseAlert{Timestamp: time.Now(), IP: ip, Reason: reason, Count: count}
	m.alerts = append([]AbuseAlert{alert}, m.alerts...)
	if len(m.alerts) > maxAlerts {
		m.alerts = m.alerts[:maxAlerts]
	}

	log.Printf("[SECURITY ALERT] %d rejected contact submissions in %s from IP %s (last: %s)", count, abuseWindow, ip, reason)

	if m.cfg != nil && m.cfg.LeadNotifyEmail != "" {
		SendEmailAsync(m.cfg, &Email{
			To:      []string{m.cfg.LeadNotifyEmail},
			Subject: fmt.Sprintf("[%s] Contact form abuse from %s", m.cfg.SiteName, ip),
			TextBody: fmt.Sprintf("%d contact submissions from %s were rejected in the last %s.\n\nLast reason: %s\nTime: %s\n",
				count, ip, abuseWindow, reason, alert.Timestamp.Format(time.RFC1123)),
		})
	}
}

// GetRecentAlerts returns a copy of the alert history
func (m *AbuseMonitor) GetRecentAlerts() []AbuseAlert {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	alerts := make([]AbuseAlert, len(m.alerts))
	copy(alerts, m.alerts)
	return alerts
}

func (m *AbuseMonitor) prune(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for ip, times := range m.rejections {
		if len(times) == 0 || now.Sub(times[0]) > abuseWindow {
			delete(m.rejections, ip)
		}
	}
	for ip, last := range m.alertedIPs {
		if now.Sub(last) > alertCooldown {
			delete(m.alertedIPs, ip)
		}
	}
}

// cleanup periodically drops stale counters
func (m *AbuseMonitor) cleanup() {
	ticker := time.NewTicker(abuseWindow)
	for range ticker.C {
		m.prune(time.Now())
	}
}
