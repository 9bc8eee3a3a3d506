package main

import (
	"bytes"
	"log"
	"os"
	"testing"
	"time"

	"sarveen_landing_go/services"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestLogAbuseAlerts(t *testing.T) {
	t.Run("NoAlerts", func(t *testing.T) {
		buf := captureLog(t)
		logAbuseAlerts(nil)
		assert.Empty(t, buf.String())
	})

	t.Run("ListsAlerts", func(t *testing.T) {
		buf := captureLog(t)
		logAbuseAlerts([]services.AbuseAlert{
			{Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), IP: "203.0.113.7", Reason: services.RejectCaptcha, Count: 5},
		})

		assert.Contains(t, buf.String(), "1 contact form abuse alert(s)")
		assert.Contains(t, buf.String(), "203.0.113.7: 5 rejections (last: captcha)")
	})
}
