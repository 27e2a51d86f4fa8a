package models

import "gorm.io/gorm"

// LoginAudit records a successful login or registration for the audit
// trail. Rows older than the retention window are purged by the scheduler.
type LoginAudit struct {
	gorm.Model
	SessionID string `json:"session_id" gorm:"index"`
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Event     string `json:"event"` // LOGIN or REGISTER
	Backend   string `json:"backend"`
	IPAddress string `json:"ip_address"`
	// ForwardedFor is the client-supplied X-Forwarded-For header, kept
	// separately because it is spoofable and must never replace the
	// socket-derived address.
	ForwardedFor string `json:"forwarded_for"`
	Device       string `json:"device"`
}
