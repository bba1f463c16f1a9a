package identity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/shared"
)

// AuditLog is an append-only record of an action performed in the system.
// Rows are never updated or deleted.
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID  *uuid.UUID `gorm:"type:uuid;index"`
	ActorID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Action     string     `gorm:"size:200;not null"`
	TargetType string     `gorm:"size:100"`
	TargetID   string     `gorm:"size:100"`
	Details    string     `gorm:"type:text"`
	Method     string     `gorm:"size:10"`
	Path       string     `gorm:"size:500"`
	CreatedAt  time.Time  `gorm:"index"`
}

// TableName returns the database table name
func (AuditLog) TableName() string {
	return "audit_logs"
}

// NewAuditLog creates an audit record for a domain action
func NewAuditLog(actorID uuid.UUID, companyID *uuid.UUID, action string) (*AuditLog, error) {
	if action == "" {
		return nil, shared.NewDomainError("INVALID_AUDIT_ACTION", "Audit action cannot be empty")
	}
	return &AuditLog{
		ID:        uuid.New(),
		CompanyID: companyID,
		ActorID:   actorID,
		Action:    action,
		CreatedAt: time.Now(),
	}, nil
}

// WithTarget attaches the affected entity
func (l *AuditLog) WithTarget(targetType, targetID string) *AuditLog {
	l.TargetType = targetType
	l.TargetID = targetID
	return l
}

// WithRequest attaches the HTTP request shape
func (l *AuditLog) WithRequest(method, path string) *AuditLog {
	l.Method = method
	l.Path = path
	return l
}

// WithDetails serializes the given payload as the details JSON.
// Secrets must be stripped by the caller before the payload reaches here.
func (l *AuditLog) WithDetails(payload any) *AuditLog {
	if payload == nil {
		return l
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return l
	}
	l.Details = string(data)
	return l
}
