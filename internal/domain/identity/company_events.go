package identity

import (
	"github.com/tradecore/backend/internal/domain/shared"
)

// Event types for the company aggregate
const (
	EventCompanyRegistered = "identity.company.registered"
)

// CompanyRegisteredEvent is emitted when a company is registered
type CompanyRegisteredEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
	Code string `json:"code"`
}

// NewCompanyRegisteredEvent creates a company registered event
func NewCompanyRegisteredEvent(c *Company) *CompanyRegisteredEvent {
	return &CompanyRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCompanyRegistered, "Company", c.ID, c.ID),
		Name:            c.Name,
		Code:            c.Code,
	}
}
