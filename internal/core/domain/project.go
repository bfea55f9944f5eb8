package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus is the lifecycle stage of a construction project (obra).
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "PLANNING"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectCompleted  ProjectStatus = "COMPLETED"
	ProjectPaused     ProjectStatus = "PAUSED"
)

// ProjectStatuses lists every status in display order.
var ProjectStatuses = []ProjectStatus{ProjectPlanning, ProjectInProgress, ProjectCompleted, ProjectPaused}

// Project represents a construction site / job.
type Project struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"clientId"` // not enforced in memory; may dangle after a client is removed
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	Status         ProjectStatus   `json:"status"`
	Budget         decimal.Decimal `json:"budget"`
	Spent          decimal.Decimal `json:"spent"` // only grows, through paid expenses
	StartDate      time.Time       `json:"startDate"`
	CompletionDate time.Time       `json:"completionDate"`
	Progress       int             `json:"progress"` // 0-100
	Image          string          `json:"image"`
}

func (p Project) GetID() string    { return p.ID }
func (p *Project) SetID(id string) { p.ID = id }
