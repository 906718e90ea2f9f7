package domain

import "time"

// DeploymentType describes where a deployment goes.
type DeploymentType string

const (
	DeploymentEmergency       DeploymentType = "EMERGENCY"
	DeploymentTraining        DeploymentType = "TRAINING"
	DeploymentMaintenance     DeploymentType = "MAINTENANCE"
	DeploymentReliefOperation DeploymentType = "RELIEF_OPERATION"
)

// Valid reports whether t is a known deployment type.
func (t DeploymentType) Valid() bool {
	switch t {
	case DeploymentEmergency, DeploymentTraining, DeploymentMaintenance, DeploymentReliefOperation:
		return true
	}
	return false
}

// DeploymentStatus is the aggregate state of a deployment.
type DeploymentStatus string

const (
	DeploymentDeployed      DeploymentStatus = "DEPLOYED"
	DeploymentPartialReturn DeploymentStatus = "PARTIAL_RETURN"
	DeploymentReturned      DeploymentStatus = "RETURNED"
	DeploymentDamaged       DeploymentStatus = "DAMAGED"
	DeploymentLost          DeploymentStatus = "LOST"
)

// Valid reports whether s is a known deployment status.
func (s DeploymentStatus) Valid() bool {
	switch s {
	case DeploymentDeployed, DeploymentPartialReturn, DeploymentReturned, DeploymentDamaged, DeploymentLost:
		return true
	}
	return false
}

// IsOpen reports whether units may still come back on this deployment.
func (s DeploymentStatus) IsOpen() bool {
	return s == DeploymentDeployed || s == DeploymentPartialReturn
}

// ReturnCondition is the reported state of returned equipment.
type ReturnCondition string

const (
	ConditionGood    ReturnCondition = "GOOD"
	ConditionFair    ReturnCondition = "FAIR"
	ConditionDamaged ReturnCondition = "DAMAGED"
	ConditionLost    ReturnCondition = "LOST"
)

// Valid reports whether c is a known return condition.
func (c ReturnCondition) Valid() bool {
	switch c {
	case ConditionGood, ConditionFair, ConditionDamaged, ConditionLost:
		return true
	}
	return false
}

// Deployment is an outbound issue of stock.
type Deployment struct {
	ID                 int64            `json:"id"`
	ItemID             int64            `json:"item_id"`
	DeployedBy         int64            `json:"deployed_by"`
	DeployedTo         *int64           `json:"deployed_to,omitempty"`
	DeploymentType     DeploymentType   `json:"deployment_type"`
	QuantityDeployed   int              `json:"quantity_deployed"`
	IsSerialized       bool             `json:"is_serialized"`
	Location           string           `json:"deployment_location"`
	DeploymentDate     time.Time        `json:"deployment_date"`
	ExpectedReturnDate *time.Time       `json:"expected_return_date,omitempty"`
	ActualReturnDate   *time.Time       `json:"actual_return_date,omitempty"`
	Status             DeploymentStatus `json:"status"`
	ReturnCondition    *ReturnCondition `json:"return_condition,omitempty"`
	Notes              string           `json:"notes"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// DeploymentReturnUpdate carries the columns rewritten when a return is recorded.
type DeploymentReturnUpdate struct {
	DeploymentID     int64
	Status           DeploymentStatus
	ReturnCondition  *ReturnCondition
	ActualReturnDate *time.Time
	Note             string // appended to existing notes
}

// SerialItemDeployment links one serialized unit to a deployment.
// ReturnCondition is empty until the unit has been returned.
type SerialItemDeployment struct {
	ID               int64           `json:"id"`
	DeploymentID     int64           `json:"deployment_id"`
	SerializedItemID int64           `json:"serialized_item_id"`
	DeployedAt       time.Time       `json:"deployed_at"`
	ReturnedAt       *time.Time      `json:"returned_at,omitempty"`
	ReturnCondition  ReturnCondition `json:"return_condition,omitempty"`
	Notes            string          `json:"notes"`
}

// Returned reports whether the unit has come back.
func (l SerialItemDeployment) Returned() bool {
	return l.ReturnedAt != nil
}

// DeploymentFilter narrows deployment listings.
type DeploymentFilter struct {
	ItemID *int64
	Status *DeploymentStatus
	Limit  int
	Offset int
}
