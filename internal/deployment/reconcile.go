package deployment

import (
	"sort"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
)

// ConditionClass buckets return conditions by their effect on stock.
type ConditionClass int

const (
	ClassGood ConditionClass = iota
	ClassDamaged
	ClassLost
)

// Classify maps a return condition to its class. FAIR counts as good.
// c must be valid.
func Classify(c domain.ReturnCondition) ConditionClass {
	switch c {
	case domain.ConditionGood, domain.ConditionFair:
		return ClassGood
	case domain.ConditionDamaged:
		return ClassDamaged
	case domain.ConditionLost:
		return ClassLost
	}
	panic("deployment: unclassified return condition " + string(c))
}

// UnitStatusFor is the serialized-item status a unit takes when returned in c.
func UnitStatusFor(c domain.ReturnCondition) domain.SerializedItemStatus {
	switch Classify(c) {
	case ClassGood:
		return domain.SerialAvailable
	case ClassDamaged:
		return domain.SerialDamaged
	default:
		return domain.SerialLost
	}
}

// BulkStatusFor is the deployment status a bulk deployment takes when returned in c.
func BulkStatusFor(c domain.ReturnCondition) domain.DeploymentStatus {
	switch Classify(c) {
	case ClassGood:
		return domain.DeploymentReturned
	case ClassDamaged:
		return domain.DeploymentDamaged
	default:
		return domain.DeploymentLost
	}
}

// UnitDelta is the stock change caused by recording condition next on link:
// +1 when the unit moves into the good class, -1 when it leaves it.
func UnitDelta(link domain.SerialItemDeployment, next domain.ReturnCondition) int {
	wasGood := link.Returned() && Classify(link.ReturnCondition) == ClassGood
	isGood := Classify(next) == ClassGood
	switch {
	case isGood && !wasGood:
		return 1
	case !isGood && wasGood:
		return -1
	}
	return 0
}

// DeriveStatus computes a serialized deployment's status from all of its links.
func DeriveStatus(links []domain.SerialItemDeployment) domain.DeploymentStatus {
	var returned, good, damaged, lost int
	for _, l := range links {
		if !l.Returned() {
			continue
		}
		returned++
		switch Classify(l.ReturnCondition) {
		case ClassGood:
			good++
		case ClassDamaged:
			damaged++
		case ClassLost:
			lost++
		}
	}

	n := len(links)
	switch {
	case returned == 0:
		return domain.DeploymentDeployed
	case returned < n:
		return domain.DeploymentPartialReturn
	case lost == n:
		return domain.DeploymentLost
	case damaged == n:
		return domain.DeploymentDamaged
	case good == n:
		return domain.DeploymentReturned
	}
	return domain.DeploymentPartialReturn
}

// ReturnRequest reports the condition of one serialized unit. An empty
// Condition falls back to the uniform condition of the return.
type ReturnRequest struct {
	SerializedItemID int64                  `json:"serialized_item_id" validate:"required,gt=0"`
	Condition        domain.ReturnCondition `json:"condition,omitempty" validate:"omitempty,return_condition"`
	Notes            string                 `json:"notes,omitempty" validate:"max=1000"`
}

// UnitReturn is one link update the reconciliation will apply.
type UnitReturn struct {
	SerializedItemID int64                       `json:"serialized_item_id"`
	Condition        domain.ReturnCondition      `json:"condition"`
	Notes            string                      `json:"notes,omitempty"`
	Delta            int                         `json:"delta"`
	Link             domain.SerialItemDeployment `json:"-"`
}

// Plan is the outcome of classifying a return against a deployment's links.
type Plan struct {
	Units      []UnitReturn
	Skipped    []int64
	StockDelta int
	Good       int
	Damaged    int
	Lost       int
}

// PlanReturn decides which links a return touches and the net stock change.
//
// With no explicit requests every unreturned link is returned in uniform.
// Units already returned GOOD and reported GOOD again are skipped. Ids that
// are not linked to the deployment fail the whole plan.
func PlanReturn(links []domain.SerialItemDeployment, requests []ReturnRequest, uniform domain.ReturnCondition, uniformNotes string) (Plan, error) {
	if uniform == "" {
		uniform = domain.ConditionGood
	}
	if !uniform.Valid() {
		return Plan{}, domain.ErrInvalidCondition
	}

	byUnit := make(map[int64]domain.SerialItemDeployment, len(links))
	for _, l := range links {
		byUnit[l.SerializedItemID] = l
	}

	if len(requests) == 0 {
		for _, l := range links {
			if !l.Returned() {
				requests = append(requests, ReturnRequest{SerializedItemID: l.SerializedItemID, Condition: uniform, Notes: uniformNotes})
			}
		}
	} else if err := checkRequests(byUnit, requests); err != nil {
		return Plan{}, err
	}

	var plan Plan
	for _, req := range requests {
		cond := req.Condition
		if cond == "" {
			cond = uniform
		}
		notes := req.Notes
		if notes == "" {
			notes = uniformNotes
		}
		link := byUnit[req.SerializedItemID]

		if link.Returned() && link.ReturnCondition == domain.ConditionGood && cond == domain.ConditionGood {
			plan.Skipped = append(plan.Skipped, req.SerializedItemID)
			continue
		}

		delta := UnitDelta(link, cond)
		plan.StockDelta += delta
		plan.Units = append(plan.Units, UnitReturn{
			Link:             link,
			SerializedItemID: link.SerializedItemID,
			Condition:        cond,
			Notes:            notes,
			Delta:            delta,
		})
		switch Classify(cond) {
		case ClassGood:
			plan.Good++
		case ClassDamaged:
			plan.Damaged++
		case ClassLost:
			plan.Lost++
		}
	}

	sort.Slice(plan.Units, func(i, j int) bool { return plan.Units[i].SerializedItemID < plan.Units[j].SerializedItemID })
	return plan, nil
}

func checkRequests(byUnit map[int64]domain.SerialItemDeployment, requests []ReturnRequest) error {
	seen := make(map[int64]bool, len(requests))
	var unknown, dupes []int64
	for _, req := range requests {
		if req.Condition != "" && !req.Condition.Valid() {
			return domain.ErrInvalidCondition
		}
		if seen[req.SerializedItemID] {
			dupes = append(dupes, req.SerializedItemID)
			continue
		}
		seen[req.SerializedItemID] = true
		if _, ok := byUnit[req.SerializedItemID]; !ok {
			unknown = append(unknown, req.SerializedItemID)
		}
	}
	if len(unknown) > 0 {
		return domain.WithIDs(domain.ErrSerialNotInDeployment, unknown)
	}
	if len(dupes) > 0 {
		return domain.WithIDs(domain.ErrDuplicateSerialIDs, dupes)
	}
	return nil
}

// UnitIDs returns the serialized item ids of the plan's units in ascending order.
func (p Plan) UnitIDs() []int64 {
	ids := make([]int64, len(p.Units))
	for i, u := range p.Units {
		ids[i] = u.SerializedItemID
	}
	return ids
}
