package statemachine

import "github.com/gourmet-express/api/models"

// Stage is one step of the fixed delivery progression shown to customers.
type Stage struct {
	Status models.OrderStatus `json:"status"`
	Note   string             `json:"note"`
}

// stages is the authoritative tracking table. A client-supplied step indexes
// into it directly; applying a stage overwrites status and note, it is not an
// incremental transition.
var stages = []Stage{
	{Status: models.StatusCreated, Note: "Order created"},
	{Status: models.StatusConfirmed, Note: "Restaurant confirmed your order"},
	{Status: models.StatusPreparing, Note: "Your food is being prepared"},
	{Status: models.StatusPickedUp, Note: "Courier picked up your order"},
	{Status: models.StatusDelivered, Note: "Order delivered"},
}

// Clamp bounds a step index to the valid stage range.
func Clamp(step int) int {
	if step < 0 {
		return 0
	}
	if step >= len(stages) {
		return len(stages) - 1
	}
	return step
}

// StageFor returns the stage the clamped step maps to.
func StageFor(step int) Stage {
	return stages[Clamp(step)]
}

// Stages returns a copy of the full table for documentation endpoints.
func Stages() []Stage {
	return append([]Stage(nil), stages...)
}
