// Package transitions enumerates the legal lifecycle moves for fleet
// entities. The tables only describe what is legal to offer in the UI; the
// remote API remains the source of truth and may still reject a request.
package transitions

import "github.com/ukydev/fleet-logistics/internal/models"

// Kind identifies an entity kind tracked by the registry.
type Kind string

const (
	KindTruck  Kind = "truck"
	KindDriver Kind = "driver"
)

// Transition is a legal next state together with the action label shown to
// the user.
type Transition struct {
	Target string `json:"target"`
	Label  string `json:"label"`
}

var truckTransitions = map[models.TruckStatus][]Transition{
	models.TruckAvailable: {
		{Target: string(models.TruckInTransit), Label: "Set In Transit"},
		{Target: string(models.TruckUnderMaintenance), Label: "Set Under Maintenance"},
		{Target: string(models.TruckRetired), Label: "Retire Truck"},
	},
	models.TruckInTransit: {
		{Target: string(models.TruckAvailable), Label: "Mark as Available"},
		{Target: string(models.TruckUnderMaintenance), Label: "Set Under Maintenance"},
	},
	models.TruckUnderMaintenance: {
		{Target: string(models.TruckAvailable), Label: "Mark as Available"},
		{Target: string(models.TruckRetired), Label: "Retire Truck"},
	},
	models.TruckRetired: {},
}

var driverTransitions = map[models.EmploymentStatus][]Transition{
	models.DriverActive: {
		{Target: string(models.DriverSuspended), Label: "Suspend Driver"},
		{Target: string(models.DriverTerminated), Label: "Terminate Driver"},
	},
	models.DriverSuspended: {
		{Target: string(models.DriverActive), Label: "Reactivate Driver"},
		{Target: string(models.DriverTerminated), Label: "Terminate Driver"},
	},
	models.DriverTerminated: {},
}

// For returns the ordered list of legal transitions out of the given status.
// Unknown kinds or statuses yield an empty list, never an error. The returned
// slice is a copy, so callers may reorder or filter it freely.
func For(kind Kind, current string) []Transition {
	var found []Transition
	switch kind {
	case KindTruck:
		found = truckTransitions[models.TruckStatus(current)]
	case KindDriver:
		found = driverTransitions[models.EmploymentStatus(current)]
	}

	out := make([]Transition, len(found))
	copy(out, found)
	return out
}

// ForTruck returns the legal transitions out of a truck status.
func ForTruck(current models.TruckStatus) []Transition {
	return For(KindTruck, string(current))
}

// ForDriver returns the legal transitions out of a driver employment status.
func ForDriver(current models.EmploymentStatus) []Transition {
	return For(KindDriver, string(current))
}

// CanTransition reports whether moving from current to target is legal for
// the given kind.
func CanTransition(kind Kind, current, target string) bool {
	for _, tr := range For(kind, current) {
		if tr.Target == target {
			return true
		}
	}
	return false
}
