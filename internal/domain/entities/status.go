package entities

// Order lifecycle status values. The set is closed and small; the table
// below is built once at init and never mutated.

const (
	StatusDraft        = 0
	StatusPending      = 1
	StatusInProduction = 2
	StatusPaused       = 3
	StatusDone         = 4
	StatusDelivered    = 5
	StatusCanceled     = 6
	StatusRetouch      = 7
	StatusArchived     = 8
)

// StatusDescriptor pairs a status value with its display metadata.
type StatusDescriptor struct {
	Value int    `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

var statuses = []StatusDescriptor{
	{Value: StatusDraft, Label: "Brouillon", Color: "#9CA3AF"},
	{Value: StatusPending, Label: "En attente", Color: "#F59E0B"},
	{Value: StatusInProduction, Label: "En cours", Color: "#3B82F6"},
	{Value: StatusPaused, Label: "Pause", Color: "#6B7280"},
	{Value: StatusDone, Label: "Terminé", Color: "#10B981"},
	{Value: StatusDelivered, Label: "Livré", Color: "#14B8A6"},
	{Value: StatusCanceled, Label: "Annulée", Color: "#EF4444"},
	{Value: StatusRetouch, Label: "Retouche", Color: "#8B5CF6"},
	{Value: StatusArchived, Label: "Archivée", Color: "#4B5563"},
}

// formStatuses is the subset offered when a user picks a status on the order
// form. Paused, Retouch and Archived are not manual transition targets.
var formStatuses = []StatusDescriptor{
	statuses[StatusDraft],
	statuses[StatusPending],
	statuses[StatusInProduction],
	statuses[StatusDone],
	statuses[StatusDelivered],
	statuses[StatusCanceled],
}

var statusByValue = func() map[int]StatusDescriptor {
	m := make(map[int]StatusDescriptor, len(statuses))
	for _, s := range statuses {
		m[s.Value] = s
	}
	return m
}()

// StatusByValue resolves a status value to its descriptor. Unknown values
// fall back to the Draft descriptor; this is the intended default for
// records that never had a status set, not an error path.
func StatusByValue(value int) StatusDescriptor {
	if s, ok := statusByValue[value]; ok {
		return s
	}
	return statuses[StatusDraft]
}

// StatusByOptionalValue resolves a possibly absent status value.
func StatusByOptionalValue(value *int) StatusDescriptor {
	if value == nil {
		return statuses[StatusDraft]
	}
	return StatusByValue(*value)
}

// AllStatuses returns every lifecycle status in display order.
func AllStatuses() []StatusDescriptor {
	out := make([]StatusDescriptor, len(statuses))
	copy(out, statuses)
	return out
}

// FormStatuses returns the statuses selectable from the order form.
func FormStatuses() []StatusDescriptor {
	out := make([]StatusDescriptor, len(formStatuses))
	copy(out, formStatuses)
	return out
}
