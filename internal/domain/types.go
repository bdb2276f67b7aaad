package domain

import "strconv"

// Status is the assignment state of a phone.
type Status string

const (
	StatusFree     Status = "free"
	StatusAssigned Status = "assigned"
	StatusBroken   Status = "broken"
)

// statusLabels are the lowercase labels used in activity log details.
var statusLabels = map[Status]string{
	StatusFree:     "свободен",
	StatusAssigned: "выдан",
	StatusBroken:   "в ремонте",
}

// badgeLabels are the capitalized labels shown on status badges.
var badgeLabels = map[Status]string{
	StatusFree:     "Свободен",
	StatusAssigned: "Выдан",
	StatusBroken:   "Поломан",
}

// Label returns the activity-log label for the status, or the raw value
// for unknown statuses.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// BadgeLabel returns the badge label for the status.
func (s Status) BadgeLabel() string {
	if l, ok := badgeLabels[s]; ok {
		return l
	}
	return "Неизвестно"
}

// Phone is an inventory record for one physical device. The JSON shape
// matches the persisted state layout.
type Phone struct {
	ID         int    `json:"id"`
	Model      string `json:"model"`
	MAC        string `json:"mac"`
	IP         string `json:"ip"`
	Status     Status `json:"status"`
	User       string `json:"user"`
	Department string `json:"department"`
	Notes      string `json:"notes"`
}

// FieldKeys lists the phone fields addressable by column identifier, in
// canonical order.
var FieldKeys = []string{"model", "mac", "ip", "status", "user", "department", "notes"}

// Field returns the value of the field named by a column identifier.
// Unknown keys return the empty string.
func (p Phone) Field(key string) string {
	switch key {
	case "model":
		return p.Model
	case "mac":
		return p.MAC
	case "ip":
		return p.IP
	case "status":
		return string(p.Status)
	case "user":
		return p.User
	case "department":
		return p.Department
	case "notes":
		return p.Notes
	}
	return ""
}

// SetField overwrites the field named by a column identifier. Unknown
// keys are ignored.
func (p *Phone) SetField(key, value string) {
	switch key {
	case "model":
		p.Model = value
	case "mac":
		p.MAC = value
	case "ip":
		p.IP = value
	case "status":
		p.Status = Status(value)
	case "user":
		p.User = value
	case "department":
		p.Department = value
	case "notes":
		p.Notes = value
	}
}

// Values returns every field of the phone stringified, ID included, for
// any-field search.
func (p Phone) Values() []string {
	vals := make([]string, 0, len(FieldKeys)+1)
	vals = append(vals, strconv.Itoa(p.ID))
	for _, key := range FieldKeys {
		vals = append(vals, p.Field(key))
	}
	return vals
}

// Column is a configurable, reorderable display field bound to a phone
// attribute. Ordinal position is the slice position in the registry.
type Column struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Visible bool   `json:"visible"`
}

// ActivityEntry is one audit-trail record. PhoneModel is a snapshot, not
// a live reference: later renames do not rewrite history.
type ActivityEntry struct {
	Timestamp  string `json:"timestamp"`
	Action     string `json:"action"`
	PhoneModel string `json:"phoneModel"`
	Details    string `json:"details"`
}

// TimestampLayout formats activity timestamps the way the original
// widget's ru-RU locale did.
const TimestampLayout = "02.01.2006, 15:04"
