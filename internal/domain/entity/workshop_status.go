package entity

// WorkshopStatus is the operational status flag of a workshop.
type WorkshopStatus string

const (
	WorkshopStatusOpen   WorkshopStatus = "OPEN"
	WorkshopStatusClosed WorkshopStatus = "CLOSED"
)

func (s WorkshopStatus) String() string {
	return string(s)
}

// IsValid checks if the WorkshopStatus is a known value.
func (s WorkshopStatus) IsValid() bool {
	return s == WorkshopStatusOpen || s == WorkshopStatusClosed
}
