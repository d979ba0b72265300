package domain

// GuestGeneration distinguishes adults from children.
// Children may be registered without an id-card.
type GuestGeneration string

const (
	GenerationAdult GuestGeneration = "ADULT"
	GenerationChild GuestGeneration = "CHILD"
)

// Guest represents an individual occupant tied to exactly one reservation.
// Guests are created at check-in and deleted at checkout.
type Guest struct {
	ID            int64
	Name          string
	Room          string // room key, "" = not assigned yet
	IDCard        string // required unless Generation is CHILD
	Generation    GuestGeneration
	Info          string
	ReservationID int64
}

// HasRoom returns true once the guest has been placed into a room
func (g *Guest) HasRoom() bool {
	return g.Room != ""
}

// RequiresIDCard returns true if an id-card must be present for this guest
func (g *Guest) RequiresIDCard() bool {
	return g.Generation != GenerationChild
}
