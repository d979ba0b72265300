package domain

// RoomType classifies a physical room
type RoomType string

const (
	RoomSingle RoomType = "SINGLE"
	RoomDouble RoomType = "DOUBLE"
	RoomFamily RoomType = "FAMILY"
)

// RoomStatus is a derived occupancy signal: OCCUPIED iff at least one guest
// currently lives in the room. The persisted value is a snapshot kept in sync
// with guest rows inside every allocation transaction; guest rows win on
// disagreement.
type RoomStatus string

const (
	StatusNotOccupied RoomStatus = "NOT_OCCUPIED"
	StatusOccupied    RoomStatus = "OCCUPIED"
)

// Room represents a physical unit with fixed bed capacity and nightly price.
// The key is assigned by staff (e.g. "101A") and never changes.
type Room struct {
	Key    string
	Type   RoomType
	Beds   int
	Status RoomStatus
	Price  float64
}

// IsOccupied returns true if the room currently houses guests
func (r *Room) IsOccupied() bool {
	return r.Status == StatusOccupied
}

// FitsMore reports whether the room can take count more guests
// on top of the current occupants
func (r *Room) FitsMore(occupants, count int) bool {
	return occupants+count <= r.Beds
}
