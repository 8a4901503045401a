// Package occupancy decides whether a party of adults and children can be
// legally placed into the resort's room types, and how many rooms a party
// minimally needs. The rules are pure functions with no dependencies; they
// never panic on malformed input and coerce negative counts to zero.
package occupancy

import (
	"strings"

	"github.com/wildgrove/resort-booking-service/internal/domain"
)

// Profile describes the per-room occupancy limits of one room archetype.
// A profile may carry one disallowed exact (adults, children) combination
// that is rejected even though it fits within the numeric limits.
type Profile struct {
	Name        string
	BaseAdults  int
	BaseChild   int
	MaxAdults   int
	MaxChild    int
	MaxPeople   int
	Disallowed  bool
	DisAdults   int
	DisChildren int
}

// Room archetype profiles. Forest Bathtub and Luxury Sunroom share the same
// limits, including the rejected full-house combination of 3 adults with
// 2 children.
var (
	glassCottage = Profile{
		Name: "glass cottage", BaseAdults: 2, BaseChild: 0,
		MaxAdults: 2, MaxChild: 1, MaxPeople: 3,
	}
	forestBathtub = Profile{
		Name: "forest bathtub", BaseAdults: 2, BaseChild: 0,
		MaxAdults: 3, MaxChild: 2, MaxPeople: 4,
		Disallowed: true, DisAdults: 3, DisChildren: 2,
	}
	luxurySunroom = Profile{
		Name: "luxury sunroom", BaseAdults: 2, BaseChild: 0,
		MaxAdults: 3, MaxChild: 2, MaxPeople: 4,
		Disallowed: true, DisAdults: 3, DisChildren: 2,
	}
	jungleLoft = Profile{
		Name: "jungle loft", BaseAdults: 2, BaseChild: 0,
		MaxAdults: 3, MaxChild: 1, MaxPeople: 3,
		Disallowed: true, DisAdults: 3, DisChildren: 1,
	}
)

// profiles in the order they are tried for a single room
var profiles = []Profile{glassCottage, forestBathtub, luxurySunroom, jungleLoft}

// Most permissive per-room limits across all archetypes, used when scaling to
// multiple rooms: the party is assumed distributable across rooms.
const (
	scaledMaxAdults = 3
	scaledMaxChild  = 2
	scaledMaxPeople = 4
)

// Accepts reports whether a single room with this profile can host the party.
func (p Profile) Accepts(adults, children int) bool {
	if p.Disallowed && adults == p.DisAdults && children == p.DisChildren {
		return false
	}
	return adults <= p.MaxAdults &&
		children <= p.MaxChild &&
		adults+children <= p.MaxPeople
}

// MinimumRoomsFor returns the smallest number of rooms that can host the
// party. One room is tried against every archetype first; larger parties are
// checked against linearly scaled limits for 2..4 rooms. Parties that do not
// fit even 4 rooms are clamped to 4 rooms rather than rejected.
func MinimumRoomsFor(adults, children int) int {
	if adults < 0 {
		adults = 0
	}
	if children < 0 {
		children = 0
	}

	for _, p := range profiles {
		if p.Accepts(adults, children) {
			return 1
		}
	}

	for n := 2; n <= domain.MaxRoomsPerBooking; n++ {
		if adults <= scaledMaxAdults*n &&
			children <= scaledMaxChild*n &&
			adults+children <= scaledMaxPeople*n {
			return n
		}
	}

	return domain.MaxRoomsPerBooking
}

// ProfileForRoomName matches a free-text room name against the known
// archetypes, case-insensitively on substrings. This is the single place the
// name heuristic lives; callers must not inspect room names themselves.
// Returns false when the name matches no archetype.
func ProfileForRoomName(name string) (Profile, bool) {
	lower := strings.ToLower(name)
	for _, p := range profiles {
		if strings.Contains(lower, p.Name) {
			return p, true
		}
	}
	return Profile{}, false
}

// IsOccupancyValid re-validates a specific offer returned by the upstream
// search against the party, scaled by numRooms. The offer's own declared
// maxima take precedence over the static archetype limits, because the PMS
// may return rooms whose limits differ from the website's profiles.
//
// For a single room the archetype's disallowed-combo and max-people rules
// apply on top of the offer's maxima. For multiple rooms only the linearly
// scaled totals are checked; the combo is assumed distributable.
func IsOccupancyValid(room *domain.RoomOffer, adults, children, numRooms int) bool {
	if room == nil || numRooms < 1 {
		return false
	}
	if adults < 0 {
		adults = 0
	}
	if children < 0 {
		children = 0
	}

	profile, matched := ProfileForRoomName(room.Name)

	if numRooms == 1 {
		if adults > room.MaxAdultOccupancy || children > room.MaxChildOccupancy {
			return false
		}
		if matched {
			if profile.Disallowed && adults == profile.DisAdults && children == profile.DisChildren {
				return false
			}
			if adults+children > profile.MaxPeople {
				return false
			}
		}
		return true
	}

	maxPeople := room.MaxAdultOccupancy + room.MaxChildOccupancy
	if matched {
		maxPeople = profile.MaxPeople
	}

	return adults <= room.MaxAdultOccupancy*numRooms &&
		children <= room.MaxChildOccupancy*numRooms &&
		adults+children <= maxPeople*numRooms
}
