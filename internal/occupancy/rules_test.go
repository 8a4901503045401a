package occupancy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wildgrove/resort-booking-service/internal/domain"
	"github.com/wildgrove/resort-booking-service/internal/occupancy"
)

func TestMinimumRoomsFor_SingleRoom(t *testing.T) {
	tests := []struct {
		name     string
		adults   int
		children int
		want     int
	}{
		{"couple", 2, 0, 1},
		{"solo traveller", 1, 0, 1},
		{"couple with child", 2, 1, 1},
		{"three adults", 3, 0, 1},
		{"three adults one child fits bathtub", 3, 1, 1},
		{"two adults two children", 2, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, occupancy.MinimumRoomsFor(tt.adults, tt.children))
		})
	}
}

func TestMinimumRoomsFor_MultiRoom(t *testing.T) {
	tests := []struct {
		name     string
		adults   int
		children int
		want     int
	}{
		// 3+2 запрещено для bathtub/sunroom и не лезет ни в один архетип
		{"three adults two children need two rooms", 3, 2, 2},
		{"four adults", 4, 0, 2},
		{"six adults", 6, 0, 2},
		{"seven adults", 7, 0, 3},
		{"big family", 9, 6, 4},
		{"twelve adults", 12, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, occupancy.MinimumRoomsFor(tt.adults, tt.children))
		})
	}
}

func TestMinimumRoomsFor_ClampsToMax(t *testing.T) {
	// Вечеринка, которая не лезет даже в 4 номера, упирается в потолок
	assert.Equal(t, domain.MaxRoomsPerBooking, occupancy.MinimumRoomsFor(50, 20))
}

func TestMinimumRoomsFor_NegativeCounts(t *testing.T) {
	assert.Equal(t, 1, occupancy.MinimumRoomsFor(-3, -1))
}

func TestMinimumRoomsFor_Monotonic(t *testing.T) {
	// Больше гостей никогда не требует меньше номеров
	prev := 0
	for adults := 0; adults <= 14; adults++ {
		rooms := occupancy.MinimumRoomsFor(adults, 0)
		assert.GreaterOrEqual(t, rooms, prev, "adults=%d", adults)
		prev = rooms
	}
}

func TestProfileForRoomName(t *testing.T) {
	tests := []struct {
		name    string
		room    string
		want    string
		matched bool
	}{
		{"exact", "Glass Cottage", "glass cottage", true},
		{"substring", "Premium Forest Bathtub Villa", "forest bathtub", true},
		{"case insensitive", "JUNGLE LOFT", "jungle loft", true},
		{"sunroom", "Luxury Sunroom", "luxury sunroom", true},
		{"unknown", "Presidential Suite", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := occupancy.ProfileForRoomName(tt.room)
			assert.Equal(t, tt.matched, ok)
			if tt.matched {
				assert.Equal(t, tt.want, p.Name)
			}
		})
	}
}

func offerNamed(name string, maxAdults, maxChildren int) *domain.RoomOffer {
	return &domain.RoomOffer{
		RoomRateID:        "RR1",
		Name:              name,
		MaxAdultOccupancy: maxAdults,
		MaxChildOccupancy: maxChildren,
	}
}

func TestIsOccupancyValid_SingleRoom(t *testing.T) {
	tests := []struct {
		name     string
		offer    *domain.RoomOffer
		adults   int
		children int
		want     bool
	}{
		{"couple in glass cottage", offerNamed("Glass Cottage", 2, 1), 2, 0, true},
		{"cottage over adults", offerNamed("Glass Cottage", 2, 1), 3, 0, false},
		{"bathtub full house disallowed", offerNamed("Forest Bathtub", 3, 2), 3, 2, false},
		{"bathtub three adults one child", offerNamed("Forest Bathtub", 3, 2), 3, 1, true},
		{"sunroom full house disallowed", offerNamed("Luxury Sunroom", 3, 2), 3, 2, false},
		{"loft disallowed combo", offerNamed("Jungle Loft", 3, 1), 3, 1, false},
		{"loft two adults one child", offerNamed("Jungle Loft", 3, 1), 2, 1, true},
		// Незнакомое имя — действуют только лимиты самого предложения
		{"unknown name uses offer maxima", offerNamed("Presidential Suite", 4, 2), 4, 2, true},
		{"unknown name over maxima", offerNamed("Presidential Suite", 4, 2), 5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, occupancy.IsOccupancyValid(tt.offer, tt.adults, tt.children, 1))
		})
	}
}

func TestIsOccupancyValid_MultiRoom(t *testing.T) {
	bathtub := offerNamed("Forest Bathtub", 3, 2)

	// Запрещенная для одного номера комбинация распределяется по двум
	assert.True(t, occupancy.IsOccupancyValid(bathtub, 3, 2, 2))
	assert.True(t, occupancy.IsOccupancyValid(bathtub, 6, 2, 2))
	// Суммарные лимиты все еще действуют
	assert.False(t, occupancy.IsOccupancyValid(bathtub, 7, 0, 2))
	assert.False(t, occupancy.IsOccupancyValid(bathtub, 6, 4, 2))
}

func TestIsOccupancyValid_Degenerate(t *testing.T) {
	assert.False(t, occupancy.IsOccupancyValid(nil, 2, 0, 1))
	assert.False(t, occupancy.IsOccupancyValid(offerNamed("Glass Cottage", 2, 1), 2, 0, 0))
	assert.True(t, occupancy.IsOccupancyValid(offerNamed("Glass Cottage", 2, 1), -1, -1, 1))
}
