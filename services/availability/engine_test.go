package availability

import (
	"context"
	"errors"
	"testing"

	memoryRepo "doctorsportal/database/repository/memory"
	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, services []models.Service, bookings ...models.Booking) *Engine {
	t.Helper()
	store := memoryRepo.NewStore()
	store.SeedServices(services...)
	for i := range bookings {
		require.NoError(t, store.Bookings().Create(context.Background(), &bookings[i]))
	}
	return NewEngine(store.Services(), store.Bookings())
}

func TestAvailability_SubtractsBookedSlots(t *testing.T) {
	engine := newEngine(t,
		[]models.Service{{ID: "1", Name: "Cleaning", Slots: []string{"9am", "10am", "11am"}}},
		models.Booking{ID: "b1", Treatment: "Cleaning", Date: "2023-01-01", Slot: "10am", Email: "a@x.com"},
	)

	views, err := engine.Availability(context.Background(), "2023-01-01")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Cleaning", views[0].Name)
	assert.Equal(t, []string{"9am", "11am"}, views[0].Slots)
}

func TestAvailability_OnlyCountsSameDateAndTreatment(t *testing.T) {
	engine := newEngine(t,
		[]models.Service{
			{ID: "1", Name: "Cleaning", Slots: []string{"9am", "10am"}},
			{ID: "2", Name: "Surgery", Slots: []string{"9am", "10am"}},
		},
		models.Booking{ID: "b1", Treatment: "Cleaning", Date: "2023-01-02", Slot: "9am", Email: "a@x.com"},
		models.Booking{ID: "b2", Treatment: "Surgery", Date: "2023-01-01", Slot: "9am", Email: "a@x.com"},
		models.Booking{ID: "b3", Treatment: "Unknown", Date: "2023-01-01", Slot: "10am", Email: "a@x.com"},
	)

	views, err := engine.Availability(context.Background(), "2023-01-01")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, []string{"9am", "10am"}, views[0].Slots)
	assert.Equal(t, []string{"10am"}, views[1].Slots)
}

func TestAvailability_CatalogOrderAndFieldsPreserved(t *testing.T) {
	engine := newEngine(t, []models.Service{
		{ID: "2", Name: "B", Slots: []string{"x"}, Price: 20},
		{ID: "1", Name: "A", Slots: []string{"y"}, Price: 10},
	})

	views, err := engine.Availability(context.Background(), "2023-01-01")
	require.NoError(t, err)
	assert.Equal(t, []models.AvailabilityView{
		{ID: "2", Name: "B", Slots: []string{"x"}, Price: 20},
		{ID: "1", Name: "A", Slots: []string{"y"}, Price: 10},
	}, views)
}

func TestAvailability_DoubleBookedSlotRemovedOnce(t *testing.T) {
	engine := newEngine(t,
		[]models.Service{{ID: "1", Name: "Cleaning", Slots: []string{"9am", "10am"}}},
		models.Booking{ID: "b1", Treatment: "Cleaning", Date: "d", Slot: "10am", Email: "a@x.com"},
		models.Booking{ID: "b2", Treatment: "Cleaning", Date: "d", Slot: "10am", Email: "b@x.com"},
	)

	views, err := engine.Availability(context.Background(), "d")
	require.NoError(t, err)
	assert.Equal(t, []string{"9am"}, views[0].Slots)
}

func TestAvailability_FullyBookedServiceHasEmptySlots(t *testing.T) {
	engine := newEngine(t,
		[]models.Service{{ID: "1", Name: "Cleaning", Slots: []string{"9am"}}},
		models.Booking{ID: "b1", Treatment: "Cleaning", Date: "d", Slot: "9am", Email: "a@x.com"},
	)

	views, err := engine.Availability(context.Background(), "d")
	require.NoError(t, err)
	assert.NotNil(t, views[0].Slots)
	assert.Empty(t, views[0].Slots)
}

func TestAvailability_RequiresDate(t *testing.T) {
	engine := newEngine(t, nil)

	_, err := engine.Availability(context.Background(), " ")
	var verr *models.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestRemaining_PreservesOrderAndMembership(t *testing.T) {
	slots := []string{"a", "b", "c", "d", "e", "b"}
	booked := map[string]struct{}{"b": {}, "d": {}, "z": {}}

	got := Remaining(slots, booked)
	assert.Equal(t, []string{"a", "c", "e"}, got)

	for _, s := range got {
		assert.Contains(t, slots, s)
		assert.NotContains(t, booked, s)
	}
	for _, s := range slots {
		if _, taken := booked[s]; !taken {
			assert.Contains(t, got, s)
		}
	}
}
