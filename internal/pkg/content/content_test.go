package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultStore(t *testing.T) {
	store, err := NewDefaultStore()
	require.NoError(t, err)

	dac, ok := store.Airport("DAC")
	require.True(t, ok)
	assert.Equal(t, "Hazrat Shahjalal International Airport", dac.Name)
	assert.Equal(t, "London Heathrow Airport", store.AirportName("LHR"))
	assert.Equal(t, "XXX", store.AirportName("XXX"))

	assert.NotEmpty(t, store.Destinations())
	assert.NotEmpty(t, store.Offers())

	for _, d := range store.Destinations() {
		_, ok := store.Airport(d.Code)
		assert.True(t, ok, "destination %s references unknown airport %s", d.ID, d.Code)
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	store, err := NewDefaultStore()
	require.NoError(t, err)

	airports := store.Airports()
	airports[0].Name = "changed"

	assert.NotEqual(t, "changed", store.Airports()[0].Name)
}

func TestNewStore_Errors(t *testing.T) {
	_, err := NewStore([]byte("{"))
	assert.Error(t, err)

	_, err = NewStore([]byte(`{"airports":[{"code":"DAC"},{"code":"DAC"}]}`))
	assert.Error(t, err)
}
