package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewApartmentKey(t *testing.T) {
	key := NewApartmentKey("335", "601", "2", "1", "2")
	require.Equal(t, ApartmentKey("335-601-2-1-2"), key)
}

func TestVariantLabel(t *testing.T) {
	require.Equal(t, "Hortensiaparken - Lejlighed - 2v", VariantLabel("Hortensiaparken", "Lejlighed", "2"))
}

func TestApartmentsLastWriteWinsKeepsSlot(t *testing.T) {
	apts := NewApartments()
	apts.Set("a", ApartmentRecord{Position: 1, VariantString: "A"})
	apts.Set("b", ApartmentRecord{Position: 2, VariantString: "B"})
	apts.Set("a", ApartmentRecord{Position: 9, VariantString: "A2"})

	require.Equal(t, 2, apts.Len())
	require.Equal(t, []ApartmentKey{"a", "b"}, apts.Keys())

	rec, ok := apts.Get("a")
	require.True(t, ok)
	require.Equal(t, ApartmentRecord{Position: 9, VariantString: "A2"}, rec)

	_, ok = apts.Get("missing")
	require.False(t, ok)
}

func TestApartmentsNilSafe(t *testing.T) {
	var apts *Apartments
	require.Equal(t, 0, apts.Len())
	require.Nil(t, apts.Keys())
	require.Nil(t, apts.Entries())

	var zero Apartments
	zero.Set("x", ApartmentRecord{Position: 3})
	require.Equal(t, 1, zero.Len())
}

func TestApartmentsMarshalJSONOrdered(t *testing.T) {
	apts := NewApartments()
	apts.Set("2-1-1-1-3", ApartmentRecord{Position: 5, VariantString: "X - Lejlighed - 3v"})
	apts.Set("1-1-1-1-2", ApartmentRecord{Position: 7, VariantString: "Y - Lejlighed - 2v"})

	b, err := json.Marshal(apts)
	require.NoError(t, err)
	require.Equal(t,
		`{"2-1-1-1-3":{"position":5,"variant_string":"X - Lejlighed - 3v"},"1-1-1-1-2":{"position":7,"variant_string":"Y - Lejlighed - 2v"}}`,
		string(b))

	b, err = json.Marshal(NewApartments())
	require.NoError(t, err)
	require.Equal(t, `{}`, string(b))
}
