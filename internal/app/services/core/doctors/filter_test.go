package doctors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterCity(t *testing.T) {
	t.Run("Hyderabad returns only Hyderabad doctors", func(t *testing.T) {
		result := Filter(EmbeddedDoctors, Criteria{City: "Hyderabad"})
		require.NotEmpty(t, result)
		for _, doc := range result {
			assert.Contains(t, doc.Location, "Hyderabad")
		}
	})

	t.Run("City match is case-insensitive", func(t *testing.T) {
		lower := Filter(EmbeddedDoctors, Criteria{City: "hyderabad"})
		upper := Filter(EmbeddedDoctors, Criteria{City: "HYDERABAD"})
		assert.Equal(t, lower, upper)
	})

	t.Run("Bengaluru is an alias for Bangalore", func(t *testing.T) {
		bengaluru := Filter(EmbeddedDoctors, Criteria{City: "Bengaluru"})
		bangalore := Filter(EmbeddedDoctors, Criteria{City: "Bangalore"})
		assert.Equal(t, bangalore, bengaluru)
		assert.NotEmpty(t, bengaluru)
	})

	t.Run("Unknown city matches nothing", func(t *testing.T) {
		assert.Empty(t, Filter(EmbeddedDoctors, Criteria{City: "Pune"}))
	})
}

func TestFilterSpecialty(t *testing.T) {
	t.Run("Dentist does not match Dermatologist", func(t *testing.T) {
		result := Filter(EmbeddedDoctors, Criteria{Specialty: "Dentist"})
		require.NotEmpty(t, result)
		for _, doc := range result {
			assert.Equal(t, "Dentist", doc.Specialty)
		}
	})

	t.Run("Exact match is case-insensitive", func(t *testing.T) {
		result := Filter(EmbeddedDoctors, Criteria{Specialty: "dentist"})
		assert.Equal(t, Filter(EmbeddedDoctors, Criteria{Specialty: "Dentist"}), result)
	})

	t.Run("Hyderabad Dentist is exactly doctor 1", func(t *testing.T) {
		result := Filter(EmbeddedDoctors, Criteria{City: "Hyderabad", Specialty: "Dentist"})
		require.Len(t, result, 1)
		assert.Equal(t, "1", result[0].ID)
		assert.Equal(t, "Dr. Anjali Desai", result[0].Name)
	})
}

func TestFilterTerm(t *testing.T) {
	t.Run("Area matches location substring", func(t *testing.T) {
		result := Filter(EmbeddedDoctors, Criteria{Area: "Jubilee"})
		require.Len(t, result, 1)
		assert.Equal(t, "1", result[0].ID)
	})

	t.Run("Query matches clinic substring", func(t *testing.T) {
		result := Filter(EmbeddedDoctors, Criteria{Query: "Apollo"})
		require.NotEmpty(t, result)
		for _, doc := range result {
			assert.Contains(t, doc.Clinic, "Apollo")
		}
	})

	t.Run("Query wins over area when both set", func(t *testing.T) {
		result := Filter(EmbeddedDoctors, Criteria{Area: "Jubilee", Query: "Koramangala"})
		require.Len(t, result, 1)
		assert.Equal(t, "7", result[0].ID)
	})

	t.Run("Query matches doctor name", func(t *testing.T) {
		result := Filter(EmbeddedDoctors, Criteria{Query: "Siddalinga"})
		require.Len(t, result, 1)
		assert.Equal(t, "5", result[0].ID)
	})
}

func TestFilterOrderAndStability(t *testing.T) {
	t.Run("Empty criteria returns everything in order", func(t *testing.T) {
		result := Filter(EmbeddedDoctors, Criteria{})
		require.Len(t, result, len(EmbeddedDoctors))
		for i := range result {
			assert.Equal(t, EmbeddedDoctors[i].ID, result[i].ID)
		}
	})

	t.Run("Result is a subsequence of the input", func(t *testing.T) {
		result := Filter(EmbeddedDoctors, Criteria{City: "Bangalore"})
		lastIndex := -1
		for _, doc := range result {
			found := -1
			for i, src := range EmbeddedDoctors {
				if src.ID == doc.ID {
					found = i
					break
				}
			}
			require.Greater(t, found, lastIndex)
			lastIndex = found
		}
	})
}
