package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupLink(t *testing.T) {
	t.Run("KnownPair", func(t *testing.T) {
		link, status := LookupLink("moscow", "alcohol")
		assert.Equal(t, LinkFound, status)
		assert.Equal(t, "https://ruscatalog.org/moskva/5849009-anonimnye-alkogoliki-gruppa-moskovskie-nachinajushhie/?utm_source=chatgpt.com", link)
	})

	t.Run("PendingDependency", func(t *testing.T) {
		link, status := LookupLink("moscow", PendingDependency)
		assert.Equal(t, LinkComingLater, status)
		assert.Empty(t, link)
	})

	t.Run("UnknownCity", func(t *testing.T) {
		link, status := LookupLink("atlantis", "alcohol")
		assert.Equal(t, LinkUnavailable, status)
		assert.Empty(t, link)
	})

	// Для каждой пары город/зависимость исход ровно один из трёх,
	// и LinkComingLater встречается только у PendingDependency.
	t.Run("ExhaustiveOutcomes", func(t *testing.T) {
		var cities []string
		for _, entries := range CitiesByTimezone {
			for _, e := range entries {
				cities = append(cities, e.Key)
			}
		}
		require.NotEmpty(t, cities)

		for _, city := range cities {
			for _, dep := range Dependencies {
				link, status := LookupLink(city, dep.Key)
				switch status {
				case LinkFound:
					assert.NotEmpty(t, link, "city=%s dep=%s", city, dep.Key)
					assert.NotEqual(t, PendingDependency, dep.Key)
				case LinkComingLater:
					assert.Equal(t, PendingDependency, dep.Key, "city=%s", city)
					assert.Empty(t, link)
				case LinkUnavailable:
					assert.Empty(t, link)
					assert.NotEqual(t, PendingDependency, dep.Key)
				default:
					t.Fatalf("unexpected status %v for city=%s dep=%s", status, city, dep.Key)
				}
			}
		}
	})

	// Все города из справочника имеют таблицу ссылок.
	t.Run("EveryCityHasLinks", func(t *testing.T) {
		for _, entries := range CitiesByTimezone {
			for _, e := range entries {
				_, ok := groupLinks[e.Key]
				assert.True(t, ok, "no link table for city %s", e.Key)
			}
		}
	})
}
