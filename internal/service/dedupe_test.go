package service

import (
	"testing"

	"sensitive-places-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		raw      []models.RawPlace
		expected []models.RawPlace
	}{
		{
			name:     "empty input",
			raw:      nil,
			expected: []models.RawPlace{},
		},
		{
			name: "same id different names keeps first",
			raw: []models.RawPlace{
				place("p1", "Liceo Tasso", at(41.91, 12.49), "school"),
				place("p1", "Liceo T. Tasso", at(41.92, 12.48), "school"),
			},
			expected: []models.RawPlace{
				place("p1", "Liceo Tasso", at(41.91, 12.49), "school"),
			},
		},
		{
			name: "different ids same coordinates keeps first",
			raw: []models.RawPlace{
				place("p1", "Ospedale", at(41.9, 12.5), "hospital"),
				place("p2", "Pronto Soccorso", at(41.9, 12.5), "doctor"),
			},
			expected: []models.RawPlace{
				place("p1", "Ospedale", at(41.9, 12.5), "hospital"),
			},
		},
		{
			name: "no id collapses by coordinates",
			raw: []models.RawPlace{
				place("", "A", at(41.9, 12.5)),
				place("", "B", at(41.9, 12.5)),
				place("", "C", at(41.8, 12.5)),
			},
			expected: []models.RawPlace{
				place("", "A", at(41.9, 12.5)),
				place("", "C", at(41.8, 12.5)),
			},
		},
		{
			name: "drops entries without coordinates and name",
			raw: []models.RawPlace{
				place("p1", "", nil, "school"),
				place("p2", "Named only", nil),
				place("p3", "", at(41.9, 12.5)),
			},
			expected: []models.RawPlace{
				place("p2", "Named only", nil),
				place("p3", "", at(41.9, 12.5)),
			},
		},
		{
			name: "order preserved",
			raw: []models.RawPlace{
				place("c", "C", at(3, 3)),
				place("a", "A", at(1, 1)),
				place("b", "B", at(2, 2)),
				place("a", "A again", at(4, 4)),
			},
			expected: []models.RawPlace{
				place("c", "C", at(3, 3)),
				place("a", "A", at(1, 1)),
				place("b", "B", at(2, 2)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dedupe(tt.raw)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDedupe_Idempotent(t *testing.T) {
	raw := []models.RawPlace{
		place("p1", "A", at(41.9, 12.5), "school"),
		place("p1", "A2", at(41.8, 12.4), "school"),
		place("p2", "B", at(41.9, 12.5), "church"),
		place("", "C", at(41.7, 12.3)),
		place("", "", nil),
		place("p3", "D", nil),
		place("p4", "E", at(41.7, 12.3)),
	}
	once := Dedupe(raw)
	assert.Equal(t, once, Dedupe(once))
	assert.Len(t, once, 3)
}
