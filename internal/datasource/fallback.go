package datasource

import "github.com/lucianobritez019-dotcom/autos-clasicos/internal/models"

// FallbackVehicles returns the seed dataset shown whenever the API is
// unreachable or empty, so the storefront always has something to render.
// Callers get a fresh slice; the seed itself is never mutated.
func FallbackVehicles() []models.Vehicle {
	return []models.Vehicle{
		{
			Slug:     "porsche-911-1978",
			Brand:    "Porsche",
			Model:    "911",
			Year:     1978,
			PriceUSD: 125000,
			Thumbnail: "https://images.unsplash.com/photo-1595784777383-7e427035a15d" +
				"?auto=format&fit=crop&q=80&w=1600",
			Images: models.StringList{
				"https://images.unsplash.com/photo-1595784777383-7e427035a15d?auto=format&fit=crop&q=80&w=2000",
				"https://images.unsplash.com/photo-1553032674-e1cd6fb0fe18?auto=format&fit=crop&q=80&w=2000",
				"https://images.unsplash.com/photo-1690306657598-4892ed679499?auto=format&fit=crop&q=80&w=2000",
			},
			Videos:      models.StringList{},
			Description: "Porsche 911 clásico en excelente estado. Motor y caja originales, interior en cuero, mantenimientos al día.",
			Sold:        false,
		},
		{
			Slug:     "ford-mustang-1967",
			Brand:    "Ford",
			Model:    "Mustang Fastback",
			Year:     1967,
			PriceUSD: 98000,
			Thumbnail: "https://images.unsplash.com/photo-1591293836027-e05b48473b67" +
				"?auto=format&fit=crop&q=80&w=1600",
			Images: models.StringList{
				"https://images.unsplash.com/photo-1591293836027-e05b48473b67?auto=format&fit=crop&q=80&w=2000",
				"https://images.unsplash.com/photo-1604940500627-d3f44d1d21c6?auto=format&fit=crop&q=80&w=2000",
				"https://images.unsplash.com/photo-1442188950719-e8a67aea613a?auto=format&fit=crop&q=80&w=2000",
			},
			Videos:      models.StringList{},
			Description: "Mustang Fastback del 67 restaurado con detalles de época. Pintura impecable y sonido clásico.",
			Sold:        false,
		},
		{
			Slug:     "mercedes-300sl-1956",
			Brand:    "Mercedes-Benz",
			Model:    "300SL Gullwing",
			Year:     1956,
			PriceUSD: 1350000,
			Thumbnail: "https://images.unsplash.com/photo-1670420210528-f2430bfb441a" +
				"?auto=format&fit=crop&q=80&w=1600",
			Images: models.StringList{
				"https://images.unsplash.com/photo-1670420210528-f2430bfb441a?auto=format&fit=crop&q=80&w=2000",
				"https://images.unsplash.com/photo-1685856518933-2c6ac723541a?auto=format&fit=crop&q=80&w=2000",
			},
			Videos:      models.StringList{},
			Description: "Ejemplar icónico con puertas tipo gaviota. Unidad de colección, historial documentado.",
			Sold:        true,
		},
		{
			Slug:     "chevrolet-camaro-1969",
			Brand:    "Chevrolet",
			Model:    "Camaro",
			Year:     1969,
			PriceUSD: 78000,
			Thumbnail: "https://images.unsplash.com/photo-1453856908826-6bbeda0f8490" +
				"?auto=format&fit=crop&q=80&w=1600",
			Images: models.StringList{
				"https://images.unsplash.com/photo-1453856908826-6bbeda0f8490?auto=format&fit=crop&q=80&w=2000",
				"https://images.unsplash.com/photo-1604940500627-d3f44d1d21c6?auto=format&fit=crop&q=80&w=2000",
			},
			Videos:      models.StringList{},
			Description: "Camaro del 69 con estética muscle car. Motor V8, marcha fuerte y estética cuidada.",
			Sold:        true,
		},
	}
}
