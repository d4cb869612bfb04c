// Package datasource is the read façade the storefront pages go through. All
// reads are total: failures to reach the API degrade to injected defaults or
// the fallback dataset, never to an error for the visitor.
package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lucianobritez019-dotcom/autos-clasicos/internal/models"
)

const waBase = "https://wa.me/"

// Defaults are the per-field substitutes for a missing or partial settings
// row.
type Defaults struct {
	HeroImageURL   string
	WhatsappNumber string
	SiteTitle      string
	LogoURL        string
}

type Datasource struct {
	baseURL  string
	client   *http.Client
	defaults Defaults
	fallback []models.Vehicle
}

// New builds a façade reading from the JSON API at baseURL. The fallback
// vehicle seed is injected rather than reached for implicitly, so tests and
// alternate deployments can swap it.
func New(baseURL string, defaults Defaults, fallback []models.Vehicle) *Datasource {
	return &Datasource{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: 10 * time.Second},
		defaults: defaults,
		fallback: fallback,
	}
}

func (d *Datasource) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d for %s", res.StatusCode, path)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// GetSettings never fails: each missing or empty field is defaulted
// independently, so a partially filled row still renders sensibly.
func (d *Datasource) GetSettings(ctx context.Context) models.Settings {
	var s models.Settings
	if err := d.get(ctx, "/api/settings", &s); err != nil {
		return models.Settings{
			HeroImageURL:   d.defaults.HeroImageURL,
			WhatsappNumber: d.defaults.WhatsappNumber,
			SiteTitle:      d.defaults.SiteTitle,
			LogoURL:        d.defaults.LogoURL,
		}
	}
	if s.HeroImageURL == "" {
		s.HeroImageURL = d.defaults.HeroImageURL
	}
	if s.WhatsappNumber == "" {
		s.WhatsappNumber = d.defaults.WhatsappNumber
	}
	if s.SiteTitle == "" {
		s.SiteTitle = d.defaults.SiteTitle
	}
	if s.LogoURL == "" {
		s.LogoURL = d.defaults.LogoURL
	}
	return s
}

// GetVehicles never fails: an unreachable API or an empty catalog yields the
// fallback dataset.
func (d *Datasource) GetVehicles(ctx context.Context) []models.Vehicle {
	var list []models.Vehicle
	if err := d.get(ctx, "/api/vehicles", &list); err != nil || len(list) == 0 {
		return append([]models.Vehicle(nil), d.fallback...)
	}
	return list
}

// GetVehicleBySlug returns the vehicle with the given slug, or false when no
// such vehicle exists.
func (d *Datasource) GetVehicleBySlug(ctx context.Context, slug string) (models.Vehicle, bool) {
	for _, v := range d.GetVehicles(ctx) {
		if v.Slug == slug {
			return v, true
		}
	}
	return models.Vehicle{}, false
}

// GetWhatsAppNumber returns the configured number trimmed, falling back to
// the placeholder default.
func (d *Datasource) GetWhatsAppNumber(ctx context.Context) string {
	s := d.GetSettings(ctx)
	if num := strings.TrimSpace(s.WhatsappNumber); num != "" {
		return num
	}
	return strings.TrimSpace(d.defaults.WhatsappNumber)
}

func (d *Datasource) HasWhatsAppNumber(ctx context.Context) bool {
	return d.GetWhatsAppNumber(ctx) != ""
}

// BuildWhatsAppLink composes the contact deep link for a vehicle. With no
// number configured the link is the inert "#".
func (d *Datasource) BuildWhatsAppLink(ctx context.Context, v models.Vehicle) string {
	msg := fmt.Sprintf("Hola, estoy interesado en el %s %s %d (%s). ¿Sigue disponible?",
		v.Brand, v.Model, v.Year, models.FormatPriceUSD(v.PriceUSD))
	return d.BuildWhatsAppLinkText(ctx, msg)
}

// BuildWhatsAppLinkText composes a deep link for a free-form message.
func (d *Datasource) BuildWhatsAppLinkText(ctx context.Context, message string) string {
	num := d.GetWhatsAppNumber(ctx)
	if num == "" {
		return "#"
	}
	return waBase + num + "?text=" + url.QueryEscape(message)
}
