package handlers

import (
	"net/http"
	"strings"

	"tropicab/models"

	"github.com/gin-gonic/gin"
)

// ListVehiclesHandler returns the active vehicle types with delivery URLs
// for their images.
func (hb *HandlerBundle) ListVehiclesHandler(c *gin.Context) {
	type vehicleView struct {
		models.VehicleType
		ImageURL string `json:"imageUrl,omitempty"`
	}

	var out []vehicleView
	for _, v := range hb.Catalog.Vehicles() {
		if !v.Active {
			continue
		}
		view := vehicleView{VehicleType: v}
		if hb.Storage != nil && v.ImagePublicID != "" {
			if url, err := hb.Storage.DeliveryURL(v.ImagePublicID); err == nil {
				view.ImageURL = url
			}
		}
		out = append(out, view)
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": out})
}

// ListHotelsHandler returns active hotels, optionally filtered by a search
// query against names and search terms. Used by the widget's autocomplete.
func (hb *HandlerBundle) ListHotelsHandler(c *gin.Context) {
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))

	var out []models.Hotel
	for _, h := range hb.Catalog.Hotels() {
		if !h.Active {
			continue
		}
		if q == "" || hotelMatchesQuery(h, q) {
			out = append(out, h)
		}
	}
	c.JSON(http.StatusOK, gin.H{"hotels": out})
}

func hotelMatchesQuery(h models.Hotel, q string) bool {
	if strings.Contains(strings.ToLower(h.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(h.Brand), q) {
		return true
	}
	for _, term := range h.SearchTerms {
		if strings.Contains(strings.ToLower(term), q) {
			return true
		}
	}
	return false
}
