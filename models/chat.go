package models

import "time"

// ChatRequest is the payload coming from the widget into /api/chat.
type ChatRequest struct {
	SessionID string `json:"sessionId"`
	Text      string `json:"text" binding:"required"`
}

// AgentResponse is what one conversation turn returns to the widget.
type AgentResponse struct {
	Message        string            `json:"message"`
	Suggestions    []string          `json:"suggestions,omitempty"`
	BookingAction  *BookingAction    `json:"bookingAction,omitempty"`
	PriceScan      *PriceScanRequest `json:"priceScanRequest,omitempty"`
	VehicleImage   string            `json:"vehicleImage,omitempty"`
	GalleryImages  []string          `json:"galleryImages,omitempty"`
	LanguageSwitch string            `json:"languageSwitch,omitempty"` // e.g. "es", "en"
}

// PriceScanRequest carries all priced vehicle options for the resolved route,
// sorted ascending by one-way price. The widget renders these as cards and
// re-enters the flow through /api/chat/price-scan once the user picks one.
type PriceScanRequest struct {
	Airport    string          `json:"airport"`
	Hotel      string          `json:"hotel"`
	Region     string          `json:"region"`
	Passengers int             `json:"passengers"`
	Suitcases  int             `json:"suitcases"`
	Options    []VehicleOption `json:"options"`
}

// PriceScanSelection is the widget's re-entry payload after a UI-driven
// vehicle pick.
type PriceScanSelection struct {
	SessionID  string `json:"sessionId" binding:"required"`
	Airport    string `json:"airport"`
	Hotel      string `json:"hotel"`
	Region     string `json:"region"`
	Passengers int    `json:"passengers"`
	Suitcases  int    `json:"suitcases"`
	Vehicle    string `json:"vehicle"`
}

// BookingAction is the terminal payload emitted once all slots are filled and
// the user confirms. Immutable once produced; the booking endpoint owns
// everything after this point.
type BookingAction struct {
	Airport         string   `json:"airport"`
	Hotel           string   `json:"hotel"`
	Region          string   `json:"region"`
	Vehicle         string   `json:"vehicle"`
	Passengers      int      `json:"passengers"`
	Suitcases       int      `json:"suitcases"`
	TripType        string   `json:"tripType"`
	TravelDate      string   `json:"travelDate,omitempty"`
	Price           float64  `json:"price"`
	Currency        string   `json:"currency"`
	PriceSource     string   `json:"priceSource"`
	PaymentProvider string   `json:"paymentProvider"`
	PaymentMethods  []string `json:"paymentMethods"`
}

// ChatMessage is one persisted transcript entry.
type ChatMessage struct {
	ID        string    `bson:"id" json:"id"`
	SessionID string    `bson:"session_id" json:"sessionId"`
	Role      string    `bson:"role" json:"role"` // "user" or "agent"
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
