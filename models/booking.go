package models

import "time"

// Trip types as the agent records them.
const (
	TripOneWay    = "One-way"
	TripRoundTrip = "Round trip"
)

// Booking represents a confirmed transfer booking record.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	SessionID     string    `bson:"session_id,omitempty" json:"sessionId,omitempty"`
	Airport       string    `bson:"airport" json:"airport"`
	Hotel         string    `bson:"hotel" json:"hotel"`
	Region        string    `bson:"region" json:"region"`
	Vehicle       string    `bson:"vehicle" json:"vehicle"`
	Passengers    int       `bson:"passengers" json:"passengers"`
	Suitcases     int       `bson:"suitcases" json:"suitcases"`
	TripType      string    `bson:"trip_type" json:"tripType"`
	Price         float64   `bson:"price" json:"price"`
	Currency      string    `bson:"currency" json:"currency"`
	PriceSource   string    `bson:"price_source" json:"priceSource"`
	CustomerName  string    `bson:"customer_name" json:"customerName"`
	CustomerEmail string    `bson:"customer_email" json:"customerEmail"`
	CustomerPhone string    `bson:"customer_phone,omitempty" json:"customerPhone,omitempty"`
	FlightNumber  string    `bson:"flight_number,omitempty" json:"flightNumber,omitempty"`
	PickupAt      time.Time `bson:"pickup_at" json:"pickupAt"`
	PaymentMethod string    `bson:"payment_method" json:"paymentMethod"` // "card" or "cash"
	PaymentID     string    `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	Status        string    `bson:"status" json:"status"` // "pending", "confirmed", "completed", "cancelled"
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// BookingInput is the confirmation payload from the widget: the agent's
// terminal action plus traveler contact details.
type BookingInput struct {
	SessionID     string        `json:"sessionId"`
	Action        BookingAction `json:"bookingAction" binding:"required"`
	CustomerName  string        `json:"customerName" binding:"required"`
	CustomerEmail string        `json:"customerEmail" binding:"required"`
	CustomerPhone string        `json:"customerPhone"`
	FlightNumber  string        `json:"flightNumber"`
	PickupAt      time.Time     `json:"pickupAt" binding:"required"`
	PaymentMethod string        `json:"paymentMethod" binding:"required"`
}

// ReminderPayload is the asynq task payload for pickup reminders.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	PickupAt  string `json:"pickupAt"`
	Airport   string `json:"airport"`
	Hotel     string `json:"hotel"`
	Vehicle   string `json:"vehicle"`
}
