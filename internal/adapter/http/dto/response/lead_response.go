package response

import (
	"time"

	"autocover/internal/domain/entities"
)

type VehicleResponse struct {
	Make     string `json:"make,omitempty"`
	Model    string `json:"model,omitempty"`
	Year     int    `json:"year,omitempty"`
	Odometer int64  `json:"odometer"`
	VIN      string `json:"vin,omitempty"`
}

type NoteResponse struct {
	Text      string    `json:"text"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type LeadResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Stage     string          `json:"stage"`
	Vehicle   VehicleResponse `json:"vehicle"`
	Notes     []NoteResponse  `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func FromLead(l entities.Lead) LeadResponse {
	resp := LeadResponse{
		ID:    l.ID,
		Name:  l.Name,
		Email: l.Email,
		Phone: l.Phone,
		Stage: string(l.Stage),
		Vehicle: VehicleResponse{
			Make:     l.Vehicle.Make,
			Model:    l.Vehicle.Model,
			Year:     l.Vehicle.Year,
			Odometer: l.Vehicle.Odometer,
			VIN:      l.Vehicle.VIN,
		},
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
	for _, n := range l.Notes {
		resp.Notes = append(resp.Notes, NoteResponse{Text: n.Text, Author: n.Author, CreatedAt: n.CreatedAt})
	}
	return resp
}
