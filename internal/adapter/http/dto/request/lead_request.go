package request

import (
	"strings"

	"autocover/internal/domain/entities"
)

type VehicleRequest struct {
	Make     string `json:"make"`
	Model    string `json:"model"`
	Year     int    `json:"year"`
	Odometer int64  `json:"odometer"`
	VIN      string `json:"vin"`
}

// CreateLeadRequest is the intake payload posted by the lead capture form.
type CreateLeadRequest struct {
	Name    string         `json:"name" binding:"required"`
	Email   string         `json:"email"`
	Phone   string         `json:"phone"`
	Vehicle VehicleRequest `json:"vehicle"`
}

func (r CreateLeadRequest) ResolveVehicle() entities.Vehicle {
	return entities.Vehicle{
		Make:     strings.TrimSpace(r.Vehicle.Make),
		Model:    strings.TrimSpace(r.Vehicle.Model),
		Year:     r.Vehicle.Year,
		Odometer: r.Vehicle.Odometer,
		VIN:      strings.TrimSpace(r.Vehicle.VIN),
	}
}

type UpdateLeadStageRequest struct {
	Stage string `json:"stage" binding:"required"`
}

func (r UpdateLeadStageRequest) ResolveStage() entities.LeadStage {
	return entities.LeadStage(strings.TrimSpace(strings.ToLower(r.Stage)))
}

type AddLeadNoteRequest struct {
	Text   string `json:"text" binding:"required"`
	Author string `json:"author"`
}
