package dto

import "github.com/google/uuid"

type SubmitApplicationRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	LicenseNumber   string  `json:"license_number"`
	Degree          string  `json:"degree"`
	Specialization  string  `json:"specialization"`
	YearsExperience int     `json:"years_experience"`
	Bio             string  `json:"bio"`
	Location        string  `json:"location"`
	State           string  `json:"state,omitempty"`
	District        string  `json:"district,omitempty"`
	Pincode         string  `json:"pincode,omitempty"`
	CourtWorkplace  string  `json:"court_workplace,omitempty"`
	DocumentPath    string  `json:"document_path,omitempty"`
	PhotoPath       string  `json:"photo_path,omitempty"`
	ConsultationFee float64 `json:"consultation_fee,omitempty"`
	CaseFeeRange    string  `json:"case_fee_range,omitempty"`
}

type SubmitApplicationResponse struct {
	ApplicationID uuid.UUID `json:"application_id"`
	Status        string    `json:"status"`
	Fallback      bool      `json:"fallback,omitempty"`
}

type DecideApplicationRequest struct {
	Status      string `json:"status"`
	Reason      string `json:"reason,omitempty"`
	ProcessedBy string `json:"processed_by,omitempty"`
}

type DecisionResponse struct {
	ApplicationID uuid.UUID  `json:"application_id"`
	NewStatus     string     `json:"new_status"`
	LawyerID      *uuid.UUID `json:"lawyer_id,omitempty"`
}
