package dto

type UpdateLawyerRequest struct {
	Name            *string  `json:"name,omitempty"`
	Specialization  *string  `json:"specialization,omitempty"`
	YearsExperience *int     `json:"years_experience,omitempty"`
	Bio             *string  `json:"bio,omitempty"`
	Qualification   *string  `json:"qualification,omitempty"`
	Photo           *string  `json:"photo,omitempty"`
	Phone           *string  `json:"phone,omitempty"`
	Location        *string  `json:"location,omitempty"`
	State           *string  `json:"state,omitempty"`
	District        *string  `json:"district,omitempty"`
	Pincode         *string  `json:"pincode,omitempty"`
	CourtWorkplace  *string  `json:"court_workplace,omitempty"`
	ConsultationFee *float64 `json:"consultation_fee,omitempty"`
	CaseFeeRange    *string  `json:"case_fee_range,omitempty"`
}

type RateLawyerRequest struct {
	Rating int `json:"rating"`
}

type RateLawyerResponse struct {
	Success      bool    `json:"success"`
	NewRating    float64 `json:"new_rating"`
	TotalRatings int     `json:"total_ratings"`
}

type ClientMessageRequest struct {
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone,omitempty"`
	Message     string `json:"message"`
}
