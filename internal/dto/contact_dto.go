package dto

type ContactRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject,omitempty"`
	LegalArea string `json:"legal_area,omitempty"`
	Urgency   string `json:"urgency,omitempty"`
}

type UpdateContactStatusRequest struct {
	Status string `json:"status"`
}

type AdminStatsResponse struct {
	Lawyers             int64 `json:"lawyers"`
	PendingApplications int64 `json:"pending_applications"`
	NewMessages         int64 `json:"new_messages"`
	Users               int64 `json:"users"`
	Ratings             int64 `json:"ratings"`
}
