package models

// Specialization is a medical specialization as served by the specialization backend.
type Specialization struct {
	SpecializationID string `json:"specializationId"`
	Specialization   string `json:"specialization"`
}

// Hospital is a hospital entry as served by the hospital backend.
type Hospital struct {
	HospitalID   string `json:"hospitalId"`
	HospitalName string `json:"hospitalName"`
}

// News is an announcement published through the news backend.
type News struct {
	NewsID   string `json:"newsId,omitempty"`
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	ImageURL string `json:"imageUrl" binding:"required"`
}
