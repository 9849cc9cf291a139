package dto

// StatsResponse represents the aggregate counters shown on the landing page
type StatsResponse struct {
	TotalMembers       int `json:"totalMembers"`
	TotalWorks         int `json:"totalWorks"`
	TotalBeneficiaries int `json:"totalBeneficiaries"`
	VolunteerHours     int `json:"volunteerHours"`
}
