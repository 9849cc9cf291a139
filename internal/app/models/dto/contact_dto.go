package dto

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// ContactResponse acknowledges a contact submission with a tracking reference
type ContactResponse struct {
	Message   string `json:"message"`
	Reference string `json:"reference"`
}
