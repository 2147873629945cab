package models

type ContactMessage struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Replied   bool   `json:"replied"`
	CreatedAt string `json:"createdAt"`
}
