package devoteeservice

// Devotee profile returned by the devotee registration service
type Devotee struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	IsTempleAdmin bool   `json:"is_temple_admin"`
}

// ErrorResponse error payload from the devotee service
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
