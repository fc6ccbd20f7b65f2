package models

import "strings"

// ProductQuery is decoded from the /products query string. Sort and Direction
// are matched case-insensitively and default to name/asc.
type ProductQuery struct {
	Contains  string `schema:"contains"`
	Sort      string `schema:"sort" default:"name" binding:"sortkey"`
	Direction string `schema:"direction" default:"asc" binding:"direction"`
}

func (q *ProductQuery) Normalize() {
	q.Contains = strings.ToLower(strings.TrimSpace(q.Contains))
	q.Sort = strings.ToLower(strings.TrimSpace(q.Sort))
	q.Direction = strings.ToLower(strings.TrimSpace(q.Direction))
}

// Tokens splits the dash-joined filter into its non-empty parts.
func (q ProductQuery) Tokens() []string {
	tokens := []string{}
	for _, t := range strings.Split(q.Contains, "-") {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

type CustomDescriptionRequest struct {
	Product string `json:"product" form:"product" binding:"required"`
	Flavor  string `json:"flavor" form:"flavor" binding:"required"`
	Box     string `json:"box" form:"box" binding:"required"`
}

type ContactRequest struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required,contains=@"`
	Message string `json:"message" form:"message" binding:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
