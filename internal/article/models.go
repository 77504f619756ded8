package article

import "time"

// Article is a generated post as returned by the backend.
type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Details   string    `json:"details"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// GenerationRequest is one entry of a bulk generation call.
type GenerationRequest struct {
	Title   string `json:"title" validate:"required,max=300"`
	Details string `json:"details" validate:"max=2000"`
}

// Find returns the article with the given id, or nil.
func Find(articles []Article, id string) *Article {
	for i := range articles {
		if articles[i].ID == id {
			a := articles[i]
			return &a
		}
	}
	return nil
}
