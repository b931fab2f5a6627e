package model

// Article data model. Content may hold embedded line breaks; each line is
// shown as its own paragraph.
type Article struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Category Category `json:"category"`
	Author   string   `json:"author"`
	Date     Date     `json:"date"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	ImageURL string   `json:"imageUrl"`
	Featured bool     `json:"featured"`
}

// ArticlePatch holds the fields of an update. A nil field is left untouched.
type ArticlePatch struct {
	Title    *string
	Category *Category
	Author   *string
	Date     *Date
	Excerpt  *string
	Content  *string
	ImageURL *string
	Featured *bool
}

// Apply merges the present fields of p over a. The ID is never changed.
func (p ArticlePatch) Apply(a Article) Article {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.Author != nil {
		a.Author = *p.Author
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Excerpt != nil {
		a.Excerpt = *p.Excerpt
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.ImageURL != nil {
		a.ImageURL = *p.ImageURL
	}
	if p.Featured != nil {
		a.Featured = *p.Featured
	}

	return a
}
