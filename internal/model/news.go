package model

// News is one news item. At most one item may have Featured set; the news
// handler clears the flag on every other item before setting it.
type News struct {
	ID        string  `json:"id" bson:"id"`
	Title     string  `json:"title" bson:"title"`
	Content   string  `json:"content" bson:"content"`
	Author    string  `json:"author" bson:"author"`
	Category  string  `json:"category" bson:"category"`
	Image     *string `json:"image" bson:"image"`
	Featured  bool    `json:"featured" bson:"featured"`
	CreatedAt string  `json:"createdAt" bson:"createdAt"`
	UpdatedAt string  `json:"updatedAt" bson:"updatedAt"`
}
