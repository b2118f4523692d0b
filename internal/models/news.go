// internal/models/news.go
package models

// News is a single dated news item.
type News struct {
	Day     string `json:"day"`
	Content string `json:"content"`
}
