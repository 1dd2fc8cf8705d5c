package photo

import "time"

// Photo — одне завантажене фото виробу: стиснуте зображення вбудоване
// прямо в запис як data-URL, щоб колекція жила в локальному сховищі.
type Photo struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"imageUrl"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
}
