package examples

import "time"

// ID tipe untuk Example
type ExampleID string

// Example is a canned requirement shown to users as a starting point
type Example struct {
	ID        ExampleID `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Defaults are the built-in examples, used to seed an empty catalog and
// as the in-memory fallback when no database is configured.
func Defaults() []*Example {
	return []*Example{
		{
			ID:    "ex-user-registration",
			Title: "User registration",
			Text:  "Create a user registration system with email verification",
		},
		{
			ID:    "ex-ecommerce",
			Title: "E-commerce platform",
			Text:  "Build an e-commerce platform with product catalog and payment processing",
		},
		{
			ID:    "ex-task-management",
			Title: "Task management",
			Text:  "Develop a task management system with notifications and reporting",
		},
		{
			ID:    "ex-blog",
			Title: "Blog platform",
			Text:  "Create a blog platform with user authentication and comment system",
		},
	}
}
