package dto

// CreateBookRequest содержит данные для регистрации книги.
type CreateBookRequest struct {
	Title           string  `json:"title" validate:"required"`
	Author          string  `json:"author" validate:"required"`
	Publisher       *string `json:"publisher"`
	PublicationYear *int    `json:"publicationYear"`
	ISBN            string  `json:"isbn" validate:"required"`
	Category        *string `json:"category"`
}

// AddCopyRequest содержит данные для добавления экземпляра книги.
type AddCopyRequest struct {
	Location string `json:"location" validate:"required"`
}
