package entities

// Поля сортировки результатов поиска.
const (
	SearchSortByTitle           = "title"
	SearchSortByAuthor          = "author"
	SearchSortByPublicationYear = "publicationYear"
)

// Порядок сортировки результатов поиска.
const (
	SearchSortOrderAsc  = "asc"
	SearchSortOrderDesc = "desc"
)

// SearchQuery - параметры поиска, передаваемые репозиторию. Необязательные
// поля - указатели: nil означает, что фильтр не задан и не должен
// участвовать в запросе.
type SearchQuery struct {
	Keyword             string
	SortBy              *string
	SortOrder           *string
	PublicationYearFrom *int
	PublicationYearTo   *int
	Category            *string
	AvailableOnly       *bool
}

// SearchResult - результат поиска книг.
type SearchResult struct {
	Books []*Book `json:"books"`
	Total int     `json:"total"`
}
