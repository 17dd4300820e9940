package dto

// SearchRequest содержит параметры поиска по каталогу. Передается
// query-параметрами; отсутствующий параметр означает отсутствие фильтра.
type SearchRequest struct {
	Keyword             string  `query:"keyword" validate:"required"`
	SortBy              *string `query:"sortBy"`
	SortOrder           *string `query:"sortOrder"`
	PublicationYearFrom *int    `query:"publicationYearFrom"`
	PublicationYearTo   *int    `query:"publicationYearTo"`
	Category            *string `query:"category"`
	AvailableOnly       *bool   `query:"availableOnly"`
}
