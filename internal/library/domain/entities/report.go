package entities

import "time"

// DateRange - период отчета. Сервисы требуют StartDate <= EndDate,
// совпадение дат допустимо.
type DateRange struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// IsValid сообщает, корректен ли период.
func (r DateRange) IsValid() bool {
	return !r.StartDate.After(r.EndDate)
}

// StatisticsSummary - сводная статистика за период.
type StatisticsSummary struct {
	LoanCount    int       `json:"loanCount"`
	ReturnCount  int       `json:"returnCount"`
	OverdueCount int       `json:"overdueCount"`
	DateRange    DateRange `json:"dateRange"`
}

// PopularBookItem - позиция рейтинга популярных книг. Значение Rank
// приходит из репозитория и сервисом не пересчитывается.
type PopularBookItem struct {
	BookID    string `json:"bookId"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	LoanCount int    `json:"loanCount"`
	Rank      int    `json:"rank"`
}

// PopularBooksRanking - рейтинг популярных книг за период.
type PopularBooksRanking struct {
	Items     []PopularBookItem `json:"items"`
	DateRange DateRange         `json:"dateRange"`
}

// CategoryStatisticsItem - статистика выдач по одной категории.
type CategoryStatisticsItem struct {
	Category   string  `json:"category"`
	LoanCount  int     `json:"loanCount"`
	Percentage float64 `json:"percentage"`
}

// CategoryStatistics - статистика выдач по категориям.
// TotalLoanCount вычисляется сервисом как сумма LoanCount позиций.
type CategoryStatistics struct {
	Items          []CategoryStatisticsItem `json:"items"`
	TotalLoanCount int                      `json:"totalLoanCount"`
	DateRange      DateRange                `json:"dateRange"`
}

// OverdueRecord - запись о просроченной выдаче.
type OverdueRecord struct {
	LoanID      string    `json:"loanId"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	BookTitle   string    `json:"bookTitle"`
	DueDate     time.Time `json:"dueDate"`
	OverdueDays int       `json:"overdueDays"`
}
