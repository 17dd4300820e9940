package postgres

import (
	"libris/internal/library/ports/repositories"
)

// RepositoryFactory создает все репозитории библиотеки поверх одного пула.
type RepositoryFactory struct {
	bookRepo        repositories.BookRepository
	loanRepo        repositories.LoanRepository
	userRepo        repositories.UserRepository
	reservationRepo repositories.ReservationRepository
	reportRepo      *ReportRepository
	searchRepo      repositories.SearchRepository
	librarianRepo   repositories.LibrarianRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{
		bookRepo:        NewBookRepository(pool),
		loanRepo:        NewLoanRepository(pool),
		userRepo:        NewUserRepository(pool),
		reservationRepo: NewReservationRepository(pool),
		reportRepo:      NewReportRepository(pool),
		searchRepo:      NewSearchRepository(pool),
		librarianRepo:   NewLibrarianRepository(pool),
	}
}

// BookRepository возвращает репозиторий каталога.
func (f *RepositoryFactory) BookRepository() repositories.BookRepository {
	return f.bookRepo
}

// LoanRepository возвращает репозиторий выдач.
func (f *RepositoryFactory) LoanRepository() repositories.LoanRepository {
	return f.loanRepo
}

// UserRepository возвращает репозиторий читателей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// ReservationRepository возвращает репозиторий резервирований.
func (f *RepositoryFactory) ReservationRepository() repositories.ReservationRepository {
	return f.reservationRepo
}

// ReportRepository возвращает репозиторий отчетов.
func (f *RepositoryFactory) ReportRepository() repositories.ReportRepository {
	return f.reportRepo
}

// OverdueRecordRepository возвращает репозиторий записей о просрочках.
func (f *RepositoryFactory) OverdueRecordRepository() repositories.OverdueRecordRepository {
	return f.reportRepo
}

// SearchRepository возвращает репозиторий поиска.
func (f *RepositoryFactory) SearchRepository() repositories.SearchRepository {
	return f.searchRepo
}

// LibrarianRepository возвращает репозиторий сотрудников.
func (f *RepositoryFactory) LibrarianRepository() repositories.LibrarianRepository {
	return f.librarianRepo
}
