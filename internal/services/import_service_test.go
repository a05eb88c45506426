package services

import (
	"strings"
	"testing"

	"budget-tracker/internal/database"
	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"

	"github.com/stretchr/testify/suite"
)

type ImportServiceTestSuite struct {
	suite.Suite
	db      *database.DB
	repo    repositories.TransactionRepositoryInterface
	service ImportServiceInterface
}

func TestImportServiceSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}

func (s *ImportServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = repositories.NewTransactionRepository(s.db.DB)
	s.service = NewImportService(s.repo, nil)
}

func (s *ImportServiceTestSuite) storedCount() int {
	stored, err := s.repo.GetByFilter(models.TransactionFilter{})
	s.Require().NoError(err)
	return len(stored)
}

func (s *ImportServiceTestSuite) TestImportCSV_FrenchHeader() {
	csv := strings.Join([]string{
		"date,description,categorie,montant,type,notes",
		"2026-03-01,Salaire mars,Salaire,250000,Revenu,",
		"2026-03-05,Courses,Alimentation,45000,Dépense,marché",
	}, "\n")

	inserted, err := s.service.ImportCSV(strings.NewReader(csv))
	s.NoError(err)
	s.Equal(2, inserted)
	s.Equal(2, s.storedCount())

	stored, err := s.repo.GetByFilter(models.TransactionFilter{Kinds: []string{models.TransactionKindIncome}})
	s.NoError(err)
	s.Require().Len(stored, 1)
	s.Equal("Salaire mars", stored[0].Description)
	s.Equal(int64(250000), stored[0].Amount)
}

func (s *ImportServiceTestSuite) TestImportCSV_EnglishHeaderAliases() {
	csv := strings.Join([]string{
		"date,description,category,amount,kind",
		"2026-03-05,Groceries,Alimentation,45000,expense",
	}, "\n")

	inserted, err := s.service.ImportCSV(strings.NewReader(csv))
	s.NoError(err)
	s.Equal(1, inserted)
}

func (s *ImportServiceTestSuite) TestImportCSV_ExtraColumnsIgnored() {
	csv := strings.Join([]string{
		"id,date,description,categorie,montant,type,notes",
		"42,2026-03-05,Courses,Alimentation,45000,expense,",
	}, "\n")

	inserted, err := s.service.ImportCSV(strings.NewReader(csv))
	s.NoError(err)
	s.Equal(1, inserted)
}

func (s *ImportServiceTestSuite) TestImportCSV_RFC3339Dates() {
	csv := strings.Join([]string{
		"date,description,categorie,montant,type",
		"2026-03-05T14:30:00Z,Courses,Alimentation,45000,expense",
	}, "\n")

	inserted, err := s.service.ImportCSV(strings.NewReader(csv))
	s.NoError(err)
	s.Equal(1, inserted)
}

func (s *ImportServiceTestSuite) TestImportCSV_MissingColumnRejectsWholeFile() {
	csv := strings.Join([]string{
		"date,description,categorie,type",
		"2026-03-05,Courses,Alimentation,expense",
	}, "\n")

	_, err := s.service.ImportCSV(strings.NewReader(csv))
	s.ErrorIs(err, ErrImportMissingColumns)
	s.Contains(err.Error(), "montant")
	s.Zero(s.storedCount())
}

func (s *ImportServiceTestSuite) TestImportCSV_InvalidRowRejectsWholeFile() {
	testCases := []struct {
		name string
		row  string
	}{
		{"bad date", "hier,Courses,Alimentation,45000,expense"},
		{"bad amount", "2026-03-05,Courses,Alimentation,beaucoup,expense"},
		{"negative amount", "2026-03-05,Courses,Alimentation,-45000,expense"},
		{"bad kind", "2026-03-05,Courses,Alimentation,45000,virement"},
		{"empty description", "2026-03-05,,Alimentation,45000,expense"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			csv := strings.Join([]string{
				"date,description,categorie,montant,type",
				"2026-03-01,Valide,Alimentation,1000,expense",
				tc.row,
			}, "\n")

			_, err := s.service.ImportCSV(strings.NewReader(csv))
			s.ErrorIs(err, ErrImportInvalidRow)
			s.Contains(err.Error(), "line 3")
			s.Zero(s.storedCount(), "a bad row must block even the valid ones")
		})
	}
}

func (s *ImportServiceTestSuite) TestImportCSV_EmptyFile() {
	_, err := s.service.ImportCSV(strings.NewReader(""))
	s.ErrorIs(err, ErrImportEmpty)

	_, err = s.service.ImportCSV(strings.NewReader("date,description,categorie,montant,type\n"))
	s.ErrorIs(err, ErrImportEmpty)
}

func (s *ImportServiceTestSuite) TestImportCSV_HeaderCaseInsensitive() {
	csv := strings.Join([]string{
		"Date,Description,Categorie,Montant,Type",
		"2026-03-05,Courses,Alimentation,45000,expense",
	}, "\n")

	inserted, err := s.service.ImportCSV(strings.NewReader(csv))
	s.NoError(err)
	s.Equal(1, inserted)
}
