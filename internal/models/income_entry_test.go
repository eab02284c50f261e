package models_test

import (
	"github.com/finledger/backend/internal/models"
	"github.com/finledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateIncomeEntryDefaults() {
	month := suite.createTestMonth(models.BudgetMonth{Month: types.NewMonth(2026, 9)})

	entry := models.BudgetIncomeEntry{
		BudgetMonthID: month.ID,
		Label:         "Side gig",
		Amount:        decimal.NewFromFloat(250),
	}

	err := models.CreateIncomeEntry(models.DB, &entry)
	suite.Require().NoError(err)

	suite.Assert().Equal(models.IncomeOther, entry.Type, "Type must default to other")
	suite.Assert().False(entry.Live, "Entries are projected unless marked live")
}

func (suite *TestSuiteStandard) TestCreateIncomeEntryNoMonth() {
	entry := models.BudgetIncomeEntry{Label: "Orphan"}

	err := models.CreateIncomeEntry(models.DB, &entry)
	suite.Assert().ErrorIs(err, models.ErrIncomeEntryNoMonth)
}

func (suite *TestSuiteStandard) TestCreateIncomeEntryMonthMustExist() {
	entry := models.BudgetIncomeEntry{
		BudgetMonthID: uuid.New(),
		Label:         "Dangling",
	}

	err := models.CreateIncomeEntry(models.DB, &entry)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCreateIncomeEntryInvalidType() {
	month := suite.createTestMonth(models.BudgetMonth{Month: types.NewMonth(2026, 9)})

	entry := models.BudgetIncomeEntry{
		BudgetMonthID: month.ID,
		Label:         "Lottery",
		Type:          "windfall",
	}

	err := models.CreateIncomeEntry(models.DB, &entry)
	suite.Assert().ErrorIs(err, models.ErrIncomeTypeInvalid)
}

func (suite *TestSuiteStandard) TestCreateIncomeEntryNegativeAmount() {
	month := suite.createTestMonth(models.BudgetMonth{Month: types.NewMonth(2026, 9)})

	entry := models.BudgetIncomeEntry{
		BudgetMonthID: month.ID,
		Label:         "Negative",
		Amount:        decimal.NewFromFloat(-1),
	}

	err := models.CreateIncomeEntry(models.DB, &entry)
	suite.Assert().ErrorIs(err, models.ErrAmountNegative)
}
