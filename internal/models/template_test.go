package models_test

import (
	"github.com/finledger/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateTemplateDefaults() {
	template := models.BudgetExpenseTemplate{
		Name:   "Internet",
		Amount: decimal.NewFromFloat(79.99),
	}

	err := models.CreateExpenseTemplate(models.DB, &template)
	suite.Require().NoError(err)

	suite.Assert().Equal(models.FrequencyRecurring, template.Frequency, "Frequency must default to recurring")
}

func (suite *TestSuiteStandard) TestCreateTemplateInvalidFrequency() {
	template := models.BudgetExpenseTemplate{
		Name:      "Gym",
		Frequency: "weekly",
	}

	err := models.CreateExpenseTemplate(models.DB, &template)
	suite.Assert().ErrorIs(err, models.ErrFrequencyInvalid)
}

func (suite *TestSuiteStandard) TestCreateTemplateNegativeAmount() {
	template := models.BudgetExpenseTemplate{
		Name:   "Cashback",
		Amount: decimal.NewFromFloat(-10),
	}

	err := models.CreateExpenseTemplate(models.DB, &template)
	suite.Assert().ErrorIs(err, models.ErrAmountNegative)
}

func (suite *TestSuiteStandard) TestCreateTemplateNilUUIDCategoryCleared() {
	nilID := uuid.Nil
	template := suite.createTestTemplate(models.BudgetExpenseTemplate{
		Name:       "Uncategorized",
		CategoryID: &nilID,
	})

	suite.Assert().Nil(template.CategoryID, "A pointer to the nil UUID means no category")
}

func (suite *TestSuiteStandard) TestCreateTemplateTrimsStrings() {
	template := suite.createTestTemplate(models.BudgetExpenseTemplate{
		Name: "  Water  ",
		Note: " quarterly bill ",
	})

	suite.Assert().Equal("Water", template.Name)
	suite.Assert().Equal("quarterly bill", template.Note)
}
