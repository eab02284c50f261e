package models_test

import (
	"time"

	"github.com/finledger/backend/internal/models"
	"github.com/finledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateBudgetMonthMaterializesTemplates() {
	category := suite.createTestCategory(models.BudgetCategory{Name: "Housing"})

	rent := suite.createTestTemplate(models.BudgetExpenseTemplate{
		Name:       "Rent",
		CategoryID: &category.ID,
		Amount:     decimal.NewFromFloat(1500),
		Frequency:  models.FrequencyRecurring,
		Active:     true,
		SortOrder:  1,
	})

	suite.createTestTemplate(models.BudgetExpenseTemplate{
		Name:      "Car repair",
		Amount:    decimal.NewFromFloat(800),
		Frequency: models.FrequencyOneOff,
		Active:    true,
	})

	suite.createTestTemplate(models.BudgetExpenseTemplate{
		Name:      "Old gym membership",
		Amount:    decimal.NewFromFloat(40),
		Frequency: models.FrequencyRecurring,
		Active:    false,
	})

	month, err := models.CreateBudgetMonth(models.DB, time.Date(2026, 9, 17, 12, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	suite.Assert().True(month.Month.Equal(types.NewMonth(2026, 9)), "Month must be normalized to the first day, is %s", month.Month)

	items, err := month.LineItems(models.DB)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1, "Only active recurring templates are materialized")

	item := items[0]
	suite.Assert().Equal("Rent", item.Name)
	suite.Assert().Equal(&rent.ID, item.TemplateID)
	suite.Assert().Equal(&category.ID, item.CategoryID)
	suite.Assert().True(item.BudgetedAmount.Equal(rent.Amount))
	suite.Assert().True(item.PaidAmount.IsZero(), "Materialized items start unpaid")
	suite.Assert().Equal(rent.SortOrder, item.SortOrder)
}

func (suite *TestSuiteStandard) TestCreateBudgetMonthDuplicate() {
	_, err := models.CreateBudgetMonth(models.DB, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	// Any day of the same calendar month collides
	_, err = models.CreateBudgetMonth(models.DB, time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC))
	suite.Require().ErrorIs(err, models.ErrMonthExists)
	suite.Assert().Contains(err.Error(), "January 2026", "The error must name the month in human readable form")
}

func (suite *TestSuiteStandard) TestBudgetMonthStatistics() {
	month, err := models.CreateBudgetMonth(models.DB, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	suite.createTestIncomeEntry(models.BudgetIncomeEntry{
		BudgetMonthID: month.ID,
		Label:         "Paychecks",
		Type:          models.IncomeSalary,
		Amount:        decimal.NewFromFloat(13200),
	})

	suite.createTestIncomeEntry(models.BudgetIncomeEntry{
		BudgetMonthID: month.ID,
		Label:         "Checking account",
		Amount:        decimal.NewFromFloat(9000),
		Live:          true,
	})

	suite.createTestLineItem(models.BudgetLineItem{
		BudgetMonthID:  month.ID,
		Name:           "Mortgage",
		BudgetedAmount: decimal.NewFromFloat(8941.13),
		PaidAmount:     decimal.NewFromFloat(8941.13),
	})

	suite.createTestLineItem(models.BudgetLineItem{
		BudgetMonthID:  month.ID,
		Name:           "Utilities",
		BudgetedAmount: decimal.NewFromFloat(5400),
		PaidAmount:     decimal.NewFromFloat(7),
	})

	stats, err := month.Statistics(models.DB)
	suite.Require().NoError(err)

	suite.Assert().True(stats.ProjectedIncome.Equal(decimal.NewFromFloat(13200)), "Projected income is %s", stats.ProjectedIncome)
	suite.Assert().True(stats.ProjectedExpenses.Equal(decimal.NewFromFloat(14341.13)), "Projected expenses are %s", stats.ProjectedExpenses)
	suite.Assert().True(stats.ProjectedRemainder.Equal(decimal.NewFromFloat(-1141.13)), "Projected remainder is %s", stats.ProjectedRemainder)
	suite.Assert().True(stats.LiveIncome.Equal(decimal.NewFromFloat(9000)), "Live income is %s", stats.LiveIncome)
	suite.Assert().True(stats.LiveExpenses.Equal(decimal.NewFromFloat(8948.13)), "Live expenses are %s", stats.LiveExpenses)
	suite.Assert().True(stats.PaymentDue.Equal(decimal.NewFromFloat(5393)), "Payment due is %s", stats.PaymentDue)
	suite.Assert().True(stats.LiveRemainder.Equal(decimal.NewFromFloat(3607)), "Live remainder is %s", stats.LiveRemainder)
}

func (suite *TestSuiteStandard) TestBudgetMonthStatisticsEmpty() {
	month, err := models.CreateBudgetMonth(models.DB, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	stats, err := month.Statistics(models.DB)
	suite.Require().NoError(err)

	suite.Assert().True(stats.ProjectedIncome.IsZero())
	suite.Assert().True(stats.ProjectedExpenses.IsZero())
	suite.Assert().True(stats.ProjectedRemainder.IsZero())
	suite.Assert().True(stats.LiveIncome.IsZero())
	suite.Assert().True(stats.LiveExpenses.IsZero())
	suite.Assert().True(stats.PaymentDue.IsZero())
	suite.Assert().True(stats.LiveRemainder.IsZero())
}

func (suite *TestSuiteStandard) TestBudgetMonthPaymentDueUnclamped() {
	month, err := models.CreateBudgetMonth(models.DB, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	// Over-paying an item drives its remainder negative, the total must not clamp
	suite.createTestLineItem(models.BudgetLineItem{
		BudgetMonthID:  month.ID,
		Name:           "Electric",
		BudgetedAmount: decimal.NewFromFloat(100),
		PaidAmount:     decimal.NewFromFloat(150),
	})

	due, err := month.PaymentDue(models.DB)
	suite.Require().NoError(err)
	suite.Assert().True(due.Equal(decimal.NewFromFloat(-50)), "Payment due is %s, should be -50", due)
}

func (suite *TestSuiteStandard) TestBudgetMonthStatisticsExcludeArchived() {
	month, err := models.CreateBudgetMonth(models.DB, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	item := suite.createTestLineItem(models.BudgetLineItem{
		BudgetMonthID:  month.ID,
		Name:           "Streaming",
		BudgetedAmount: decimal.NewFromFloat(30),
	})

	suite.Require().NoError(models.DB.Delete(&item).Error)

	expenses, err := month.ProjectedExpenses(models.DB)
	suite.Require().NoError(err)
	suite.Assert().True(expenses.IsZero(), "Archived line items must not count, projected expenses are %s", expenses)
}
