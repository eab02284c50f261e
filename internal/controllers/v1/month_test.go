package v1_test

import (
	"net/http"

	v1 "github.com/finledger/backend/internal/controllers/v1"
	"github.com/finledger/backend/internal/types"
	"github.com/finledger/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateMonthMaterializesTemplates() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Housing"})

	suite.createTestTemplate(suite.T(), v1.TemplateEditable{
		Name:       "Rent",
		CategoryID: &category.Data.ID,
		Amount:     decimal.NewFromFloat(1500),
		Frequency:  "recurring",
		Active:     true,
	})

	suite.createTestTemplate(suite.T(), v1.TemplateEditable{
		Name:      "Car repair",
		Amount:    decimal.NewFromFloat(800),
		Frequency: "one_off",
		Active:    true,
	})

	month := suite.createTestMonth(suite.T(), v1.MonthEditable{
		Month: types.NewMonth(2026, 9),
	})

	suite.Assert().Equal("September 2026", month.Data.Name)
	suite.Require().Len(month.Data.LineItems, 1, "Only active recurring templates are materialized")
	suite.Assert().Equal("Rent", month.Data.LineItems[0].Name)
	suite.Assert().Equal("$1,500.00", month.Data.LineItems[0].FormattedBudgeted)
	suite.Assert().Equal("Unpaid", month.Data.LineItems[0].PaymentStateBadge.Label)
}

func (suite *TestSuiteStandard) TestCreateMonthDuplicate() {
	suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 1)})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/months", map[string]string{
		"month": "2026-01",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	var response v1.MonthDetailResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Contains(*response.Error, "January 2026")
}

func (suite *TestSuiteStandard) TestCreateMonthWithoutMonth() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/months", map[string]string{
		"note": "no month here",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestMonthStatistics() {
	month := suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 9)})

	suite.createTestIncomeEntry(suite.T(), v1.IncomeEntryEditable{
		BudgetMonthID: month.Data.ID,
		Label:         "Paychecks",
		Type:          "salary",
		Amount:        decimal.NewFromFloat(13200),
	})

	suite.createTestIncomeEntry(suite.T(), v1.IncomeEntryEditable{
		BudgetMonthID: month.Data.ID,
		Label:         "Checking account",
		Amount:        decimal.NewFromFloat(9000),
		Live:          true,
	})

	suite.createTestLineItem(suite.T(), v1.LineItemEditable{
		BudgetMonthID:  month.Data.ID,
		Name:           "Mortgage",
		BudgetedAmount: decimal.NewFromFloat(8941.13),
		PaidAmount:     decimal.NewFromFloat(8941.13),
	})

	suite.createTestLineItem(suite.T(), v1.LineItemEditable{
		BudgetMonthID:  month.Data.ID,
		Name:           "Utilities",
		BudgetedAmount: decimal.NewFromFloat(5400),
		PaidAmount:     decimal.NewFromFloat(7),
	})

	r := test.Request(suite.T(), http.MethodGet, month.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthDetailResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("$13,200.00", response.Data.Formatted.ProjectedIncome)
	suite.Assert().Equal("$14,341.13", response.Data.Formatted.ProjectedExpenses)
	suite.Assert().Equal("-$1,141.13", response.Data.Formatted.ProjectedRemainder)
	suite.Assert().Equal("$9,000.00", response.Data.Formatted.LiveIncome)
	suite.Assert().Equal("$8,948.13", response.Data.Formatted.LiveExpenses)
	suite.Assert().Equal("$5,393.00", response.Data.Formatted.PaymentDue)
	suite.Assert().Equal("$3,607.00", response.Data.Formatted.LiveRemainder)
	suite.Assert().Len(response.Data.LineItems, 2)
	suite.Assert().Len(response.Data.IncomeEntries, 2)
}

func (suite *TestSuiteStandard) TestGetMonthsSorted() {
	suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 3)})
	suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 7)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("July 2026", response.Data[0].Name, "Months must be sorted newest first")
	suite.Assert().Equal("March 2026", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestUpdateMonthNote() {
	month := suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 9)})

	r := test.Request(suite.T(), http.MethodPatch, month.Data.Links.Self, map[string]string{
		"note": "Tight month, car repair",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, month.Data.Links.Self, "")
	var response v1.MonthDetailResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Tight month, car repair", response.Data.Note)
}

func (suite *TestSuiteStandard) TestUpdateMonthIdentityFixed() {
	month := suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 9)})

	r := test.Request(suite.T(), http.MethodPatch, month.Data.Links.Self, map[string]string{
		"month": "2026-12",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, month.Data.Links.Self, "")
	var response v1.MonthDetailResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("September 2026", response.Data.Name, "The calendar month is fixed at creation")
}

func (suite *TestSuiteStandard) TestDeleteMonthCascades() {
	month := suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 9)})

	suite.createTestLineItem(suite.T(), v1.LineItemEditable{
		BudgetMonthID:  month.Data.ID,
		Name:           "Groceries",
		BudgetedAmount: decimal.NewFromFloat(600),
	})

	suite.createTestIncomeEntry(suite.T(), v1.IncomeEntryEditable{
		BudgetMonthID: month.Data.ID,
		Label:         "Paycheck",
		Amount:        decimal.NewFromFloat(3000),
	})

	r := test.Request(suite.T(), http.MethodDelete, month.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, month.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, month.Data.Links.LineItems, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var items v1.LineItemListResponse
	test.DecodeResponse(suite.T(), &r, &items)
	suite.Assert().Len(items.Data, 0, "Line items are archived with their month")

	r = test.Request(suite.T(), http.MethodGet, month.Data.Links.IncomeEntries, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var entries v1.IncomeEntryListResponse
	test.DecodeResponse(suite.T(), &r, &entries)
	suite.Assert().Len(entries.Data, 0, "Income entries are archived with their month")
}
