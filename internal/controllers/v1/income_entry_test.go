package v1_test

import (
	"net/http"

	v1 "github.com/finledger/backend/internal/controllers/v1"
	"github.com/finledger/backend/internal/types"
	"github.com/finledger/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateIncomeEntry() {
	month := suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 9)})

	entry := suite.createTestIncomeEntry(suite.T(), v1.IncomeEntryEditable{
		BudgetMonthID: month.Data.ID,
		Label:         "Paycheck",
		Type:          "salary",
		Amount:        decimal.NewFromFloat(6600),
	})

	suite.Assert().Equal("Paycheck", entry.Data.Label)
	suite.Assert().Equal("$6,600.00", entry.Data.FormattedAmount)
	suite.Assert().Equal("Salary", entry.Data.TypeBadge.Label)
	suite.Assert().False(entry.Data.Live)
}

func (suite *TestSuiteStandard) TestCreateIncomeEntryDefaultType() {
	month := suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 9)})

	entry := suite.createTestIncomeEntry(suite.T(), v1.IncomeEntryEditable{
		BudgetMonthID: month.Data.ID,
		Label:         "Side gig",
		Amount:        decimal.NewFromFloat(250),
	})

	suite.Assert().Equal("other", string(entry.Data.Type))
	suite.Assert().Equal("Other", entry.Data.TypeBadge.Label)
}

func (suite *TestSuiteStandard) TestCreateIncomeEntryInvalidType() {
	month := suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 9)})

	suite.createTestIncomeEntry(suite.T(), v1.IncomeEntryEditable{
		BudgetMonthID: month.Data.ID,
		Label:         "Lottery",
		Type:          "windfall",
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateIncomeEntryWithoutMonth() {
	suite.createTestIncomeEntry(suite.T(), v1.IncomeEntryEditable{
		Label: "Orphan",
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetIncomeEntriesFilterLive() {
	month := suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 9)})

	suite.createTestIncomeEntry(suite.T(), v1.IncomeEntryEditable{
		BudgetMonthID: month.Data.ID,
		Label:         "Projected paycheck",
		Amount:        decimal.NewFromFloat(6600),
	})

	suite.createTestIncomeEntry(suite.T(), v1.IncomeEntryEditable{
		BudgetMonthID: month.Data.ID,
		Label:         "Checking account",
		Amount:        decimal.NewFromFloat(9000),
		Live:          true,
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/income-entries?live=true", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.IncomeEntryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Checking account", response.Data[0].Label)
}

func (suite *TestSuiteStandard) TestGetIncomeEntriesInvalidTypeFilter() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/income-entries?type=windfall", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateIncomeEntryAmount() {
	month := suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 9)})

	entry := suite.createTestIncomeEntry(suite.T(), v1.IncomeEntryEditable{
		BudgetMonthID: month.Data.ID,
		Label:         "Paycheck",
		Amount:        decimal.NewFromFloat(6600),
	})

	r := test.Request(suite.T(), http.MethodPatch, entry.Data.Links.Self, map[string]string{
		"amount": "7000.00",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, entry.Data.Links.Self, "")
	var response v1.IncomeEntryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromFloat(7000)))
}

func (suite *TestSuiteStandard) TestDeleteIncomeEntry() {
	month := suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 9)})

	entry := suite.createTestIncomeEntry(suite.T(), v1.IncomeEntryEditable{
		BudgetMonthID: month.Data.ID,
		Label:         "Paycheck",
		Amount:        decimal.NewFromFloat(6600),
	})

	r := test.Request(suite.T(), http.MethodDelete, entry.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, entry.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
