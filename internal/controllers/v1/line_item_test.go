package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/finledger/backend/internal/controllers/v1"
	"github.com/finledger/backend/internal/types"
	"github.com/finledger/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateLineItem() {
	month := suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 9)})

	item := suite.createTestLineItem(suite.T(), v1.LineItemEditable{
		BudgetMonthID:  month.Data.ID,
		Name:           "Daycare",
		BudgetedAmount: decimal.NewFromFloat(950),
		PaidAmount:     decimal.NewFromFloat(200),
	})

	suite.Assert().Equal("Daycare", item.Data.Name)
	suite.Assert().True(item.Data.Remainder.Equal(decimal.NewFromFloat(750)), "Remainder is %s, should be 750.00", item.Data.Remainder)
	suite.Assert().Equal("$750.00", item.Data.FormattedRemainder)
	suite.Assert().Equal("Partially paid", item.Data.PaymentStateBadge.Label)
	suite.Assert().Contains(item.Data.Links.Month, fmt.Sprintf("/v1/months/%s", month.Data.ID))
}

func (suite *TestSuiteStandard) TestCreateLineItemWithoutMonth() {
	suite.createTestLineItem(suite.T(), v1.LineItemEditable{
		Name: "Orphan",
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateLineItemNegativeAmounts() {
	month := suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 9)})

	suite.createTestLineItem(suite.T(), v1.LineItemEditable{
		BudgetMonthID:  month.Data.ID,
		Name:           "Negative",
		BudgetedAmount: decimal.NewFromFloat(-1),
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestMarkLineItemPaid() {
	month := suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 9)})

	item := suite.createTestLineItem(suite.T(), v1.LineItemEditable{
		BudgetMonthID:  month.Data.ID,
		Name:           "Daycare",
		BudgetedAmount: decimal.NewFromFloat(950),
		PaidAmount:     decimal.NewFromFloat(200),
	})

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("%s/mark-paid", item.Data.Links.Self), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LineItemResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(response.Data.PaidAmount.Equal(response.Data.BudgetedAmount))
	suite.Assert().Equal("$0.00", response.Data.FormattedRemainder)
	suite.Assert().Equal("Paid", response.Data.PaymentStateBadge.Label)
}

func (suite *TestSuiteStandard) TestUpdateLineItemNegativeAmount() {
	month := suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 9)})

	item := suite.createTestLineItem(suite.T(), v1.LineItemEditable{
		BudgetMonthID:  month.Data.ID,
		Name:           "Utilities",
		BudgetedAmount: decimal.NewFromFloat(400),
	})

	r := test.Request(suite.T(), http.MethodPatch, item.Data.Links.Self, map[string]string{
		"paidAmount": "-10.00",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateLineItemPayment() {
	month := suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 9)})

	item := suite.createTestLineItem(suite.T(), v1.LineItemEditable{
		BudgetMonthID:  month.Data.ID,
		Name:           "Utilities",
		BudgetedAmount: decimal.NewFromFloat(400),
	})

	r := test.Request(suite.T(), http.MethodPatch, item.Data.Links.Self, map[string]string{
		"paidAmount": "150.00",
		"remarks":    "Paid the electric part",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, item.Data.Links.Self, "")
	var response v1.LineItemResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(response.Data.PaidAmount.Equal(decimal.NewFromFloat(150)))
	suite.Assert().Equal("Paid the electric part", response.Data.Remarks)
	suite.Assert().Equal("$250.00", response.Data.FormattedRemainder)
}

func (suite *TestSuiteStandard) TestLineItemsFilterByMonth() {
	first := suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 8)})
	second := suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 9)})

	suite.createTestLineItem(suite.T(), v1.LineItemEditable{BudgetMonthID: first.Data.ID, Name: "August item"})
	suite.createTestLineItem(suite.T(), v1.LineItemEditable{BudgetMonthID: second.Data.ID, Name: "September item"})

	r := test.Request(suite.T(), http.MethodGet, first.Data.Links.LineItems, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LineItemListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("August item", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestDeleteLineItemUpdatesAggregates() {
	month := suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 9)})

	item := suite.createTestLineItem(suite.T(), v1.LineItemEditable{
		BudgetMonthID:  month.Data.ID,
		Name:           "Streaming",
		BudgetedAmount: decimal.NewFromFloat(30),
	})

	r := test.Request(suite.T(), http.MethodDelete, item.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, month.Data.Links.Self, "")
	var response v1.MonthDetailResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("$0.00", response.Data.Formatted.ProjectedExpenses, "Archived line items must not count")
}
