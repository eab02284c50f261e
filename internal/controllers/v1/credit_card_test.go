package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/finledger/backend/internal/controllers/v1"
	"github.com/finledger/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestOptionsCreditCards() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/cards", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateCreditCard() {
	card := suite.createTestCreditCard(suite.T(), v1.CreditCardEditable{
		Name:        "Sapphire Visa",
		Currency:    "USD",
		CreditLimit: decimal.NewFromFloat(5000),
	})

	suite.Assert().Equal("Sapphire Visa", card.Data.Name)
	suite.Assert().Equal("$5,000.00", card.Data.Formatted.AvailableCredit)
	suite.Assert().Equal("$0.00", card.Data.Formatted.TrueBalance)
	suite.Assert().Contains(card.Data.Links.Self, fmt.Sprintf("/v1/cards/%s", card.Data.ID))
	suite.Assert().Contains(card.Data.Links.Transactions, fmt.Sprintf("card=%s", card.Data.ID))
}

func (suite *TestSuiteStandard) TestCreateCreditCardNegativeLimit() {
	suite.createTestCreditCard(suite.T(), v1.CreditCardEditable{
		Name:        "Overdrawn",
		CreditLimit: decimal.NewFromFloat(-100),
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateCreditCardInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/cards", `{ "name": `)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetCreditCardsPagination() {
	for i := 0; i < 3; i++ {
		suite.createTestCreditCard(suite.T(), v1.CreditCardEditable{})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/cards?limit=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CreditCardListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Len(response.Data, 2)
	suite.Assert().Equal(2, response.Pagination.Count)
	suite.Assert().Equal(int64(3), response.Pagination.Total)
	suite.Assert().Equal(2, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestGetCreditCardsFilterName() {
	suite.createTestCreditCard(suite.T(), v1.CreditCardEditable{Name: "Sapphire Visa"})
	suite.createTestCreditCard(suite.T(), v1.CreditCardEditable{Name: "Gold Card"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/cards?name=phire", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CreditCardListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Sapphire Visa", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestGetCreditCardNotFound() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/cards/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetCreditCardInvalidID() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/cards/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateCreditCardCurrencyIgnored() {
	card := suite.createTestCreditCard(suite.T(), v1.CreditCardEditable{
		Name:     "Travel Card",
		Currency: "USD",
	})

	r := test.Request(suite.T(), http.MethodPatch, card.Data.Links.Self, map[string]string{
		"name":     "Renamed Card",
		"currency": "EUR",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CreditCardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("Renamed Card", response.Data.Name)
	suite.Assert().Equal("USD", response.Data.Currency, "Currency is fixed at creation")
}

func (suite *TestSuiteStandard) TestDeleteCreditCard() {
	card := suite.createTestCreditCard(suite.T(), v1.CreditCardEditable{})

	r := test.Request(suite.T(), http.MethodDelete, card.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, card.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCreditCardBalances() {
	card := suite.createTestCreditCard(suite.T(), v1.CreditCardEditable{
		CreditLimit: decimal.NewFromFloat(5000),
	})

	suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		CreditCardID: card.Data.ID,
		Type:         "charge",
		Status:       "posted",
		Amount:       decimal.NewFromFloat(120.50),
	})

	suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		CreditCardID: card.Data.ID,
		Type:         "payment",
		Status:       "pending",
		Amount:       decimal.NewFromFloat(50),
	})

	r := test.Request(suite.T(), http.MethodGet, card.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CreditCardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("$120.50", response.Data.Formatted.Posted)
	suite.Assert().Equal("-$50.00", response.Data.Formatted.Pending)
	suite.Assert().Equal("$70.50", response.Data.Formatted.TrueBalance)
	suite.Assert().Equal("$4,929.50", response.Data.Formatted.AvailableCredit)
}
