package controllers_test

import (
	"net/http"

	"github.com/mini-erp-personal/backend/test"
)

func (suite *TestSuiteStandard) TestAccountCreateWithInitialBalance() {
	headers := suite.registerTestUser("cuentas@example.com")

	recorder := test.Request(suite.router, suite.T(), http.MethodPost, "/api/cuentas", map[string]any{
		"nombre":       "Billetera",
		"tipo":         "EFECTIVO",
		"moneda":       "ARS",
		"saldoInicial": "350",
	}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response struct {
		Datos struct {
			Saldo string `json:"saldo"`
		} `json:"datos"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("350", response.Datos.Saldo)

	// The seed transaction is visible in the ledger
	listRecorder := test.Request(suite.router, suite.T(), http.MethodGet, "/api/transacciones", nil, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &listRecorder)

	var list transactionListResponse
	test.DecodeResponse(suite.T(), &listRecorder, &list)
	suite.Require().Len(list.Datos, 1)
	suite.Assert().Equal("INGRESO", list.Datos[0].Tipo)
}

func (suite *TestSuiteStandard) TestAccountNameConflict() {
	headers := suite.registerTestUser("cuentas@example.com")
	suite.createTestAccount(headers, map[string]any{"nombre": "Billetera"})

	recorder := test.Request(suite.router, suite.T(), http.MethodPost, "/api/cuentas", map[string]any{
		"nombre": "Billetera",
		"tipo":   "BANCO",
		"moneda": "ARS",
	}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, &recorder)
}

func (suite *TestSuiteStandard) TestAccountNamePerUser() {
	headers := suite.registerTestUser("cuentas@example.com")
	otherHeaders := suite.registerTestUser("otra@example.com")

	suite.createTestAccount(headers, map[string]any{"nombre": "Billetera"})

	// Another user may use the same account name
	suite.createTestAccount(otherHeaders, map[string]any{"nombre": "Billetera"})
}

func (suite *TestSuiteStandard) TestAccountUpdate() {
	headers := suite.registerTestUser("cuentas@example.com")
	id := suite.createTestAccount(headers, map[string]any{"nombre": "Billetera"})

	recorder := test.Request(suite.router, suite.T(), http.MethodPut, "/api/cuentas/"+id, map[string]any{
		"nombre": "Caja chica",
		"color":  "#ff0000",
	}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response struct {
		Datos struct {
			Nombre string `json:"nombre"`
			Color  string `json:"color"`
			Tipo   string `json:"tipo"`
		} `json:"datos"`
	}
	getRecorder := test.Request(suite.router, suite.T(), http.MethodGet, "/api/cuentas/"+id, nil, headers)
	test.DecodeResponse(suite.T(), &getRecorder, &response)
	suite.Assert().Equal("Caja chica", response.Datos.Nombre)
	suite.Assert().Equal("#ff0000", response.Datos.Color)
	// Fields not in the body are untouched
	suite.Assert().Equal("EFECTIVO", response.Datos.Tipo)
}

func (suite *TestSuiteStandard) TestAccountSaldoNotDirectlyEditable() {
	headers := suite.registerTestUser("cuentas@example.com")
	id := suite.createTestAccount(headers, map[string]any{"nombre": "Billetera", "saldoInicial": "100"})

	recorder := test.Request(suite.router, suite.T(), http.MethodPut, "/api/cuentas/"+id, map[string]any{
		"saldo": "99999",
	}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response struct {
		Datos struct {
			Saldo string `json:"saldo"`
		} `json:"datos"`
	}
	getRecorder := test.Request(suite.router, suite.T(), http.MethodGet, "/api/cuentas/"+id, nil, headers)
	test.DecodeResponse(suite.T(), &getRecorder, &response)
	suite.Assert().Equal("100", response.Datos.Saldo)
}

func (suite *TestSuiteStandard) TestAccountDeleteGuard() {
	headers := suite.registerTestUser("cuentas@example.com")
	id := suite.createTestAccount(headers, map[string]any{"nombre": "Billetera", "saldoInicial": "100"})

	// The initial balance seed already references the account
	recorder := test.Request(suite.router, suite.T(), http.MethodDelete, "/api/cuentas/"+id, nil, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var response struct {
		Exito bool    `json:"exito"`
		Error *string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().False(response.Exito)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("no se puede eliminar la cuenta porque tiene transacciones asociadas", *response.Error)
}

func (suite *TestSuiteStandard) TestAccountDelete() {
	headers := suite.registerTestUser("cuentas@example.com")
	id := suite.createTestAccount(headers, map[string]any{"nombre": "Billetera"})

	recorder := test.Request(suite.router, suite.T(), http.MethodDelete, "/api/cuentas/"+id, nil, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	recorder = test.Request(suite.router, suite.T(), http.MethodGet, "/api/cuentas/"+id, nil, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestAccountListFilter() {
	headers := suite.registerTestUser("cuentas@example.com")
	suite.createTestAccount(headers, map[string]any{"nombre": "Billetera", "tipo": "EFECTIVO"})
	suite.createTestAccount(headers, map[string]any{"nombre": "Banco", "tipo": "BANCO"})
	suite.createTestAccount(headers, map[string]any{"nombre": "Dólares", "tipo": "BANCO", "moneda": "USD"})

	var list struct {
		Datos []struct {
			Nombre string `json:"nombre"`
		} `json:"datos"`
	}

	recorder := test.Request(suite.router, suite.T(), http.MethodGet, "/api/cuentas?tipo=BANCO", nil, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Assert().Len(list.Datos, 2)

	recorder = test.Request(suite.router, suite.T(), http.MethodGet, "/api/cuentas?moneda=USD", nil, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Require().Len(list.Datos, 1)
	suite.Assert().Equal("Dólares", list.Datos[0].Nombre)
}
