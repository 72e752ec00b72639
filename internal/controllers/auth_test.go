package controllers_test

import (
	"net/http"
	"testing"

	"github.com/mini-erp-personal/backend/test"
)

func (suite *TestSuiteStandard) TestRegistro() {
	headers := suite.registerTestUser("ana@example.com")

	recorder := test.Request(suite.router, suite.T(), http.MethodGet, "/api/auth/verificar", nil, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response struct {
		Exito bool `json:"exito"`
		Datos struct {
			Email string `json:"email"`
		} `json:"datos"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Exito)
	suite.Assert().Equal("ana@example.com", response.Datos.Email)
}

func (suite *TestSuiteStandard) TestRegistroDuplicateEmail() {
	suite.registerTestUser("ana@example.com")

	recorder := test.Request(suite.router, suite.T(), http.MethodPost, "/api/auth/registro", map[string]any{
		"nombre":   "Otra Ana",
		"email":    "ana@example.com",
		"password": "contraseña-larga",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, &recorder)
}

func (suite *TestSuiteStandard) TestRegistroValidation() {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"email": "a@example.com", "password": "contraseña-larga"}},
		{"invalid email", map[string]any{"nombre": "Ana", "email": "no-es-un-email", "password": "contraseña-larga"}},
		{"short password", map[string]any{"nombre": "Ana", "email": "a@example.com", "password": "corta"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(suite.router, t, http.MethodPost, "/api/auth/registro", tt.body)
			test.AssertHTTPStatus(t, http.StatusBadRequest, &recorder)
		})
	}
}

func (suite *TestSuiteStandard) TestLogin() {
	suite.registerTestUser("ana@example.com")

	recorder := test.Request(suite.router, suite.T(), http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "Ana@Example.com",
		"password": "contraseña-larga",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response struct {
		Datos struct {
			Token string `json:"token"`
		} `json:"datos"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().NotEmpty(response.Datos.Token)
}

func (suite *TestSuiteStandard) TestLoginWrongPassword() {
	suite.registerTestUser("ana@example.com")

	recorder := test.Request(suite.router, suite.T(), http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "ana@example.com",
		"password": "otra-contraseña",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &recorder)
}

func (suite *TestSuiteStandard) TestLoginUnknownUser() {
	recorder := test.Request(suite.router, suite.T(), http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "nadie@example.com",
		"password": "contraseña-larga",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &recorder)
}

func (suite *TestSuiteStandard) TestMissingToken() {
	recorder := test.Request(suite.router, suite.T(), http.MethodGet, "/api/cuentas", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &recorder)

	var response struct {
		Exito bool    `json:"exito"`
		Error *string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().False(response.Exito)
	suite.Assert().NotNil(response.Error)
}

func (suite *TestSuiteStandard) TestInvalidToken() {
	recorder := test.Request(suite.router, suite.T(), http.MethodGet, "/api/cuentas", nil,
		map[string]string{"Authorization": "Bearer no-es-un-token"})
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &recorder)
}
