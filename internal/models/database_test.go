package models_test

import (
	"github.com/mini-erp-personal/backend/internal/models"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	err := models.Connect("/does-not/exist/database")
	suite.Assert().Error(err)
}

func (suite *TestSuiteStandard) TestClosedDatabaseIsGeneralError() {
	user := suite.createTestUser(models.User{})

	suite.CloseDB()

	err := models.DB.First(&models.User{}, "id = ?", user.ID).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestEmailNotUnique() {
	user := suite.createTestUser(models.User{})

	err := models.DB.Create(&models.User{
		Nombre:       "Otro",
		Email:        user.Email,
		PasswordHash: "not-a-real-hash",
	}).Error
	suite.Assert().ErrorIs(err, models.ErrEmailNotUnique)
}

func (suite *TestSuiteStandard) TestCategoryNameNotUniquePerKind() {
	user := suite.createTestUser(models.User{})

	suite.createTestCategory(models.Category{UserID: user.ID, Nombre: "Bebidas", Tipo: models.CategoryTypeProduct})

	err := models.DB.Create(&models.Category{
		UserID: user.ID,
		Nombre: "Bebidas",
		Tipo:   models.CategoryTypeProduct,
	}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)

	// The same name under another kind is fine
	err = models.DB.Create(&models.Category{
		UserID: user.ID,
		Nombre: "Bebidas",
		Tipo:   models.CategoryTypeService,
	}).Error
	suite.Assert().NoError(err)
}

func (suite *TestSuiteStandard) TestResourceNotFoundMessage() {
	user := suite.createTestUser(models.User{})

	var account models.Account
	err := models.DB.Where("user_id = ?", user.ID).First(&account, "nombre = ?", "inexistente").Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("no existe cuenta que coincida con la búsqueda", err.Error())
}
