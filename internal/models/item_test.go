package models_test

import (
	"github.com/shopspring/decimal"

	"github.com/mini-erp-personal/backend/internal/models"
)

func (suite *TestSuiteStandard) TestItemServiceNormalization() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID, Tipo: models.CategoryTypeService})

	item, err := models.CreateItem(user.ID, models.Item{
		CategoryID:   category.ID,
		Nombre:       "Consultoría",
		Tipo:         models.ItemTypeService,
		Stock:        10,
		StockMinimo:  2,
		CodigoBarras: "123456",
		EsRecurrente: true,
		Frecuencia:   "MENSUAL",
	})
	suite.Require().NoError(err)

	// Services carry no stock, barcode or recurrence
	suite.Assert().Equal(int64(0), item.Stock)
	suite.Assert().Equal(int64(0), item.StockMinimo)
	suite.Assert().Equal("", item.CodigoBarras)
	suite.Assert().False(item.EsRecurrente)
	suite.Assert().Equal("", item.Frecuencia)
}

func (suite *TestSuiteStandard) TestItemExpenseNormalization() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID, Tipo: models.CategoryTypeExpense})

	item, err := models.CreateItem(user.ID, models.Item{
		CategoryID:   category.ID,
		Nombre:       "Alquiler",
		Tipo:         models.ItemTypeExpense,
		Stock:        10,
		CodigoBarras: "123456",
		EsRecurrente: true,
		Frecuencia:   "MENSUAL",
	})
	suite.Require().NoError(err)

	// Expense types may recur but carry no stock or barcode
	suite.Assert().Equal(int64(0), item.Stock)
	suite.Assert().Equal("", item.CodigoBarras)
	suite.Assert().True(item.EsRecurrente)
	suite.Assert().Equal("MENSUAL", item.Frecuencia)
}

func (suite *TestSuiteStandard) TestItemProductNormalization() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	item, err := models.CreateItem(user.ID, models.Item{
		CategoryID:   category.ID,
		Nombre:       "Yerba",
		Tipo:         models.ItemTypeProduct,
		Stock:        10,
		EsRecurrente: true,
		Frecuencia:   "MENSUAL",
	})
	suite.Require().NoError(err)

	suite.Assert().Equal(int64(10), item.Stock)
	suite.Assert().False(item.EsRecurrente)
	suite.Assert().Equal("", item.Frecuencia)
	suite.Assert().Equal("unidad", item.Unidad)
}

func (suite *TestSuiteStandard) TestItemCategoryKindMismatch() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID, Tipo: models.CategoryTypeService})

	_, err := models.CreateItem(user.ID, models.Item{
		CategoryID: category.ID,
		Nombre:     "Yerba",
		Tipo:       models.ItemTypeProduct,
	})
	suite.Assert().ErrorIs(err, models.ErrCategoryKindMismatch)
}

func (suite *TestSuiteStandard) TestItemNameCollision() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	_, err := models.CreateItem(user.ID, models.Item{CategoryID: category.ID, Nombre: "Yerba", Tipo: models.ItemTypeProduct})
	suite.Require().NoError(err)

	_, err = models.CreateItem(user.ID, models.Item{CategoryID: category.ID, Nombre: "Yerba", Tipo: models.ItemTypeProduct})
	suite.Assert().ErrorIs(err, models.ErrItemNameNotUnique)
}

func (suite *TestSuiteStandard) TestItemNameCollisionOnlyActive() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	item, err := models.CreateItem(user.ID, models.Item{CategoryID: category.ID, Nombre: "Yerba", Tipo: models.ItemTypeProduct})
	suite.Require().NoError(err)

	_, err = models.DeactivateItem(user.ID, item.ID)
	suite.Require().NoError(err)

	// The name of a deactivated item can be reused
	_, err = models.CreateItem(user.ID, models.Item{CategoryID: category.ID, Nombre: "Yerba", Tipo: models.ItemTypeProduct})
	suite.Assert().NoError(err)
}

func (suite *TestSuiteStandard) TestItemBarcodeCollision() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	_, err := models.CreateItem(user.ID, models.Item{CategoryID: category.ID, Nombre: "Yerba", Tipo: models.ItemTypeProduct, CodigoBarras: "779123"})
	suite.Require().NoError(err)

	_, err = models.CreateItem(user.ID, models.Item{CategoryID: category.ID, Nombre: "Azúcar", Tipo: models.ItemTypeProduct, CodigoBarras: "779123"})
	suite.Assert().ErrorIs(err, models.ErrItemBarcodeNotUnique)
}

func (suite *TestSuiteStandard) TestUpdateItemExcludesSelfFromCollision() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	item, err := models.CreateItem(user.ID, models.Item{CategoryID: category.ID, Nombre: "Yerba", Tipo: models.ItemTypeProduct})
	suite.Require().NoError(err)

	// Updating without renaming must not collide with itself
	_, err = models.UpdateItem(user.ID, item.ID, models.Item{Precio: decimal.NewFromFloat(1500)}, []any{"Precio"})
	suite.Assert().NoError(err)
}

func (suite *TestSuiteStandard) TestUpdateItemTypeChangeResetsFields() {
	user := suite.createTestUser(models.User{})
	product := suite.createTestCategory(models.Category{UserID: user.ID})
	service := suite.createTestCategory(models.Category{UserID: user.ID, Tipo: models.CategoryTypeService})

	item, err := models.CreateItem(user.ID, models.Item{
		CategoryID:   product.ID,
		Nombre:       "Yerba",
		Tipo:         models.ItemTypeProduct,
		Stock:        10,
		StockMinimo:  2,
		CodigoBarras: "779123",
	})
	suite.Require().NoError(err)

	_, err = models.UpdateItem(user.ID, item.ID, models.Item{
		Tipo:       models.ItemTypeService,
		CategoryID: service.ID,
	}, []any{"Tipo", "CategoryID"})
	suite.Require().NoError(err)

	var reloaded models.Item
	suite.Require().NoError(models.DB.First(&reloaded, "id = ?", item.ID).Error)
	suite.Assert().Equal(models.ItemTypeService, reloaded.Tipo)
	suite.Assert().Equal(int64(0), reloaded.Stock)
	suite.Assert().Equal(int64(0), reloaded.StockMinimo)
	suite.Assert().Equal("", reloaded.CodigoBarras)
}

func (suite *TestSuiteStandard) TestDeactivateItemKeepsRow() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	item, err := models.CreateItem(user.ID, models.Item{CategoryID: category.ID, Nombre: "Yerba", Tipo: models.ItemTypeProduct})
	suite.Require().NoError(err)

	deactivated, err := models.DeactivateItem(user.ID, item.ID)
	suite.Require().NoError(err)
	suite.Assert().False(deactivated.Activo)

	var count int64
	models.DB.Model(&models.Item{}).Count(&count)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestItemLowStock() {
	low := models.Item{Tipo: models.ItemTypeProduct, Stock: 2, StockMinimo: 2}
	ok := models.Item{Tipo: models.ItemTypeProduct, Stock: 3, StockMinimo: 2}
	service := models.Item{Tipo: models.ItemTypeService, Stock: 0, StockMinimo: 0}

	suite.Assert().True(low.LowStock())
	suite.Assert().False(ok.LowStock())
	suite.Assert().False(service.LowStock())
}
