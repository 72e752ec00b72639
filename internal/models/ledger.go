package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// This file implements the ledger unit of work: every transaction
// create, update and delete persists the transaction row, the account
// balance delta and the item stock delta together or not at all.
//
// Saldo and Stock are only ever mutated here, as server-side increments.

// FirstOwned returns the resource of type T with the given ID if it
// belongs to the user. A resource that does not exist and a resource
// owned by someone else are indistinguishable for the caller.
func FirstOwned[T Account | Category | Item | Transaction](db *gorm.DB, userID, id uuid.UUID) (T, error) {
	var resource T
	err := db.Where("user_id = ?", userID).First(&resource, "id = ?", id).Error

	return resource, err
}

// applySaldoDelta applies a signed amount to the account balance as a
// single server-side increment. Reading the balance into the
// application and writing it back would lose concurrent updates.
func applySaldoDelta(tx *gorm.DB, accountID uuid.UUID, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}

	result := tx.Model(&Account{}).Where("id = ?", accountID).Updates(map[string]any{
		"saldo":      gorm.Expr("saldo + ?", delta),
		"updated_at": time.Now().In(time.UTC),
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w cuenta que coincida con la búsqueda", ErrResourceNotFound)
	}

	return nil
}

// adjustStock changes the item stock by delta units, also as a
// server-side increment co-located with the balance update.
func adjustStock(tx *gorm.DB, itemID uuid.UUID, delta int64) error {
	result := tx.Model(&Item{}).Where("id = ?", itemID).Updates(map[string]any{
		"stock":      gorm.Expr("stock + ?", delta),
		"updated_at": time.Now().In(time.UTC),
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w artículo que coincida con la búsqueda", ErrResourceNotFound)
	}

	return nil
}

// activeAccount fetches an account that is owned by the user and active.
func activeAccount(db *gorm.DB, userID, id uuid.UUID) (Account, error) {
	var account Account
	err := db.First(&account, "id = ? AND user_id = ? AND activa = ?", id, userID, true).Error
	if err != nil {
		return Account{}, ErrAccountInactive
	}

	return account, nil
}

func activeCategory(db *gorm.DB, userID, id uuid.UUID) (Category, error) {
	var category Category
	err := db.First(&category, "id = ? AND user_id = ? AND activa = ?", id, userID, true).Error
	if err != nil {
		return Category{}, ErrCategoryInactive
	}

	return category, nil
}

func activeItem(db *gorm.DB, userID, id uuid.UUID) (Item, error) {
	var item Item
	err := db.First(&item, "id = ? AND user_id = ? AND activo = ?", id, userID, true).Error
	if err != nil {
		return Item{}, ErrItemInactive
	}

	return item, nil
}

// CreateTransaction validates all referenced resources and business
// rules, then persists the transaction with its balance and stock
// effects as one atomic unit.
//
// Validation happens before any mutation begins. Once the enclosing
// database transaction starts, only storage failures can occur and they
// roll back all effects.
func CreateTransaction(userID uuid.UUID, transaction Transaction) (Transaction, error) {
	if !transaction.Monto.IsPositive() {
		return Transaction{}, ErrAmountNotPositive
	}

	account, err := activeAccount(DB, userID, transaction.AccountID)
	if err != nil {
		return Transaction{}, err
	}

	if _, err := activeCategory(DB, userID, transaction.CategoryID); err != nil {
		return Transaction{}, err
	}

	var item *Item
	if transaction.ItemID != nil {
		found, err := activeItem(DB, userID, *transaction.ItemID)
		if err != nil {
			return Transaction{}, err
		}
		item = &found
	}

	// A product sale moves exactly one unit of stock. There is no
	// quantity field, multi-unit sales are recorded as multiple
	// transactions.
	productSale := transaction.IsProductSale(item)
	if productSale && item.Stock <= 0 {
		return Transaction{}, ErrInsufficientStock
	}

	if transaction.Tipo == TransactionTypeExpense && account.Saldo.LessThan(transaction.Monto) {
		return Transaction{}, ErrInsufficientBalance
	}

	transaction.UserID = userID

	err = DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}

		if err := applySaldoDelta(tx, transaction.AccountID, SaldoDelta(transaction.Tipo, transaction.Monto)); err != nil {
			return err
		}

		if productSale {
			return adjustStock(tx, *transaction.ItemID, -1)
		}

		return nil
	})
	if err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}

// UpdateTransaction applies a partial update to a transaction. The
// balance effect of the stored transaction is reverted on its original
// account and the new effect is applied to the current account, both as
// atomic increments inside one database transaction.
//
// Stock is not reconciled on update, only Create and Delete move stock.
// This mirrors the behavior of the system this one replaces and is a
// known limitation.
func UpdateTransaction(userID, id uuid.UUID, update Transaction, fields []any) (Transaction, error) {
	transaction, err := FirstOwned[Transaction](DB, userID, id)
	if err != nil {
		return Transaction{}, err
	}

	if len(fields) == 0 {
		return transaction, nil
	}

	newTipo := transaction.Tipo
	if slices.Contains(fields, any("Tipo")) {
		newTipo = update.Tipo
	}

	newMonto := transaction.Monto
	if slices.Contains(fields, any("Monto")) {
		newMonto = update.Monto
	}

	if !newMonto.IsPositive() {
		return Transaction{}, ErrAmountNotPositive
	}

	newAccountID := transaction.AccountID
	if slices.Contains(fields, any("AccountID")) && update.AccountID != transaction.AccountID {
		if _, err := activeAccount(DB, userID, update.AccountID); err != nil {
			return Transaction{}, err
		}
		newAccountID = update.AccountID
	}

	if slices.Contains(fields, any("CategoryID")) && update.CategoryID != transaction.CategoryID {
		if _, err := activeCategory(DB, userID, update.CategoryID); err != nil {
			return Transaction{}, err
		}
	}

	if slices.Contains(fields, any("ItemID")) && update.ItemID != nil {
		if _, err := activeItem(DB, userID, *update.ItemID); err != nil {
			return Transaction{}, err
		}
	}

	err = DB.Transaction(func(tx *gorm.DB) error {
		// Revert the stored effect on the original account before
		// touching the row, then apply the new effect. Net result is
		// as if the old transaction never existed.
		if err := applySaldoDelta(tx, transaction.AccountID, SaldoDelta(transaction.Tipo, transaction.Monto).Neg()); err != nil {
			return err
		}

		if err := tx.Model(&transaction).Select("", fields...).Updates(update).Error; err != nil {
			return err
		}

		return applySaldoDelta(tx, newAccountID, SaldoDelta(newTipo, newMonto))
	})
	if err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}

// DeleteTransaction reverts the transaction's balance effect, restores
// the stock unit if it was a product sale, and removes the row, all in
// one atomic unit.
func DeleteTransaction(userID, id uuid.UUID) error {
	transaction, err := FirstOwned[Transaction](DB, userID, id)
	if err != nil {
		return err
	}

	var item *Item
	if transaction.ItemID != nil {
		var found Item
		if err := DB.First(&found, "id = ?", *transaction.ItemID).Error; err == nil {
			item = &found
		}
	}

	productSale := transaction.IsProductSale(item)

	return DB.Transaction(func(tx *gorm.DB) error {
		if err := applySaldoDelta(tx, transaction.AccountID, SaldoDelta(transaction.Tipo, transaction.Monto).Neg()); err != nil {
			return err
		}

		if productSale {
			if err := adjustStock(tx, *transaction.ItemID, 1); err != nil {
				return err
			}
		}

		return tx.Delete(&transaction).Error
	})
}

// CreateAccount persists a new account. A positive initial balance is
// seeded through a synthetic income transaction so that the account
// balance and the transaction set stay consistent from the start.
func CreateAccount(userID uuid.UUID, account Account, saldoInicial decimal.Decimal) (Account, error) {
	account.UserID = userID
	account.Activa = true

	if !saldoInicial.IsPositive() {
		err := DB.Create(&account).Error
		return account, err
	}

	account.Saldo = saldoInicial

	err := DB.Transaction(func(tx *gorm.DB) error {
		category, err := initialBalanceCategory(tx, userID)
		if err != nil {
			return err
		}

		if err := tx.Create(&account).Error; err != nil {
			return err
		}

		return tx.Create(&Transaction{
			UserID:      userID,
			AccountID:   account.ID,
			CategoryID:  category.ID,
			Tipo:        TransactionTypeIncome,
			Monto:       saldoInicial,
			Descripcion: "Saldo inicial de la cuenta",
			Fecha:       time.Now().In(time.UTC),
		}).Error
	})
	if err != nil {
		return Account{}, err
	}

	return account, nil
}

// initialBalanceCategory finds or creates the category used for
// initial balance seed transactions.
func initialBalanceCategory(tx *gorm.DB, userID uuid.UUID) (Category, error) {
	var category Category
	err := tx.First(&category, "user_id = ? AND nombre = ? AND tipo = ?", userID, "Saldo Inicial", CategoryTypeProduct).Error
	if err == nil {
		return category, nil
	}

	category = Category{
		UserID: userID,
		Nombre: "Saldo Inicial",
		Tipo:   CategoryTypeProduct,
		Color:  "#52c41a",
		Activa: true,
	}
	err = tx.Create(&category).Error

	return category, err
}

// DeleteAccount removes an account. Accounts referenced by any
// transaction cannot be deleted, the ledger would lose its history.
func DeleteAccount(userID, id uuid.UUID) error {
	account, err := FirstOwned[Account](DB, userID, id)
	if err != nil {
		return err
	}

	count, err := account.TransactionCount(DB)
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrAccountReferenced
	}

	return DB.Delete(&account).Error
}
