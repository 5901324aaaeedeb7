package ledger_core

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type CreateAccount interface {
	Create(name string, acctype AccountType) (*Account, error)
}

type createAccountImpl struct {
	tx *gorm.DB
}

// Create implements CreateAccount.
func (c *createAccountImpl) Create(name string, acctype AccountType) (*Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyAccountName
	}

	if !acctype.Valid() {
		return nil, &ErrAccountTypeInvalid{Type: acctype}
	}

	acc := Account{
		Name:    name,
		Type:    acctype,
		Balance: 0,
		Created: time.Now(),
	}

	err := c.tx.Create(&acc).Error
	if err != nil {
		return nil, err
	}

	return &acc, nil
}

func NewCreateAccount(tx *gorm.DB) CreateAccount {
	return &createAccountImpl{
		tx: tx,
	}
}
