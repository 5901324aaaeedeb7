package customer

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var ErrEmptyCustomerName = errors.New("customer name empty")

type Customer struct {
	ID    uint   `json:"id" gorm:"primarykey"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

type CustomerService interface {
	CustomerCreate(ctx context.Context, payload *CustomerCreatePayload) (*Customer, error)
	CustomerList(ctx context.Context) ([]*Customer, error)
}

type CustomerCreatePayload struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

type customerServiceImpl struct {
	db *gorm.DB
}

// CustomerCreate implements CustomerService.
func (c *customerServiceImpl) CustomerCreate(ctx context.Context, payload *CustomerCreatePayload) (*Customer, error) {
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return nil, ErrEmptyCustomerName
	}

	cust := Customer{
		Name:  name,
		Phone: payload.Phone,
	}

	err := c.db.WithContext(ctx).Create(&cust).Error
	if err != nil {
		return nil, err
	}

	return &cust, nil
}

// CustomerList implements CustomerService.
func (c *customerServiceImpl) CustomerList(ctx context.Context) ([]*Customer, error) {
	customers := []*Customer{}

	err := c.db.WithContext(ctx).
		Model(&Customer{}).
		Order("name asc").
		Find(&customers).
		Error

	if err != nil {
		return customers, err
	}

	return customers, nil
}

func NewCustomerService(db *gorm.DB) CustomerService {
	return &customerServiceImpl{
		db: db,
	}
}
