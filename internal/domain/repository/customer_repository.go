package repository

import "github.com/vishal7007/MobileShop-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByPhone(phone string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
}
