package repo

import (
	"errors"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	// SearchByName returns every product whose name contains the given
	// substring. An empty substring matches all products.
	SearchByName(substring string) ([]models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error
}

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")
