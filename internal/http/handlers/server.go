package handlers

import (
	repo "github.com/rogerio-castellano/product-catalog/internal/repo"
)

var (
	productRepo repo.ProductRepository
	userRepo    repo.UserRepository
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}
