package usecase

import (
	"context"

	"octo-mock/internal/domain/product"
)

type ProductUseCase interface {
	GetProducts(ctx context.Context) []*product.Product
	GetProduct(ctx context.Context, id string) (*product.Product, error)
}

type productUseCaseImpl struct {
	products ProductRepository
}

func NewProductUseCase(products ProductRepository) ProductUseCase {
	return &productUseCaseImpl{products: products}
}

func (u *productUseCaseImpl) GetProducts(ctx context.Context) []*product.Product {
	return u.products.All(ctx)
}

func (u *productUseCaseImpl) GetProduct(ctx context.Context, id string) (*product.Product, error) {
	return u.products.FindByID(ctx, id)
}
