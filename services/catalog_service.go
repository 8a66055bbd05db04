package services

import (
	"store/entity"
	"store/repository"
	"store/utils"
)

const uploadDir = "uploads"

// CatalogService backs both the storefront browse pages and the admin
// back-office CRUD.
type CatalogService struct {
	ProductRepo  *repository.ProductRepository
	CategoryRepo *repository.CategoryRepository
}

func NewCatalogService(pr *repository.ProductRepository, cr *repository.CategoryRepository) *CatalogService {
	return &CatalogService{ProductRepo: pr, CategoryRepo: cr}
}

type ProductIn struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Active      bool    `json:"active"`
	Featured    bool    `json:"featured"`
	CategoryID  uint    `json:"categoryId" binding:"required"`
	ImageBase64 string  `json:"imageBase64"`
}

type CategoryIn struct {
	Name string `json:"name" binding:"required"`
	Url  string `json:"url" binding:"required"`
}

// Storefront: active products only, optional category url and search query.
func (s *CatalogService) Browse(categoryURL, query string) ([]entity.Product, error) {
	return s.ProductRepo.List(repository.ProductFilter{
		ActiveOnly:  true,
		CategoryURL: categoryURL,
		Query:       query,
	})
}

func (s *CatalogService) Featured() ([]entity.Product, error) {
	return s.ProductRepo.List(repository.ProductFilter{ActiveOnly: true, Featured: true})
}

// GetProduct returns the product plus up to four active suggestions from the
// same category.
func (s *CatalogService) GetProduct(id uint) (*entity.Product, []entity.Product, error) {
	product, err := s.ProductRepo.FindByID(id)
	if err != nil {
		return nil, nil, err
	}
	similar, err := s.ProductRepo.Similar(product, 4)
	if err != nil {
		return nil, nil, err
	}
	return product, similar, nil
}

// Admin: all products regardless of active flag, optional category filter.
func (s *CatalogService) AdminProducts(categoryID uint) ([]entity.Product, error) {
	return s.ProductRepo.List(repository.ProductFilter{CategoryID: categoryID})
}

func (s *CatalogService) CreateProduct(in *ProductIn) (*entity.Product, error) {
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Active:      in.Active,
		Featured:    in.Featured,
		CategoryID:  in.CategoryID,
	}

	if in.ImageBase64 != "" {
		filename, err := utils.SaveBase64Image(in.ImageBase64, uploadDir)
		if err != nil {
			return nil, err
		}
		product.Image = filename
	}

	if err := s.ProductRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) UpdateProduct(id uint, in *ProductIn) (*entity.Product, error) {
	product, err := s.ProductRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if in.ImageBase64 != "" {
		filename, err := utils.SaveBase64Image(in.ImageBase64, uploadDir)
		if err != nil {
			return nil, err
		}
		product.Image = filename
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.Active = in.Active
	product.Featured = in.Featured
	product.CategoryID = in.CategoryID

	if err := s.ProductRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) DeleteProduct(id uint) error {
	return s.ProductRepo.Delete(id)
}

func (s *CatalogService) Categories() ([]entity.Category, error) {
	return s.CategoryRepo.List()
}

func (s *CatalogService) CategorySummaries() ([]repository.CategorySummary, error) {
	return s.CategoryRepo.ListSummaries()
}

func (s *CatalogService) CreateCategory(in *CategoryIn) (*entity.Category, error) {
	category := &entity.Category{Name: in.Name, Url: in.Url}
	if err := s.CategoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) UpdateCategory(id uint, in *CategoryIn) (*entity.Category, error) {
	category, err := s.CategoryRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	category.Name = in.Name
	category.Url = in.Url
	if err := s.CategoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) DeleteCategory(id uint) error {
	return s.CategoryRepo.Delete(id)
}
