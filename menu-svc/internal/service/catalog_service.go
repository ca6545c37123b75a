package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"restaurant-ordering/menu-svc/internal/domain"
)

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidDish     = errors.New("invalid dish")
)

// Upload is an image received with a catalog form.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type CategoryService struct {
	repo  CategoryRepository
	media MediaStore
}

func NewCategoryService(repo CategoryRepository, media MediaStore) *CategoryService {
	return &CategoryService{repo: repo, media: media}
}

func (s *CategoryService) Create(ctx context.Context, category *domain.Category, image *Upload) error {
	if strings.TrimSpace(category.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCategory)
	}
	stored, err := storeImage(ctx, s.media, image, &category.ImageURL)
	if err != nil {
		return err
	}
	return discardOnError(ctx, s.media, stored, s.repo.CreateCategory(ctx, category))
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int) (*domain.Category, error) {
	return s.repo.GetCategory(ctx, id)
}

// Update keeps the stored image unless a new one is uploaded.
func (s *CategoryService) Update(ctx context.Context, category *domain.Category, image *Upload) error {
	if strings.TrimSpace(category.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCategory)
	}
	stored, err := storeImage(ctx, s.media, image, &category.ImageURL)
	if err != nil {
		return err
	}
	return discardOnError(ctx, s.media, stored, s.repo.UpdateCategory(ctx, category))
}

// Delete removes the category together with its dishes.
func (s *CategoryService) Delete(ctx context.Context, id int) error {
	rows, err := s.repo.DeleteCategory(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

type DishService struct {
	repo       DishRepository
	categories CategoryRepository
	media      MediaStore
}

func NewDishService(repo DishRepository, categories CategoryRepository, media MediaStore) *DishService {
	return &DishService{repo: repo, categories: categories, media: media}
}

func (s *DishService) Create(ctx context.Context, dish *domain.Dish, image *Upload) error {
	if err := s.validate(ctx, dish); err != nil {
		return err
	}
	stored, err := storeImage(ctx, s.media, image, &dish.ImageURL)
	if err != nil {
		return err
	}
	return discardOnError(ctx, s.media, stored, s.repo.CreateDish(ctx, dish))
}

func (s *DishService) List(ctx context.Context, categoryID int) ([]domain.Dish, error) {
	return s.repo.ListDishes(ctx, categoryID)
}

func (s *DishService) Get(ctx context.Context, id int) (*domain.Dish, error) {
	return s.repo.GetDish(ctx, id)
}

func (s *DishService) Update(ctx context.Context, dish *domain.Dish, image *Upload) error {
	if err := s.validate(ctx, dish); err != nil {
		return err
	}
	stored, err := storeImage(ctx, s.media, image, &dish.ImageURL)
	if err != nil {
		return err
	}
	return discardOnError(ctx, s.media, stored, s.repo.UpdateDish(ctx, dish))
}

// Delete leaves orders untouched; their items keep pointing at the removed id.
func (s *DishService) Delete(ctx context.Context, id int) error {
	rows, err := s.repo.DeleteDish(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrDishNotFound
	}
	return nil
}

func (s *DishService) validate(ctx context.Context, dish *domain.Dish) error {
	if strings.TrimSpace(dish.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDish)
	}
	if dish.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidDish)
	}
	if dish.CategoryID <= 0 {
		return fmt.Errorf("%w: category is required", ErrInvalidDish)
	}
	if _, err := s.categories.GetCategory(ctx, dish.CategoryID); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return fmt.Errorf("%w: category %d does not exist", ErrInvalidDish, dish.CategoryID)
		}
		return err
	}
	return nil
}

// storeImage saves the upload, if any, and points target at it. It returns
// the stored path, or "" when nothing was uploaded.
func storeImage(ctx context.Context, media MediaStore, image *Upload, target *string) (string, error) {
	if image == nil || media == nil {
		return "", nil
	}
	path, err := media.Save(ctx, image.Filename, image.ContentType, image.Body)
	if err != nil {
		return "", err
	}
	*target = path
	return path, nil
}

// discardOnError removes a freshly stored image when the row it belongs to
// could not be written, and passes writeErr through.
func discardOnError(ctx context.Context, media MediaStore, stored string, writeErr error) error {
	if writeErr == nil || stored == "" {
		return writeErr
	}
	if err := media.Delete(ctx, stored); err != nil {
		log.Printf("[menu-svc] WARNING: failed to remove orphaned upload %s: %v", stored, err)
	}
	return writeErr
}
