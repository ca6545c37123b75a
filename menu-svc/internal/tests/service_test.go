package tests

import (
	"context"
	"errors"
	"strings"
	"testing"

	"restaurant-ordering/menu-svc/internal/domain"
	"restaurant-ordering/menu-svc/internal/mocks"
	"restaurant-ordering/menu-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		order        *domain.Order
		prepareMocks func(*mocks.OrderRepository, *mocks.DishRepository, *mocks.QRGenerator, *mocks.OrderPublisher)
		wantErr      error
	}{
		{
			name:  "success",
			order: &domain.Order{Total: dec("30"), Items: []domain.OrderItem{item(1, "A", 2, "10")}},
			prepareMocks: func(repo *mocks.OrderRepository, dishes *mocks.DishRepository, qr *mocks.QRGenerator, pub *mocks.OrderPublisher) {
				dishes.On("GetDish", ctx, 1).Return(&domain.Dish{ID: 1, Name: "A"}, nil).Once()
				repo.On("CreateOrder", ctx, mock.AnythingOfType("*domain.Order")).
					Run(func(args mock.Arguments) { args.Get(1).(*domain.Order).ID = 7 }).
					Return(nil).Once()
				qr.On("Generate", 7).Return([]byte("png"), nil).Once()
				repo.On("SaveQRCode", ctx, 7, []byte("png")).Return(nil).Once()
				pub.On("PublishOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Type == domain.EventOrderCreated && e.OrderID == 7 && !e.Timestamp.IsZero()
				})).Return(nil).Once()
			},
		},
		{
			name:  "publish failure does not fail the order",
			order: &domain.Order{Total: dec("5"), Items: []domain.OrderItem{item(2, "B", 1, "5")}},
			prepareMocks: func(repo *mocks.OrderRepository, dishes *mocks.DishRepository, qr *mocks.QRGenerator, pub *mocks.OrderPublisher) {
				dishes.On("GetDish", ctx, 2).Return(&domain.Dish{ID: 2, Name: "B"}, nil).Once()
				repo.On("CreateOrder", ctx, mock.Anything).Return(nil).Once()
				qr.On("Generate", 0).Return(nil, errors.New("encode failed")).Once()
				pub.On("PublishOrderEvent", ctx, mock.Anything).Return(errors.New("broker down")).Once()
			},
		},
		{
			name:         "no items",
			order:        &domain.Order{Total: dec("0")},
			prepareMocks: func(*mocks.OrderRepository, *mocks.DishRepository, *mocks.QRGenerator, *mocks.OrderPublisher) {},
			wantErr:      service.ErrInvalidOrder,
		},
		{
			name:         "zero quantity",
			order:        &domain.Order{Total: dec("1"), Items: []domain.OrderItem{item(1, "A", 0, "1")}},
			prepareMocks: func(*mocks.OrderRepository, *mocks.DishRepository, *mocks.QRGenerator, *mocks.OrderPublisher) {},
			wantErr:      service.ErrInvalidOrder,
		},
		{
			name:         "negative total",
			order:        &domain.Order{Total: dec("-1"), Items: []domain.OrderItem{item(1, "A", 1, "1")}},
			prepareMocks: func(*mocks.OrderRepository, *mocks.DishRepository, *mocks.QRGenerator, *mocks.OrderPublisher) {},
			wantErr:      service.ErrInvalidOrder,
		},
		{
			name:  "unknown dish",
			order: &domain.Order{Total: dec("1"), Items: []domain.OrderItem{item(9, "", 1, "1")}},
			prepareMocks: func(repo *mocks.OrderRepository, dishes *mocks.DishRepository, qr *mocks.QRGenerator, pub *mocks.OrderPublisher) {
				dishes.On("GetDish", ctx, 9).Return(nil, domain.ErrDishNotFound).Once()
			},
			wantErr: service.ErrInvalidOrder,
		},
		{
			name:  "database error",
			order: &domain.Order{Total: dec("1"), Items: []domain.OrderItem{item(1, "A", 1, "1")}},
			prepareMocks: func(repo *mocks.OrderRepository, dishes *mocks.DishRepository, qr *mocks.QRGenerator, pub *mocks.OrderPublisher) {
				dishes.On("GetDish", ctx, 1).Return(&domain.Dish{ID: 1, Name: "A"}, nil).Once()
				repo.On("CreateOrder", ctx, mock.Anything).Return(assert.AnError).Once()
			},
			wantErr: assert.AnError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			dishes := mocks.NewDishRepository(t)
			qr := mocks.NewQRGenerator(t)
			pub := mocks.NewOrderPublisher(t)
			svc := service.NewOrderService(repo, dishes, qr, pub)
			testCase.prepareMocks(repo, dishes, qr, pub)

			err := svc.Create(ctx, testCase.order)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusPending, testCase.order.Status)
			assert.Equal(t, svc.QRLink(testCase.order.ID), testCase.order.QRCode)
		})
	}
}

func TestOrderService_CreateFillsDishNamesFromCatalog(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewOrderRepository(t)
	dishes := mocks.NewDishRepository(t)
	pub := mocks.NewOrderPublisher(t)
	svc := service.NewOrderService(repo, dishes, nil, pub)

	order := &domain.Order{Total: dec("20"), Items: []domain.OrderItem{item(3, "", 2, "10")}}

	dishes.On("GetDish", ctx, 3).Return(&domain.Dish{ID: 3, Name: "Borscht"}, nil).Once()
	repo.On("CreateOrder", ctx, mock.MatchedBy(func(o *domain.Order) bool {
		return o.Items[0].DishName == "Borscht"
	})).Return(nil).Once()
	pub.On("PublishOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
		return len(e.Items) == 1 && e.Items[0].DishID == 3 && e.Items[0].DishName == "Borscht"
	})).Return(nil).Once()

	require.NoError(t, svc.Create(ctx, order))
	assert.Equal(t, "Borscht", order.Items[0].DishName)
}

func TestOrderService_SetStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		raw          string
		prepareMocks func(*mocks.OrderRepository, *mocks.OrderPublisher)
		wantStatus   domain.OrderStatus
		wantErr      error
	}{
		{
			name: "pending to processed",
			raw:  "processed",
			prepareMocks: func(repo *mocks.OrderRepository, pub *mocks.OrderPublisher) {
				repo.On("GetOrder", ctx, 1).Return(&domain.Order{ID: 1, Status: domain.StatusPending}, nil).Once()
				repo.On("UpdateOrderStatus", ctx, 1, domain.StatusProcessed).Return(nil).Once()
				pub.On("PublishOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Type == domain.EventOrderStatusChanged && e.Status == domain.StatusProcessed
				})).Return(nil).Once()
			},
			wantStatus: domain.StatusProcessed,
		},
		{
			name: "same status is a no-op",
			raw:  "processed",
			prepareMocks: func(repo *mocks.OrderRepository, pub *mocks.OrderPublisher) {
				repo.On("GetOrder", ctx, 1).Return(&domain.Order{ID: 1, Status: domain.StatusProcessed}, nil).Once()
			},
			wantStatus: domain.StatusProcessed,
		},
		{
			name: "processed is terminal",
			raw:  "pending",
			prepareMocks: func(repo *mocks.OrderRepository, pub *mocks.OrderPublisher) {
				repo.On("GetOrder", ctx, 1).Return(&domain.Order{ID: 1, Status: domain.StatusProcessed}, nil).Once()
			},
			wantErr: service.ErrInvalidTransition,
		},
		{
			name:         "unknown status",
			raw:          "shipped",
			prepareMocks: func(*mocks.OrderRepository, *mocks.OrderPublisher) {},
			wantErr:      domain.ErrInvalidStatus,
		},
		{
			name: "missing order",
			raw:  "processed",
			prepareMocks: func(repo *mocks.OrderRepository, pub *mocks.OrderPublisher) {
				repo.On("GetOrder", ctx, 1).Return(nil, domain.ErrOrderNotFound).Once()
			},
			wantErr: domain.ErrOrderNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			pub := mocks.NewOrderPublisher(t)
			svc := service.NewOrderService(repo, nil, nil, pub)
			testCase.prepareMocks(repo, pub)

			order, err := svc.SetStatus(ctx, 1, testCase.raw)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantStatus, order.Status)
		})
	}
}

func TestOrderService_GetQRCodeRegenerates(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewOrderRepository(t)
	qr := mocks.NewQRGenerator(t)
	svc := service.NewOrderService(repo, nil, qr, nil)

	repo.On("GetQRCode", ctx, 3).Return([]byte{}, nil).Once()
	qr.On("Generate", 3).Return([]byte("fresh"), nil).Once()
	repo.On("SaveQRCode", ctx, 3, []byte("fresh")).Return(nil).Once()

	code, err := svc.GetQRCode(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, []byte("fresh"), code)
}

func TestDefaultQRGenerator_Generate(t *testing.T) {
	png, err := service.DefaultQRGenerator{BaseURL: "http://localhost:8080"}.Generate(12)

	require.NoError(t, err)
	assert.True(t, len(png) > 8)
	assert.Equal(t, "\x89PNG", string(png[:4]))
}

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		category     *domain.Category
		image        *service.Upload
		prepareMocks func(*mocks.CategoryRepository, *mocks.MediaStore)
		wantImage    string
		wantErr      error
	}{
		{
			name:     "without image",
			category: &domain.Category{Name: "Soups"},
			prepareMocks: func(repo *mocks.CategoryRepository, media *mocks.MediaStore) {
				repo.On("CreateCategory", ctx, mock.AnythingOfType("*domain.Category")).Return(nil).Once()
			},
		},
		{
			name:     "with image",
			category: &domain.Category{Name: "Soups"},
			image:    &service.Upload{Filename: "soup.png", ContentType: "image/png", Body: strings.NewReader("img")},
			prepareMocks: func(repo *mocks.CategoryRepository, media *mocks.MediaStore) {
				media.On("Save", ctx, "soup.png", "image/png", mock.Anything).Return("/uploads/x.png", nil).Once()
				repo.On("CreateCategory", ctx, mock.AnythingOfType("*domain.Category")).Return(nil).Once()
			},
			wantImage: "/uploads/x.png",
		},
		{
			name:     "rejected image",
			category: &domain.Category{Name: "Soups"},
			image:    &service.Upload{Filename: "a.txt", ContentType: "text/plain", Body: strings.NewReader("x")},
			prepareMocks: func(repo *mocks.CategoryRepository, media *mocks.MediaStore) {
				media.On("Save", ctx, "a.txt", "text/plain", mock.Anything).Return("", domain.ErrUnsupportedMedia).Once()
			},
			wantErr: domain.ErrUnsupportedMedia,
		},
		{
			name:         "blank name",
			category:     &domain.Category{Name: "  "},
			prepareMocks: func(*mocks.CategoryRepository, *mocks.MediaStore) {},
			wantErr:      service.ErrInvalidCategory,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewCategoryRepository(t)
			media := mocks.NewMediaStore(t)
			svc := service.NewCategoryService(repo, media)
			testCase.prepareMocks(repo, media)

			err := svc.Create(ctx, testCase.category, testCase.image)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantImage, testCase.category.ImageURL)
		})
	}
}

func TestCategoryService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewCategoryRepository(t)
	svc := service.NewCategoryService(repo, nil)

	repo.On("DeleteCategory", ctx, 1).Return(int64(1), nil).Once()
	repo.On("DeleteCategory", ctx, 2).Return(int64(0), nil).Once()

	assert.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 2), domain.ErrCategoryNotFound)
}

func TestDishService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		dish         *domain.Dish
		prepareMocks func(*mocks.DishRepository, *mocks.CategoryRepository)
		wantErr      error
	}{
		{
			name: "valid dish",
			dish: &domain.Dish{Name: "Borscht", Price: dec("7.50"), CategoryID: 1},
			prepareMocks: func(repo *mocks.DishRepository, categories *mocks.CategoryRepository) {
				categories.On("GetCategory", ctx, 1).Return(&domain.Category{ID: 1}, nil).Once()
				repo.On("CreateDish", ctx, mock.AnythingOfType("*domain.Dish")).Return(nil).Once()
			},
		},
		{
			name:         "negative price",
			dish:         &domain.Dish{Name: "Borscht", Price: dec("-1"), CategoryID: 1},
			prepareMocks: func(*mocks.DishRepository, *mocks.CategoryRepository) {},
			wantErr:      service.ErrInvalidDish,
		},
		{
			name:         "missing category id",
			dish:         &domain.Dish{Name: "Borscht", Price: dec("1")},
			prepareMocks: func(*mocks.DishRepository, *mocks.CategoryRepository) {},
			wantErr:      service.ErrInvalidDish,
		},
		{
			name: "unknown category",
			dish: &domain.Dish{Name: "Borscht", Price: dec("1"), CategoryID: 9},
			prepareMocks: func(repo *mocks.DishRepository, categories *mocks.CategoryRepository) {
				categories.On("GetCategory", ctx, 9).Return(nil, domain.ErrCategoryNotFound).Once()
			},
			wantErr: service.ErrInvalidDish,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewDishRepository(t)
			categories := mocks.NewCategoryRepository(t)
			svc := service.NewDishService(repo, categories, nil)
			testCase.prepareMocks(repo, categories)

			err := svc.Create(ctx, testCase.dish, nil)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDishService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewDishRepository(t)
	svc := service.NewDishService(repo, nil, nil)

	repo.On("DeleteDish", ctx, 4).Return(int64(0), nil).Once()
	repo.On("DeleteDish", ctx, 5).Return(int64(0), assert.AnError).Once()

	assert.ErrorIs(t, svc.Delete(ctx, 4), domain.ErrDishNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 5), assert.AnError)
}

func TestCartService_AddDish(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewCartStore(t)
	dishes := mocks.NewDishRepository(t)
	svc := service.NewCartService(store, dishes, nil)

	dishes.On("GetDish", ctx, 1).Return(&domain.Dish{ID: 1, Name: "Pizza", Price: dec("9")}, nil).Once()
	store.On("LoadCart", ctx, "c1").Return(domain.NewCart("c1"), nil).Once()
	store.On("SaveCart", ctx, mock.MatchedBy(func(c *domain.Cart) bool {
		return len(c.Items) == 1 && c.Items[0].Quantity == 1
	})).Return(nil).Once()

	cart, err := svc.AddDish(ctx, "c1", 1)

	require.NoError(t, err)
	assert.Equal(t, "Pizza", cart.Items[0].Name)
}

func TestCartService_AddMissingDish(t *testing.T) {
	ctx := context.Background()
	dishes := mocks.NewDishRepository(t)
	svc := service.NewCartService(mocks.NewCartStore(t), dishes, nil)

	dishes.On("GetDish", ctx, 9).Return(nil, domain.ErrDishNotFound).Once()

	_, err := svc.AddDish(ctx, "c1", 9)

	assert.ErrorIs(t, err, domain.ErrDishNotFound)
}

func TestCartService_Checkout(t *testing.T) {
	ctx := context.Background()

	filled := func() *domain.Cart {
		cart := domain.NewCart("c1")
		cart.Add(domain.Dish{ID: 1, Name: "A", Price: dec("10")})
		cart.UpdateQuantity(1, 2)
		return cart
	}

	tests := []struct {
		name         string
		prepareMocks func(*mocks.CartStore, *mocks.OrderServiceInterface)
		wantOrder    bool
		wantErr      error
	}{
		{
			name: "success",
			prepareMocks: func(store *mocks.CartStore, orders *mocks.OrderServiceInterface) {
				store.On("LoadCart", ctx, "c1").Return(filled(), nil).Once()
				orders.On("Create", ctx, mock.MatchedBy(func(o *domain.Order) bool {
					return len(o.Items) == 1 && o.Total.Equal(dec("20"))
				})).Run(func(args mock.Arguments) { args.Get(1).(*domain.Order).ID = 11 }).Return(nil).Once()
				store.On("SaveCart", ctx, mock.MatchedBy(func(c *domain.Cart) bool { return len(c.Items) == 0 })).Return(nil).Once()
			},
			wantOrder: true,
		},
		{
			name: "empty cart",
			prepareMocks: func(store *mocks.CartStore, orders *mocks.OrderServiceInterface) {
				store.On("LoadCart", ctx, "c1").Return(domain.NewCart("c1"), nil).Once()
			},
			wantErr: service.ErrEmptyCart,
		},
		{
			name: "order rejected keeps cart",
			prepareMocks: func(store *mocks.CartStore, orders *mocks.OrderServiceInterface) {
				store.On("LoadCart", ctx, "c1").Return(filled(), nil).Once()
				orders.On("Create", ctx, mock.Anything).Return(service.ErrInvalidOrder).Once()
			},
			wantErr: service.ErrInvalidOrder,
		},
		{
			name: "cart save fails after order",
			prepareMocks: func(store *mocks.CartStore, orders *mocks.OrderServiceInterface) {
				store.On("LoadCart", ctx, "c1").Return(filled(), nil).Once()
				orders.On("Create", ctx, mock.Anything).Return(nil).Once()
				store.On("SaveCart", ctx, mock.Anything).Return(assert.AnError).Once()
			},
			wantOrder: true,
			wantErr:   assert.AnError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewCartStore(t)
			orders := mocks.NewOrderServiceInterface(t)
			svc := service.NewCartService(store, nil, orders)
			testCase.prepareMocks(store, orders)

			order, err := svc.Checkout(ctx, "c1")

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, testCase.wantOrder, order != nil)
		})
	}
}

func TestOrderService_GetQRCodeStoreFailureStillServesCode(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewOrderRepository(t)
	qr := mocks.NewQRGenerator(t)
	svc := service.NewOrderService(repo, nil, qr, nil)

	repo.On("GetQRCode", ctx, 4).Return(nil, nil).Once()
	qr.On("Generate", 4).Return([]byte("fresh"), nil).Once()
	repo.On("SaveQRCode", ctx, 4, []byte("fresh")).Return(assert.AnError).Once()

	code, err := svc.GetQRCode(ctx, 4)

	require.NoError(t, err)
	assert.Equal(t, []byte("fresh"), code)
}

func TestCatalog_FailedWriteRemovesNewImage(t *testing.T) {
	ctx := context.Background()
	upload := func() *service.Upload {
		return &service.Upload{Filename: "x.png", ContentType: "image/png", Body: strings.NewReader("img")}
	}

	t.Run("category update on missing id", func(t *testing.T) {
		repo := mocks.NewCategoryRepository(t)
		media := mocks.NewMediaStore(t)
		svc := service.NewCategoryService(repo, media)

		media.On("Save", ctx, "x.png", "image/png", mock.Anything).Return("/uploads/new.png", nil).Once()
		repo.On("UpdateCategory", ctx, mock.AnythingOfType("*domain.Category")).Return(domain.ErrCategoryNotFound).Once()
		media.On("Delete", ctx, "/uploads/new.png").Return(nil).Once()

		err := svc.Update(ctx, &domain.Category{ID: 42, Name: "Soups"}, upload())

		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})

	t.Run("dish create database error", func(t *testing.T) {
		repo := mocks.NewDishRepository(t)
		categories := mocks.NewCategoryRepository(t)
		media := mocks.NewMediaStore(t)
		svc := service.NewDishService(repo, categories, media)

		categories.On("GetCategory", ctx, 1).Return(&domain.Category{ID: 1}, nil).Once()
		media.On("Save", ctx, "x.png", "image/png", mock.Anything).Return("/uploads/new.png", nil).Once()
		repo.On("CreateDish", ctx, mock.AnythingOfType("*domain.Dish")).Return(assert.AnError).Once()
		media.On("Delete", ctx, "/uploads/new.png").Return(errors.New("already gone")).Once()

		err := svc.Create(ctx, &domain.Dish{Name: "Soup", Price: dec("3"), CategoryID: 1}, upload())

		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("successful write keeps image", func(t *testing.T) {
		repo := mocks.NewDishRepository(t)
		categories := mocks.NewCategoryRepository(t)
		media := mocks.NewMediaStore(t)
		svc := service.NewDishService(repo, categories, media)

		categories.On("GetCategory", ctx, 1).Return(&domain.Category{ID: 1}, nil).Once()
		media.On("Save", ctx, "x.png", "image/png", mock.Anything).Return("/uploads/new.png", nil).Once()
		repo.On("UpdateDish", ctx, mock.AnythingOfType("*domain.Dish")).Return(nil).Once()

		dish := &domain.Dish{ID: 5, Name: "Soup", Price: dec("3"), CategoryID: 1}
		require.NoError(t, svc.Update(ctx, dish, upload()))
		assert.Equal(t, "/uploads/new.png", dish.ImageURL)
		media.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
