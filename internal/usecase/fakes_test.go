package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/watch-store/internal/domain"
	"github.com/DRSN-tech/watch-store/pkg/e"
	"github.com/DRSN-tech/watch-store/pkg/logger"
)

var errStore = errors.New("store is down")

// memStore общее in-memory хранилище для фейковых репозиториев.
type memStore struct {
	mu sync.Mutex

	nextID          int64
	brands          []domain.Brand
	categories      []domain.Category
	users           []domain.User
	products        []domain.Product
	productImages   []domain.ProductImage
	accessories     []domain.Accessory
	accessoryImages []domain.AccessoryImage
	likes           []domain.Like
	outbox          []OutboxEvent

	// failOn задаёт операцию, которая вернёт errStore, например "productImage.Create".
	failOn string
}

type memSnapshot struct {
	nextID          int64
	products        []domain.Product
	productImages   []domain.ProductImage
	accessories     []domain.Accessory
	accessoryImages []domain.AccessoryImage
	outbox          []OutboxEvent
}

func newMemStore() *memStore {
	return &memStore{nextID: 100}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) fail(op string) error {
	if s.failOn == op {
		return errStore
	}
	return nil
}

func (s *memStore) addBrand(name string) domain.Brand {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := domain.Brand{ID: s.id(), Name: name, CreatedAt: time.Now()}
	s.brands = append(s.brands, b)
	return b
}

func (s *memStore) addCategory(name string) domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := domain.Category{ID: s.id(), Name: name, CreatedAt: time.Now()}
	s.categories = append(s.categories, c)
	return c
}

func (s *memStore) addUser(name string) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := domain.User{ID: s.id(), Name: name, Email: name + "@example.com", CreatedAt: time.Now()}
	s.users = append(s.users, u)
	return u
}

func (s *memStore) addProduct(p domain.Product) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.id()
	s.products = append(s.products, p)
	return p
}

func (s *memStore) addAccessory(a domain.Accessory) domain.Accessory {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.id()
	s.accessories = append(s.accessories, a)
	return a
}

func (s *memStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return memSnapshot{
		nextID:          s.nextID,
		products:        slices.Clone(s.products),
		productImages:   slices.Clone(s.productImages),
		accessories:     slices.Clone(s.accessories),
		accessoryImages: slices.Clone(s.accessoryImages),
		outbox:          slices.Clone(s.outbox),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID = snap.nextID
	s.products = snap.products
	s.productImages = snap.productImages
	s.accessories = snap.accessories
	s.accessoryImages = snap.accessoryImages
	s.outbox = snap.outbox
}

func (s *memStore) counts() (products, productImages, accessories, accessoryImages, outbox int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products), len(s.productImages), len(s.accessories), len(s.accessoryImages), len(s.outbox)
}

// BRANDS

type fakeBrandRepo struct{ s *memStore }

func (r fakeBrandRepo) Create(_ context.Context, brand *domain.Brand) (*domain.Brand, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("brand.Create"); err != nil {
		return nil, err
	}
	for _, b := range r.s.brands {
		if b.Name == brand.Name {
			return nil, e.ErrDuplicate
		}
	}
	saved := *brand
	saved.ID = r.s.id()
	saved.CreatedAt = time.Now()
	r.s.brands = append(r.s.brands, saved)
	return &saved, nil
}

func (r fakeBrandRepo) FindByID(_ context.Context, id int64) (*domain.Brand, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("brand.FindByID"); err != nil {
		return nil, err
	}
	for _, b := range r.s.brands {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, e.ErrRecordNotFound
}

func (r fakeBrandRepo) FindFirstByName(_ context.Context, name string) (*domain.Brand, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.brands {
		if strings.Contains(strings.ToLower(b.Name), strings.ToLower(name)) {
			return &b, nil
		}
	}
	return nil, e.ErrRecordNotFound
}

func (r fakeBrandRepo) List(_ context.Context) ([]domain.Brand, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return slices.Clone(r.s.brands), nil
}

// CATEGORIES

type fakeCategoryRepo struct{ s *memStore }

func (r fakeCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.categories {
		if c.Name == category.Name {
			return nil, e.ErrDuplicate
		}
	}
	saved := *category
	saved.ID = r.s.id()
	r.s.categories = append(r.s.categories, saved)
	return &saved, nil
}

func (r fakeCategoryRepo) FindByID(_ context.Context, id int64) (*domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, e.ErrRecordNotFound
}

func (r fakeCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return slices.Clone(r.s.categories), nil
}

// PRODUCTS

type fakeProductRepo struct{ s *memStore }

func (r fakeProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("product.Create"); err != nil {
		return nil, err
	}
	saved := *product
	saved.ID = r.s.id()
	saved.CreatedAt = time.Now()
	r.s.products = append(r.s.products, saved)
	return &saved, nil
}

func (r fakeProductRepo) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, e.ErrRecordNotFound
}

func (r fakeProductRepo) ListWithRelations(_ context.Context) ([]domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("product.List"); err != nil {
		return nil, err
	}
	return r.where(func(domain.Product) bool { return true }), nil
}

func (r fakeProductRepo) FindByBrandID(_ context.Context, brandID int64) ([]domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.where(func(p domain.Product) bool { return p.BrandID == brandID }), nil
}

func (r fakeProductRepo) SearchByName(_ context.Context, name string) ([]domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.where(func(p domain.Product) bool { return strings.Contains(p.Name, name) }), nil
}

func (r fakeProductRepo) FilterByGender(_ context.Context, gender string) ([]domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.where(func(p domain.Product) bool { return strings.Contains(p.Gender, gender) }), nil
}

// where возвращает nil, если ничего не найдено, как это делает pgx-репозиторий.
func (r fakeProductRepo) where(match func(domain.Product) bool) []domain.Product {
	var res []domain.Product
	for _, p := range r.s.products {
		if match(p) {
			res = append(res, p)
		}
	}
	return res
}

type fakeProductImageRepo struct{ s *memStore }

func (r fakeProductImageRepo) Create(_ context.Context, image *domain.ProductImage) (*domain.ProductImage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("productImage.Create"); err != nil {
		return nil, err
	}
	saved := *image
	saved.ID = r.s.id()
	r.s.productImages = append(r.s.productImages, saved)
	return &saved, nil
}

// ACCESSORIES

type fakeAccessoryRepo struct{ s *memStore }

func (r fakeAccessoryRepo) Create(_ context.Context, accessory *domain.Accessory) (*domain.Accessory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("accessory.Create"); err != nil {
		return nil, err
	}
	saved := *accessory
	saved.ID = r.s.id()
	r.s.accessories = append(r.s.accessories, saved)
	return &saved, nil
}

func (r fakeAccessoryRepo) ListWithImages(_ context.Context) ([]domain.Accessory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.where(func(domain.Accessory) bool { return true }), nil
}

func (r fakeAccessoryRepo) SearchByName(_ context.Context, name string) ([]domain.Accessory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.where(func(a domain.Accessory) bool { return strings.Contains(a.Name, name) }), nil
}

func (r fakeAccessoryRepo) FilterByColor(_ context.Context, color string) ([]domain.Accessory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("accessory.FilterByColor"); err != nil {
		return nil, err
	}
	return r.where(func(a domain.Accessory) bool { return a.Color == color }), nil
}

func (r fakeAccessoryRepo) where(match func(domain.Accessory) bool) []domain.Accessory {
	var res []domain.Accessory
	for _, a := range r.s.accessories {
		if match(a) {
			res = append(res, a)
		}
	}
	return res
}

type fakeAccessoryImageRepo struct{ s *memStore }

func (r fakeAccessoryImageRepo) Create(_ context.Context, image *domain.AccessoryImage) (*domain.AccessoryImage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("accessoryImage.Create"); err != nil {
		return nil, err
	}
	saved := *image
	saved.ID = r.s.id()
	r.s.accessoryImages = append(r.s.accessoryImages, saved)
	return &saved, nil
}

// USERS & LIKES

type fakeUserRepo struct{ s *memStore }

func (r fakeUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, e.ErrRecordNotFound
}

type fakeLikeRepo struct{ s *memStore }

func (r fakeLikeRepo) Upsert(_ context.Context, like *domain.Like) (*domain.Like, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := time.Now()
	for i, l := range r.s.likes {
		if l.UserID == like.UserID && l.ProductID == like.ProductID {
			r.s.likes[i].LikeCount = like.LikeCount
			r.s.likes[i].UpdatedAt = &now
			saved := r.s.likes[i]
			return &saved, nil
		}
	}
	saved := *like
	saved.ID = r.s.id()
	saved.CreatedAt = now
	r.s.likes = append(r.s.likes, saved)
	return &saved, nil
}

// OUTBOX

type fakeOutboxRepo struct{ s *memStore }

func (r fakeOutboxRepo) Create(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("outbox.Create"); err != nil {
		return nil, err
	}
	saved := *event
	saved.ID = r.s.id()
	r.s.outbox = append(r.s.outbox, saved)
	return &saved, nil
}

func (r fakeOutboxRepo) GetAndMarkAsProcessing(_ context.Context, limit int) ([]*OutboxEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var res []*OutboxEvent
	for i := range r.s.outbox {
		if len(res) == limit {
			break
		}
		if r.s.outbox[i].Status == Pending {
			r.s.outbox[i].Status = Processing
			ev := r.s.outbox[i]
			res = append(res, &ev)
		}
	}
	return res, nil
}

func (r fakeOutboxRepo) MarkAsProcessed(_ context.Context, id int64) error {
	return r.setStatus(id, Processed)
}

func (r fakeOutboxRepo) MarkAsPending(_ context.Context, id int64) error {
	return r.setStatus(id, Pending)
}

func (r fakeOutboxRepo) MarkAsFailed(_ context.Context, id int64) error {
	return r.setStatus(id, Failed)
}

func (r fakeOutboxRepo) setStatus(id int64, status OutboxStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.outbox {
		if r.s.outbox[i].ID == id {
			r.s.outbox[i].Status = status
			return nil
		}
	}
	return e.ErrRecordNotFound
}

// fakeTxManager откатывает изменения memStore, если fn вернула ошибку.
type fakeTxManager struct {
	s     *memStore
	calls int
}

func (t *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	snap := t.s.snapshot()
	if err := fn(ctx); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

// IMAGES

type fakeImages struct {
	mu      sync.Mutex
	res     *UploadImageRes
	err     error
	uploads []*UploadImageReq
	cleaned []string
}

func (f *fakeImages) UploadImage(_ context.Context, req *UploadImageReq) (*UploadImageRes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, req)
	if f.err != nil {
		return nil, f.err
	}
	if f.res != nil {
		return f.res, nil
	}
	key := req.Folder + "/image.png"
	return NewUploadImageRes(key, "http://minio.local/catalog/"+key), nil
}

func (f *fakeImages) CleanupImages(keys []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleaned = append(f.cleaned, keys...)
}

func (f *fakeImages) uploadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.uploads)
}

// CACHE

type fakeCache struct {
	mu             sync.Mutex
	products       []domain.Product
	accessories    []domain.Accessory
	productsVer    int64
	accessoriesVer int64
	err            error
	deletes        int
	sets           int
	// beforeSet выполняется перед фоновой записью списка, вне блокировки.
	beforeSet func()
}

func (c *fakeCache) GetProducts(_ context.Context) ([]domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	if c.products == nil {
		return nil, e.ErrCacheMiss
	}
	return c.products, nil
}

func (c *fakeCache) ProductsVersion(_ context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.productsVer, c.err
}

func (c *fakeCache) SetProducts(_ context.Context, version int64, products []domain.Product) error {
	c.runBeforeSet()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	if version != c.productsVer {
		return e.ErrCacheStale
	}
	c.products = products
	return nil
}

func (c *fakeCache) DeleteProducts(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletes++
	c.productsVer++
	c.products = nil
	return nil
}

func (c *fakeCache) GetAccessories(_ context.Context) ([]domain.Accessory, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	if c.accessories == nil {
		return nil, e.ErrCacheMiss
	}
	return c.accessories, nil
}

func (c *fakeCache) AccessoriesVersion(_ context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessoriesVer, c.err
}

func (c *fakeCache) SetAccessories(_ context.Context, version int64, accessories []domain.Accessory) error {
	c.runBeforeSet()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	if version != c.accessoriesVer {
		return e.ErrCacheStale
	}
	c.accessories = accessories
	return nil
}

func (c *fakeCache) DeleteAccessories(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletes++
	c.accessoriesVer++
	c.accessories = nil
	return nil
}

func (c *fakeCache) runBeforeSet() {
	c.mu.Lock()
	hook := c.beforeSet
	c.beforeSet = nil
	c.mu.Unlock()
	if hook != nil {
		hook()
	}
}

func (c *fakeCache) setCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sets
}

func (c *fakeCache) cachedAccessories() []domain.Accessory {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessories
}

func (c *fakeCache) cachedProducts() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.products
}

func (c *fakeCache) deleteCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deletes
}

// env собирает usecase-ы поверх одного memStore.
type env struct {
	store     *memStore
	images    *fakeImages
	cache     *fakeCache
	tx        *fakeTxManager
	products  *ProductUseCase
	accessory *AccessoryUseCase
	catalog   *CatalogUseCase
	likes     *LikeUseCase
	brand     domain.Brand
	category  domain.Category
}

func newEnv(atomic bool) *env {
	s := newMemStore()
	images := &fakeImages{}
	cache := &fakeCache{}
	tx := &fakeTxManager{s: s}
	log := logger.NewNop()

	validator := NewReferenceValidator(fakeBrandRepo{s}, fakeCategoryRepo{s})
	workflow := NewCreationWorkflow(validator, images, fakeOutboxRepo{s}, tx, atomic, log)

	return &env{
		store:     s,
		images:    images,
		cache:     cache,
		tx:        tx,
		products:  NewProductUC(workflow, fakeProductRepo{s}, fakeProductImageRepo{s}, fakeBrandRepo{s}, cache, log),
		accessory: NewAccessoryUC(workflow, fakeAccessoryRepo{s}, fakeAccessoryImageRepo{s}, cache, log),
		catalog:   NewCatalogUC(fakeBrandRepo{s}, fakeCategoryRepo{s}),
		likes:     NewLikeUC(fakeUserRepo{s}, fakeProductRepo{s}, fakeLikeRepo{s}),
		brand:     s.addBrand("Rolex"),
		category:  s.addCategory("Luxury"),
	}
}

func pngFile() *ImageFile {
	return NewImageFile([]byte{0x89, 'P', 'N', 'G'}, "image/png", 4, "watch.png")
}
