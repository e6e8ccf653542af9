package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/DRSN-tech/watch-store/pkg/e"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// variant прогоняет один и тот же сценарий для часов и аксессуаров.
type variant struct {
	name   string
	folder string
	create func(env *env, brandID, categoryID int64, file *ImageFile) (ownerID int64, imgURL string, err error)
	// stored возвращает число основных записей и записей изображений
	stored func(env *env) (primary, images int)
}

var variants = []variant{
	{
		name:   "product",
		folder: "products",
		create: func(env *env, brandID, categoryID int64, file *ImageFile) (int64, string, error) {
			res, err := env.products.InsertProduct(context.Background(),
				NewInsertProductReq("Submariner", "Diver", "men", 1_250_000, brandID, categoryID, file))
			if err != nil {
				return 0, "", err
			}
			return res.Product.ID, res.Image.ImgURL, nil
		},
		stored: func(env *env) (int, int) {
			p, pi, _, _, _ := env.store.counts()
			return p, pi
		},
	},
	{
		name:   "accessory",
		folder: "accessories",
		create: func(env *env, brandID, categoryID int64, file *ImageFile) (int64, string, error) {
			res, err := env.accessory.InsertAccessory(context.Background(),
				NewInsertAccessoryReq("Oyster strap", "Steel", "silver", 45_000, brandID, categoryID, file))
			if err != nil {
				return 0, "", err
			}
			return res.Accessory.ID, res.Image.ImgURL, nil
		},
		stored: func(env *env) (int, int) {
			_, _, a, ai, _ := env.store.counts()
			return a, ai
		},
	},
}

func outboxCount(env *env) int {
	_, _, _, _, o := env.store.counts()
	return o
}

func TestCreation_ValidationOrder(t *testing.T) {
	const missing int64 = 999

	testCases := []struct {
		name       string
		brandOK    bool
		categoryOK bool
		file       *ImageFile
		expected   *e.APIError
	}{
		{"missing brand and category", false, false, nil, e.ErrBrandNotExist},
		{"missing brand with file", false, true, pngFile(), e.ErrBrandNotExist},
		{"missing category", true, false, pngFile(), e.ErrCategoryNotExist},
		{"missing category and file", true, false, nil, e.ErrCategoryNotExist},
		{"missing file", true, true, nil, e.ErrNoFileUploaded},
	}

	for _, v := range variants {
		for _, tc := range testCases {
			t.Run(v.name+"/"+tc.name, func(t *testing.T) {
				// given
				env := newEnv(false)
				brandID, categoryID := env.brand.ID, env.category.ID
				if !tc.brandOK {
					brandID = missing
				}
				if !tc.categoryOK {
					categoryID = missing
				}
				// when
				_, _, err := v.create(env, brandID, categoryID, tc.file)
				// then
				require.ErrorIs(t, err, tc.expected)

				var apiErr *e.APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, tc.expected.Error(), apiErr.Error())

				primary, images := v.stored(env)
				assert.Zero(t, primary)
				assert.Zero(t, images)
				assert.Zero(t, env.images.uploadCount())
				assert.Zero(t, outboxCount(env))
			})
		}
	}
}

func TestCreation_Success(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			// given
			env := newEnv(false)
			// when
			ownerID, imgURL, err := v.create(env, env.brand.ID, env.category.ID, pngFile())
			// then
			require.NoError(t, err)
			assert.NotZero(t, ownerID)
			assert.Equal(t, "http://minio.local/catalog/"+v.folder+"/image.png", imgURL)

			primary, images := v.stored(env)
			assert.Equal(t, 1, primary)
			assert.Equal(t, 1, images)

			require.Len(t, env.images.uploads, 1)
			assert.Equal(t, v.folder, env.images.uploads[0].Folder)
			assert.Equal(t, 1, env.cache.deleteCount())

			require.Equal(t, 1, outboxCount(env))
			event := env.store.outbox[0]
			assert.Equal(t, ownerID, event.AggregateID)
			assert.Equal(t, Pending, event.Status)

			body, err := DecodeOutboxPayload(event.Payload)
			require.NoError(t, err)
			assert.Equal(t, event.EventID, body.Fields["event_id"].GetStringValue())
			data := body.Fields["data"].GetStructValue()
			require.NotNil(t, data)
			assert.Equal(t, imgURL, data.Fields["image_url"].GetStringValue())
			assert.InDelta(t, float64(ownerID), data.Fields["id"].GetNumberValue(), 0)
		})
	}
}

func TestCreation_ImageLinkedToOwner(t *testing.T) {
	env := newEnv(false)

	res, err := env.products.InsertProduct(context.Background(),
		NewInsertProductReq("Daytona", "", "men", 3_000_000, env.brand.ID, env.category.ID, pngFile()))
	require.NoError(t, err)

	assert.Equal(t, res.Product.ID, res.Image.ProductID)
	assert.Equal(t, "products/image.png", res.Image.ObjectKey)
	assert.Equal(t, "Daytona", res.Product.Name)
	assert.Equal(t, int64(3_000_000), res.Product.Price)
}

func TestCreation_UploadFailureLeavesOrphan(t *testing.T) {
	failures := []struct {
		name string
		set  func(f *fakeImages)
	}{
		{"uploader error", func(f *fakeImages) { f.err = errors.New("minio unavailable") }},
		{"empty url", func(f *fakeImages) { f.res = NewUploadImageRes("products/x.png", "") }},
	}

	for _, v := range variants {
		for _, fc := range failures {
			t.Run(v.name+"/"+fc.name, func(t *testing.T) {
				// given
				env := newEnv(false)
				fc.set(env.images)
				// when
				_, _, err := v.create(env, env.brand.ID, env.category.ID, pngFile())
				// then
				require.ErrorIs(t, err, e.ErrImageUploadFailed)
				assert.ErrorIs(t, err, e.ErrBadRequest)

				primary, images := v.stored(env)
				assert.Equal(t, 1, primary, "primary record stays without an image")
				assert.Zero(t, images)
				assert.Zero(t, outboxCount(env))
				assert.Equal(t, 1, env.cache.deleteCount(), "stored record must show up in listings")
			})
		}
	}
}

func TestCreation_StoreErrorsPropagate(t *testing.T) {
	env := newEnv(false)
	env.store.failOn = "product.Create"

	_, _, err := variants[0].create(env, env.brand.ID, env.category.ID, pngFile())

	require.ErrorIs(t, err, errStore)
	var apiErr *e.APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Zero(t, env.images.uploadCount())
	assert.Zero(t, env.cache.deleteCount())
}

func TestCreation_ReferenceLookupErrorIsNotNotFound(t *testing.T) {
	env := newEnv(false)
	env.store.failOn = "brand.FindByID"

	_, _, err := variants[1].create(env, env.brand.ID, env.category.ID, pngFile())

	require.ErrorIs(t, err, errStore)
	assert.NotErrorIs(t, err, e.ErrNotFound)
}

func TestCreation_AtomicRollsBackOnUploadFailure(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			env := newEnv(true)
			env.images.err = errors.New("minio unavailable")

			_, _, err := v.create(env, env.brand.ID, env.category.ID, pngFile())

			require.ErrorIs(t, err, e.ErrImageUploadFailed)
			primary, images := v.stored(env)
			assert.Zero(t, primary)
			assert.Zero(t, images)
			assert.Equal(t, 1, env.tx.calls)
			assert.Empty(t, env.images.cleaned, "nothing was uploaded")
			assert.Zero(t, env.cache.deleteCount(), "rolled back, listings unchanged")
		})
	}
}

func TestCreation_AtomicCleansUpUploadedObject(t *testing.T) {
	failOn := map[string]string{
		"product":   "productImage.Create",
		"accessory": "accessoryImage.Create",
	}

	for _, v := range variants {
		for _, op := range []string{failOn[v.name], "outbox.Create"} {
			t.Run(v.name+"/"+op, func(t *testing.T) {
				env := newEnv(true)
				env.store.failOn = op

				_, _, err := v.create(env, env.brand.ID, env.category.ID, pngFile())

				require.ErrorIs(t, err, errStore)
				primary, images := v.stored(env)
				assert.Zero(t, primary)
				assert.Zero(t, images)
				assert.Zero(t, outboxCount(env))
				assert.Equal(t, []string{v.folder + "/image.png"}, env.images.cleaned)
				assert.Zero(t, env.cache.deleteCount())
			})
		}
	}
}

func TestCreation_NonAtomicSkipsTransaction(t *testing.T) {
	env := newEnv(false)

	_, _, err := variants[0].create(env, env.brand.ID, env.category.ID, pngFile())

	require.NoError(t, err)
	assert.Zero(t, env.tx.calls)
}

// Первая ошибка определяется только тем, какие из трёх предусловий нарушены.
func TestProperty_CreationErrorPrecedence(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("brand, then category, then file", prop.ForAll(
		func(brandOK, categoryOK, hasFile, accessory bool) bool {
			env := newEnv(false)
			brandID, categoryID := env.brand.ID, env.category.ID
			if !brandOK {
				brandID = -1
			}
			if !categoryOK {
				categoryID = -1
			}
			var file *ImageFile
			if hasFile {
				file = pngFile()
			}

			v := variants[0]
			if accessory {
				v = variants[1]
			}
			_, _, err := v.create(env, brandID, categoryID, file)
			primary, _ := v.stored(env)

			switch {
			case !brandOK:
				return errors.Is(err, e.ErrBrandNotExist) && primary == 0
			case !categoryOK:
				return errors.Is(err, e.ErrCategoryNotExist) && primary == 0
			case !hasFile:
				return errors.Is(err, e.ErrNoFileUploaded) && primary == 0
			default:
				return err == nil && primary == 1
			}
		},
		gen.Bool(), gen.Bool(), gen.Bool(), gen.Bool(),
	))

	properties.TestingRun(t)
}
