package store

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/enotalexnot/ztk-catalog/internal/models"
)

var testDBSeq int64

// newTestStore opens a fresh in-memory database per test; the shared-cache
// name keeps it alive across the pool's connections.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:storetest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	s := New(db)
	require.NoError(t, s.Migrate())
	return s
}

func TestProductCreateAndGet(t *testing.T) {
	s := newTestStore(t)

	p := models.Product{
		Name:           "Электродвигатель АИР",
		Description:    "Асинхронный двигатель",
		CategoryID:     1,
		Price:          "по запросу",
		Featured:       true,
		Specifications: map[string]string{"Мощность": "5.5 кВт", "Обороты": "1500"},
		Model:          "АИР112М4",
		Brand:          "ЭЛКОМ",
		Images:         []string{"/uploads/air/images/a.jpg", "/uploads/air/images/b.jpg"},
		Files:          []string{"/uploads/air/files/passport.pdf"},
	}
	require.NoError(t, s.CreateProduct(&p))
	assert.NotZero(t, p.ID)

	got, err := s.GetProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.Price, got.Price)
	assert.Equal(t, p.Specifications, got.Specifications)
	assert.Equal(t, p.Images, got.Images)
	assert.Equal(t, p.Files, got.Files)
	assert.Nil(t, got.SubcategoryID)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestProductPartialUpdate(t *testing.T) {
	s := newTestStore(t)

	p := models.Product{Name: "Насос", Description: "Центробежный", CategoryID: 2, Price: "12000"}
	require.NoError(t, s.CreateProduct(&p))

	require.NoError(t, s.UpdateProduct(p.ID, map[string]any{"price": "13500"}))

	got, err := s.GetProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "13500", got.Price)
	assert.Equal(t, "Насос", got.Name)
	assert.Equal(t, "Центробежный", got.Description)
	assert.Equal(t, uint(2), got.CategoryID)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))
}

func TestProductDelete(t *testing.T) {
	s := newTestStore(t)

	p := models.Product{Name: "Компрессор", CategoryID: 1}
	require.NoError(t, s.CreateProduct(&p))

	require.NoError(t, s.DeleteProduct(p.ID))

	_, err := s.GetProduct(p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := s.ListProducts()
	require.NoError(t, err)
	for _, got := range list {
		assert.NotEqual(t, p.ID, got.ID)
	}
}

func TestUpdateMissingRowReturnsNotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.UpdateProduct(9999, map[string]any{"name": "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.DeleteCategory(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductSecondaryLookups(t *testing.T) {
	s := newTestStore(t)

	subID := uint(7)
	require.NoError(t, s.CreateProduct(&models.Product{Name: "A", CategoryID: 1, SubcategoryID: &subID}))
	require.NoError(t, s.CreateProduct(&models.Product{Name: "B", CategoryID: 1}))
	require.NoError(t, s.CreateProduct(&models.Product{Name: "C", CategoryID: 2, Featured: true}))

	byCat, err := s.ListProductsByCategory(1)
	require.NoError(t, err)
	assert.Len(t, byCat, 2)

	bySub, err := s.ListProductsBySubcategory(subID)
	require.NoError(t, err)
	require.Len(t, bySub, 1)
	assert.Equal(t, "A", bySub[0].Name)

	featured, err := s.ListFeaturedProducts()
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "C", featured[0].Name)
}

func TestMenuItemOrdering(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.CreateMenuItem(&models.MenuItem{Title: "third", URL: "/3", Order: 3, IsActive: true}))
	require.NoError(t, s.CreateMenuItem(&models.MenuItem{Title: "first", URL: "/1", Order: 1, IsActive: true}))
	require.NoError(t, s.CreateMenuItem(&models.MenuItem{Title: "second", URL: "/2", Order: 2, IsActive: true}))

	items, err := s.ListMenuItems()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{items[0].Order, items[1].Order, items[2].Order})
}

func TestMenuTree(t *testing.T) {
	s := newTestStore(t)

	root := models.MenuItem{Title: "Каталог", URL: "/catalog", Order: 1, IsActive: true}
	require.NoError(t, s.CreateMenuItem(&root))
	child := models.MenuItem{Title: "Насосы", URL: "/catalog/pumps", Order: 1, ParentID: &root.ID, IsActive: true}
	require.NoError(t, s.CreateMenuItem(&child))
	other := models.MenuItem{Title: "Контакты", URL: "/contacts", Order: 2, IsActive: true}
	require.NoError(t, s.CreateMenuItem(&other))

	items, err := s.ListMenuItems()
	require.NoError(t, err)

	tree := BuildMenuTree(items)
	require.Len(t, tree, 2)
	assert.Equal(t, "Каталог", tree[0].Title)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "Насосы", tree[0].Children[0].Title)
	assert.Empty(t, tree[1].Children)
}

func TestMenuItemParentValid(t *testing.T) {
	s := newTestStore(t)

	a := models.MenuItem{Title: "a", URL: "/a", IsActive: true}
	require.NoError(t, s.CreateMenuItem(&a))
	b := models.MenuItem{Title: "b", URL: "/b", ParentID: &a.ID, IsActive: true}
	require.NoError(t, s.CreateMenuItem(&b))

	ok, err := s.MenuItemParentValid(b.ID, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// self-parent
	ok, err = s.MenuItemParentValid(a.ID, a.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// would close a loop: a under its own child
	ok, err = s.MenuItemParentValid(a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// unknown parent
	ok, err = s.MenuItemParentValid(a.ID, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSliderItemListings(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.CreateSliderItem(&models.SliderItem{Title: "hidden", Order: 1, IsActive: false}))
	require.NoError(t, s.CreateSliderItem(&models.SliderItem{Title: "second", Order: 2, IsActive: true}))
	require.NoError(t, s.CreateSliderItem(&models.SliderItem{Title: "first", Order: 1, IsActive: true}))

	public, err := s.ListActiveSliderItems()
	require.NoError(t, err)
	require.Len(t, public, 2)
	assert.Equal(t, "first", public[0].Title)
	assert.Equal(t, "second", public[1].Title)

	all, err := s.ListSliderItems()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStaticPageBySlug(t *testing.T) {
	s := newTestStore(t)

	page := models.StaticPage{Slug: "about", TitleRu: "О компании", TitleEn: "About us"}
	require.NoError(t, s.CreateStaticPage(&page))

	got, err := s.GetStaticPageBySlug("about")
	require.NoError(t, err)
	assert.Equal(t, "О компании", got.TitleRu)

	require.NoError(t, s.UpdateStaticPageBySlug("about", map[string]any{"title_en": "About"}))
	got, err = s.GetStaticPageBySlug("about")
	require.NoError(t, err)
	assert.Equal(t, "About", got.TitleEn)
	assert.Equal(t, "О компании", got.TitleRu)

	_, err = s.GetStaticPageBySlug("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeedIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Seed())
	require.NoError(t, s.UpdateSiteSetting("site_name", map[string]any{"value": "ЗТК-Сервис"}))

	// A second seed must not clobber the admin's edit.
	require.NoError(t, s.Seed())

	setting, err := s.GetSiteSetting("site_name")
	require.NoError(t, err)
	assert.Equal(t, "ЗТК-Сервис", setting.Value)

	sections, err := s.ListHomepageContent()
	require.NoError(t, err)
	assert.Len(t, sections, 4)
}

func TestInquiryOptionalFieldsStayNull(t *testing.T) {
	s := newTestStore(t)

	in := models.Inquiry{Name: "A", Email: "a@b.com", Message: "hi"}
	require.NoError(t, s.CreateInquiry(&in))

	list, err := s.ListInquiries()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Phone)
	assert.Nil(t, list[0].Company)
	assert.False(t, list[0].CreatedAt.IsZero())
}
