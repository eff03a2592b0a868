package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/winterhq/navhome/internal/client"
	"github.com/winterhq/navhome/internal/domain"
	"github.com/winterhq/navhome/internal/logger"
)

// DataSource is what the controller needs from the API layer.
// *client.Client satisfies it.
type DataSource interface {
	FetchSites(ctx context.Context) domain.Collection
	ReplaceSites(ctx context.Context, collection domain.Collection) (client.Result, error)
	VerifyToken(ctx context.Context, candidate string) client.Result
	InitializeToken(ctx context.Context, candidate string) client.Result
	Token() string
	ClearToken() error
}

// FormMode tracks which edit form, if any, is open.
type FormMode int

const (
	FormIdle FormMode = iota
	FormAddCategory
	FormEditCategory
	FormAddSite
	FormEditSite
)

// CategoryForm holds the editable fields of a category.
type CategoryForm struct {
	Name string
}

// SiteForm holds the editable fields of a site.
type SiteForm struct {
	Name string
	URL  string
	Desc string
	Icon string
}

var (
	// ErrNotAdmin guards every mutating operation.
	ErrNotAdmin = errors.New("dashboard: admin mode required")
	// ErrNoOpenForm is returned when a commit arrives with no form open.
	ErrNoOpenForm = errors.New("dashboard: no form is open")
)

// Controller owns the in-memory collection and the edit-session state.
// It is not safe for concurrent use; a frontend drives it from a single
// event loop.
type Controller struct {
	api    DataSource
	logger logger.Logger

	collection domain.Collection
	query      string

	admin bool
	dirty bool

	mode          FormMode
	categoryIndex int
	siteIndex     int

	newID func() string
}

func NewController(api DataSource, log logger.Logger) *Controller {
	return &Controller{
		api:           api,
		logger:        log,
		collection:    domain.Collection{},
		mode:          FormIdle,
		categoryIndex: -1,
		siteIndex:     -1,
		newID:         uuid.NewString,
	}
}

// Start loads the collection and re-validates any cached admin token.
// A token the server no longer accepts is dropped so the UI does not
// show admin affordances that every save would then reject.
func (c *Controller) Start(ctx context.Context) {
	c.collection = c.api.FetchSites(ctx)

	token := c.api.Token()
	if token == "" {
		return
	}
	if res := c.api.VerifyToken(ctx, token); !res.Success {
		c.logger.Warn("cached admin token rejected, dropping it",
			logger.String("reason", res.Error))
		if err := c.api.ClearToken(); err != nil {
			c.logger.Error("failed to drop cached token", logger.Error(err))
		}
		return
	}
	c.admin = true
}

func (c *Controller) IsAdmin() bool  { return c.admin }
func (c *Controller) IsDirty() bool  { return c.dirty }
func (c *Controller) Mode() FormMode { return c.mode }
func (c *Controller) Query() string  { return c.query }

// SetQuery updates the search filter. Filtering happens at render time;
// the underlying collection is never narrowed.
func (c *Controller) SetQuery(query string) { c.query = query }

// View renders the current collection through the active search filter.
func (c *Controller) View() ViewModel {
	return Render(domain.FilterCollection(c.collection, c.query), c.admin)
}

// Collection returns a deep copy for external consumers such as the raw
// JSON editor. Mutations to the copy do not leak back.
func (c *Controller) Collection() domain.Collection {
	return c.collection.Clone()
}

// Login verifies a candidate token and enters admin mode on success.
func (c *Controller) Login(ctx context.Context, candidate string) client.Result {
	res := c.api.VerifyToken(ctx, candidate)
	if res.Success {
		c.admin = true
	}
	return res
}

// InitializeAdmin performs first-time token setup and, when accepted,
// immediately logs in with it.
func (c *Controller) InitializeAdmin(ctx context.Context, token string) client.Result {
	res := c.api.InitializeToken(ctx, token)
	if !res.Success {
		return res
	}
	return c.Login(ctx, token)
}

// Logout leaves admin mode, drops the cached token and abandons any open
// form. Unsaved edits stay in memory.
func (c *Controller) Logout() {
	if err := c.api.ClearToken(); err != nil {
		c.logger.Error("failed to drop cached token", logger.Error(err))
	}
	c.admin = false
	c.CancelForm()
}

func (c *Controller) checkCategory(index int) error {
	if index < 0 || index >= len(c.collection) {
		return fmt.Errorf("dashboard: category index %d out of range", index)
	}
	return nil
}

func (c *Controller) checkSite(categoryIndex, siteIndex int) error {
	if err := c.checkCategory(categoryIndex); err != nil {
		return err
	}
	if siteIndex < 0 || siteIndex >= len(c.collection[categoryIndex].Sites) {
		return fmt.Errorf("dashboard: site index %d out of range", siteIndex)
	}
	return nil
}

// BeginAddCategory opens an empty category form.
func (c *Controller) BeginAddCategory() error {
	if !c.admin {
		return ErrNotAdmin
	}
	c.mode = FormAddCategory
	c.categoryIndex = -1
	c.siteIndex = -1
	return nil
}

// BeginEditCategory opens the category form prefilled from the given
// category and returns those values.
func (c *Controller) BeginEditCategory(index int) (CategoryForm, error) {
	if !c.admin {
		return CategoryForm{}, ErrNotAdmin
	}
	if err := c.checkCategory(index); err != nil {
		return CategoryForm{}, err
	}
	c.mode = FormEditCategory
	c.categoryIndex = index
	c.siteIndex = -1
	return CategoryForm{Name: c.collection[index].Name}, nil
}

// BeginAddSite opens an empty site form targeting the given category.
func (c *Controller) BeginAddSite(categoryIndex int) error {
	if !c.admin {
		return ErrNotAdmin
	}
	if err := c.checkCategory(categoryIndex); err != nil {
		return err
	}
	c.mode = FormAddSite
	c.categoryIndex = categoryIndex
	c.siteIndex = -1
	return nil
}

// BeginEditSite opens the site form prefilled from the given site and
// returns those values.
func (c *Controller) BeginEditSite(categoryIndex, siteIndex int) (SiteForm, error) {
	if !c.admin {
		return SiteForm{}, ErrNotAdmin
	}
	if err := c.checkSite(categoryIndex, siteIndex); err != nil {
		return SiteForm{}, err
	}
	c.mode = FormEditSite
	c.categoryIndex = categoryIndex
	c.siteIndex = siteIndex
	site := c.collection[categoryIndex].Sites[siteIndex]
	return SiteForm{Name: site.Name, URL: site.URL, Desc: site.Desc, Icon: site.Icon}, nil
}

// CancelForm abandons the open form without applying anything.
func (c *Controller) CancelForm() {
	c.mode = FormIdle
	c.categoryIndex = -1
	c.siteIndex = -1
}

// CommitCategory applies the open category form. Adds get a fresh ID;
// edits keep theirs so reorders and references stay valid.
func (c *Controller) CommitCategory(form CategoryForm) error {
	if !c.admin {
		return ErrNotAdmin
	}

	name := strings.TrimSpace(form.Name)
	if name == "" {
		return errors.New("dashboard: category name is required")
	}

	switch c.mode {
	case FormAddCategory:
		c.collection = append(c.collection, domain.Category{
			ID:    c.newID(),
			Name:  name,
			Sites: []domain.Site{},
		})
	case FormEditCategory:
		if err := c.checkCategory(c.categoryIndex); err != nil {
			return err
		}
		c.collection[c.categoryIndex].Name = name
	default:
		return ErrNoOpenForm
	}

	c.dirty = true
	c.CancelForm()
	return nil
}

// CommitSite applies the open site form.
func (c *Controller) CommitSite(form SiteForm) error {
	if !c.admin {
		return ErrNotAdmin
	}

	name := strings.TrimSpace(form.Name)
	if name == "" {
		return errors.New("dashboard: site name is required")
	}
	url := strings.TrimSpace(form.URL)
	if !domain.IsValidURL(url) {
		return fmt.Errorf("dashboard: invalid site URL %q", form.URL)
	}

	switch c.mode {
	case FormAddSite:
		if err := c.checkCategory(c.categoryIndex); err != nil {
			return err
		}
		sites := &c.collection[c.categoryIndex].Sites
		*sites = append(*sites, domain.Site{
			ID:   c.newID(),
			Name: name,
			URL:  url,
			Desc: strings.TrimSpace(form.Desc),
			Icon: strings.TrimSpace(form.Icon),
		})
	case FormEditSite:
		if err := c.checkSite(c.categoryIndex, c.siteIndex); err != nil {
			return err
		}
		site := &c.collection[c.categoryIndex].Sites[c.siteIndex]
		site.Name = name
		site.URL = url
		site.Desc = strings.TrimSpace(form.Desc)
		site.Icon = strings.TrimSpace(form.Icon)
	default:
		return ErrNoOpenForm
	}

	c.dirty = true
	c.CancelForm()
	return nil
}

// DeleteCategory removes a category and everything in it.
func (c *Controller) DeleteCategory(index int) error {
	if !c.admin {
		return ErrNotAdmin
	}
	if err := c.checkCategory(index); err != nil {
		return err
	}
	c.collection = append(c.collection[:index], c.collection[index+1:]...)
	c.dirty = true
	c.CancelForm()
	return nil
}

// DeleteSite removes a single site.
func (c *Controller) DeleteSite(categoryIndex, siteIndex int) error {
	if !c.admin {
		return ErrNotAdmin
	}
	if err := c.checkSite(categoryIndex, siteIndex); err != nil {
		return err
	}
	sites := c.collection[categoryIndex].Sites
	c.collection[categoryIndex].Sites = append(sites[:siteIndex], sites[siteIndex+1:]...)
	c.dirty = true
	c.CancelForm()
	return nil
}

// ReorderCategories rebuilds the category order from a list of IDs.
func (c *Controller) ReorderCategories(ids []string) error {
	if !c.admin {
		return ErrNotAdmin
	}
	c.collection = domain.ReorderCategories(c.collection, ids)
	c.dirty = true
	return nil
}

// ReorderSites rebuilds the site order inside one category.
func (c *Controller) ReorderSites(categoryIndex int, ids []string) error {
	if !c.admin {
		return ErrNotAdmin
	}
	if err := c.checkCategory(categoryIndex); err != nil {
		return err
	}
	c.collection[categoryIndex].Sites =
		domain.ReorderSites(c.collection[categoryIndex].Sites, ids)
	c.dirty = true
	return nil
}

// CategoryContainer is the container ID HandleReorder interprets as the
// top-level category list.
const CategoryContainer = "categories"

// HandleReorder is the drag-and-drop callback contract: the container is
// either CategoryContainer or the ID of the category whose sites moved,
// and ids is the complete new order.
func (c *Controller) HandleReorder(containerID string, ids []string) error {
	if !c.admin {
		return ErrNotAdmin
	}
	if containerID == CategoryContainer {
		return c.ReorderCategories(ids)
	}
	i := c.collection.FindCategory(containerID)
	if i < 0 {
		return fmt.Errorf("dashboard: unknown category %q", containerID)
	}
	return c.ReorderSites(i, ids)
}

// DeleteSiteByID removes a site located by its stable ID, the form used by
// delegated event handlers that only carry data attributes.
func (c *Controller) DeleteSiteByID(id string) error {
	if !c.admin {
		return ErrNotAdmin
	}
	i, j := c.collection.FindSite(id)
	if i < 0 {
		return fmt.Errorf("dashboard: unknown site %q", id)
	}
	return c.DeleteSite(i, j)
}

// ReplaceCollection swaps in a whole new collection, as produced by the
// raw JSON editor. The replacement is validated and deep-copied.
func (c *Controller) ReplaceCollection(collection domain.Collection) error {
	if !c.admin {
		return ErrNotAdmin
	}
	if err := domain.ValidateCollection(collection); err != nil {
		return err
	}
	c.collection = collection.Clone()
	c.dirty = true
	c.CancelForm()
	return nil
}

// Save pushes the in-memory collection to the server. The dirty flag only
// clears on a confirmed write.
func (c *Controller) Save(ctx context.Context) error {
	if !c.admin {
		return ErrNotAdmin
	}

	res, err := c.api.ReplaceSites(ctx, c.collection)
	if err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("dashboard: save rejected: %s", res.Error)
	}

	c.dirty = false
	c.logger.Info("collection saved",
		logger.Int("categories", len(c.collection)))
	return nil
}
