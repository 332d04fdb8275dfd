package service

import (
	"context"
	"strings"

	"trustcam_backend/internal/model"
	"trustcam_backend/internal/repository"
)

// Root category slugs that decide which contextual facet controls the page
// shows.
const (
	rootSlugRetail = "retail"
	rootSlugAgri   = "agricole"
)

// ==================== Types ====================

// CatalogueFilters holds the raw, user-supplied filter values after
// whitespace trimming. Empty string means the filter is absent.
type CatalogueFilters struct {
	Category     string `json:"category"`
	Region       string `json:"region"`
	City         string `json:"city"`
	Condition    string `json:"condition"`
	OriginRegion string `json:"origin_region"`
}

// SidebarEntry is one category line of the sidebar with its recursive
// available-listing count.
type SidebarEntry struct {
	Category model.Category `json:"category"`
	Total    int64          `json:"total"`
	Active   bool           `json:"active"`
}

// SidebarRoot is a root category together with its direct children.
type SidebarRoot struct {
	SidebarEntry
	Children []SidebarEntry `json:"children"`
}

// CatalogueView is everything the catalogue page needs in one shot.
type CatalogueView struct {
	Filters             CatalogueFilters `json:"filters"`
	Listings            []model.Listing  `json:"listings"`
	Total               int64            `json:"total"`
	Sidebar             []SidebarRoot    `json:"sidebar"`
	Regions             []string         `json:"regions"`
	Cities              []string         `json:"cities"`
	ShowRetailFilters   bool             `json:"show_retail_filters"`
	ShowAgriFilters     bool             `json:"show_agri_filters"`
	ConditionOptions    []string         `json:"condition_options"`
	OriginRegionOptions []string         `json:"origin_region_options"`
}

// ==================== Service ====================

// CatalogueService resolves raw filter input into the listing result set,
// the sidebar category counts and the facet option lists.
type CatalogueService struct {
	listings   repository.ListingRepository
	categories repository.CategoryRepository
}

func NewCatalogueService(listings repository.ListingRepository, categories repository.CategoryRepository) *CatalogueService {
	return &CatalogueService{listings: listings, categories: categories}
}

// Normalize trims every filter value; empty values mean "no filter".
func (f CatalogueFilters) Normalize() CatalogueFilters {
	return CatalogueFilters{
		Category:     strings.TrimSpace(f.Category),
		Region:       strings.TrimSpace(f.Region),
		City:         strings.TrimSpace(f.City),
		Condition:    strings.TrimSpace(f.Condition),
		OriginRegion: strings.TrimSpace(f.OriginRegion),
	}
}

// Browse builds the full catalogue view for the given filters. An unknown
// category slug is deliberately swallowed and behaves exactly like no
// category filter at all; the permissive default is intentional, not a bug.
func (s *CatalogueService) Browse(ctx context.Context, filters CatalogueFilters) (*CatalogueView, error) {
	filters = filters.Normalize()

	categories, err := s.categories.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	tree := newCategoryTree(categories)

	selected := tree.bySlug(filters.Category)

	repoFilter := repository.CatalogueFilter{
		Region:       filters.Region,
		City:         filters.City,
		Condition:    filters.Condition,
		OriginRegion: filters.OriginRegion,
	}
	if selected != nil {
		repoFilter.CategoryIDs = tree.descendantIDs(selected.ID)
	}

	listings, total, err := s.listings.ListAvailable(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	sidebar, err := s.buildSidebar(ctx, tree, filters, selected)
	if err != nil {
		return nil, err
	}

	regions, err := s.listings.DistinctRegions(ctx)
	if err != nil {
		return nil, err
	}
	cities, err := s.listings.DistinctCities(ctx, filters.Region)
	if err != nil {
		return nil, err
	}
	conditions, err := s.listings.DistinctConditions(ctx)
	if err != nil {
		return nil, err
	}
	origins, err := s.listings.DistinctOriginRegions(ctx)
	if err != nil {
		return nil, err
	}

	return &CatalogueView{
		Filters:             filters,
		Listings:            listings,
		Total:               total,
		Sidebar:             sidebar,
		Regions:             regions,
		Cities:              cities,
		ShowRetailFilters:   showFacetFor(tree, selected, rootSlugRetail),
		ShowAgriFilters:     showFacetFor(tree, selected, rootSlugAgri),
		ConditionOptions:    conditions,
		OriginRegionOptions: origins,
	}, nil
}

// CategoryTree returns the two-level roots-with-children view of all
// categories, without counts.
func (s *CatalogueService) CategoryTree(ctx context.Context) ([]SidebarRoot, error) {
	categories, err := s.categories.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	tree := newCategoryTree(categories)

	roots := make([]SidebarRoot, 0, len(tree.roots()))
	for _, root := range tree.roots() {
		entry := SidebarRoot{SidebarEntry: SidebarEntry{Category: root}}
		for _, child := range tree.children(root.ID) {
			entry.Children = append(entry.Children, SidebarEntry{Category: child})
		}
		roots = append(roots, entry)
	}
	return roots, nil
}

// ==================== Sidebar aggregation ====================

// buildSidebar computes the recursive per-category counts. Direct counts are
// taken under the geography filters only, so the sidebar reflects
// region/city-scoped totals no matter which category the user drilled into.
func (s *CatalogueService) buildSidebar(ctx context.Context, tree *categoryTree, filters CatalogueFilters, selected *model.Category) ([]SidebarRoot, error) {
	if tree.empty() {
		return nil, nil
	}

	direct, err := s.listings.CountAvailableByCategory(ctx, filters.Region, filters.City)
	if err != nil {
		return nil, err
	}

	// Memoized per node id; also bounds the recursion if bad data ever
	// introduces a cycle.
	totals := make(map[int64]int64, len(direct))
	var totalOf func(id int64) int64
	totalOf = func(id int64) int64 {
		if cached, ok := totals[id]; ok {
			return cached
		}
		totals[id] = direct[id]
		total := direct[id]
		for _, child := range tree.children(id) {
			total += totalOf(child.ID)
		}
		totals[id] = total
		return total
	}

	activeRootIDs := tree.ancestorSet(selected)

	sidebar := make([]SidebarRoot, 0, len(tree.roots()))
	for _, root := range tree.roots() {
		entry := SidebarRoot{
			SidebarEntry: SidebarEntry{
				Category: root,
				Total:    totalOf(root.ID),
				Active:   activeRootIDs[root.ID],
			},
		}
		for _, child := range tree.children(root.ID) {
			entry.Children = append(entry.Children, SidebarEntry{
				Category: child,
				Total:    totalOf(child.ID),
				Active:   selected != nil && child.Slug == selected.Slug,
			})
		}
		sidebar = append(sidebar, entry)
	}
	return sidebar, nil
}

// showFacetFor applies the facet-visibility policy: contextual controls show
// when no category is selected, or when the selected category's tree root
// carries the given slug. Root-of-tree, not direct parent.
func showFacetFor(tree *categoryTree, selected *model.Category, rootSlug string) bool {
	if selected == nil {
		return true
	}
	return tree.rootSlug(selected) == rootSlug
}

// ==================== Category tree index ====================

// categoryTree is an arena of category nodes keyed by id with a derived
// children-by-parent index, rebuilt per request. Traversal always goes
// through id lookups; no child pointers are embedded in nodes.
type categoryTree struct {
	byID       map[int64]model.Category
	bySlugMap  map[string]int64
	byParentID map[int64][]model.Category
	rootList   []model.Category
}

func newCategoryTree(categories []model.Category) *categoryTree {
	t := &categoryTree{
		byID:       make(map[int64]model.Category, len(categories)),
		bySlugMap:  make(map[string]int64, len(categories)),
		byParentID: make(map[int64][]model.Category),
	}
	for _, c := range categories {
		t.byID[c.ID] = c
		t.bySlugMap[c.Slug] = c.ID
		if c.ParentID == nil {
			t.rootList = append(t.rootList, c)
		} else {
			t.byParentID[*c.ParentID] = append(t.byParentID[*c.ParentID], c)
		}
	}
	return t
}

func (t *categoryTree) empty() bool {
	return len(t.byID) == 0
}

func (t *categoryTree) roots() []model.Category {
	return t.rootList
}

func (t *categoryTree) children(id int64) []model.Category {
	return t.byParentID[id]
}

func (t *categoryTree) bySlug(slug string) *model.Category {
	if slug == "" {
		return nil
	}
	id, ok := t.bySlugMap[slug]
	if !ok {
		return nil
	}
	c := t.byID[id]
	return &c
}

// descendantIDs returns the id closure of a node: itself plus every
// transitive child, breadth first.
func (t *categoryTree) descendantIDs(id int64) []int64 {
	ids := make([]int64, 0, 4)
	queue := []int64{id}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		ids = append(ids, current)
		for _, child := range t.byParentID[current] {
			queue = append(queue, child.ID)
		}
	}
	return ids
}

// rootSlug walks parent pointers to the top of the node's tree.
func (t *categoryTree) rootSlug(c *model.Category) string {
	current := *c
	for current.ParentID != nil {
		parent, ok := t.byID[*current.ParentID]
		if !ok {
			break
		}
		current = parent
	}
	return current.Slug
}

// ancestorSet returns the ids on the selected node's parent chain, the
// selected node included. Nil selection yields an empty set.
func (t *categoryTree) ancestorSet(selected *model.Category) map[int64]bool {
	set := make(map[int64]bool)
	if selected == nil {
		return set
	}
	current := *selected
	for {
		set[current.ID] = true
		if current.ParentID == nil {
			break
		}
		parent, ok := t.byID[*current.ParentID]
		if !ok {
			break
		}
		current = parent
	}
	return set
}
