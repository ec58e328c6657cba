package panel

import "github.com/bnema/toolip/internal/domain/entity"

// BuildNavigation returns one item per site in list order. Only the first
// item whose URL equals current is active.
func BuildNavigation(sites entity.SiteList, current string) []entity.NavItem {
	items := make([]entity.NavItem, 0, len(sites))
	marked := false
	for _, s := range sites {
		active := !marked && current != "" && s.URL == current
		if active {
			marked = true
		}
		items = append(items, entity.NavItem{
			SiteID: s.ID,
			URL:    s.URL,
			Title:  s.Title,
			Icon:   s.Icon,
			Active: active,
		})
	}
	return items
}

// ActiveIndex returns the position of the active item, or -1.
func ActiveIndex(items []entity.NavItem) int {
	for i, it := range items {
		if it.Active {
			return i
		}
	}
	return -1
}
