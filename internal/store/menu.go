package store

import "github.com/enotalexnot/ztk-catalog/internal/models"

// MenuNode is a menu item with its resolved children, built from the flat
// table at read time.
type MenuNode struct {
	models.MenuItem
	Children []*MenuNode `json:"children"`
}

// BuildMenuTree nests items under their parents, keeping the incoming
// order within each level. Items whose parent is missing, inactive or part
// of a cycle are promoted to the root rather than dropped.
func BuildMenuTree(items []models.MenuItem) []*MenuNode {
	nodes := make(map[uint]*MenuNode, len(items))
	for i := range items {
		nodes[items[i].ID] = &MenuNode{MenuItem: items[i], Children: []*MenuNode{}}
	}

	roots := []*MenuNode{}
	for i := range items {
		node := nodes[items[i].ID]
		pid := items[i].ParentID
		if pid == nil || nodes[*pid] == nil || createsCycle(items[i].ID, *pid, nodes) {
			roots = append(roots, node)
			continue
		}
		parent := nodes[*pid]
		parent.Children = append(parent.Children, node)
	}
	return roots
}

// createsCycle walks the parent chain from candidate; hitting id again
// means attaching under candidate would close a loop.
func createsCycle(id, candidate uint, nodes map[uint]*MenuNode) bool {
	seen := map[uint]bool{id: true}
	cur := candidate
	for {
		if seen[cur] {
			return true
		}
		seen[cur] = true
		node := nodes[cur]
		if node == nil || node.ParentID == nil {
			return false
		}
		cur = *node.ParentID
	}
}

// MenuItemParentValid reports whether parentID may be assigned to item id:
// the parent must exist, must not be the item itself, and must not be one
// of the item's descendants.
func (s *Store) MenuItemParentValid(id uint, parentID uint) (bool, error) {
	if id == parentID {
		return false, nil
	}
	items, err := s.ListMenuItems()
	if err != nil {
		return false, err
	}
	byID := make(map[uint]*models.MenuItem, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}
	if byID[parentID] == nil {
		return false, nil
	}
	// Walk up from the proposed parent; reaching id means a cycle.
	seen := map[uint]bool{}
	cur := parentID
	for {
		if cur == id {
			return false, nil
		}
		if seen[cur] {
			return false, nil
		}
		seen[cur] = true
		item := byID[cur]
		if item == nil || item.ParentID == nil {
			return true, nil
		}
		cur = *item.ParentID
	}
}
