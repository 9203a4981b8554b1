package dayz

// Item is a collected pickup. Active items count down their lifetime each
// step and disappear when it runs out.
type Item struct {
	Kind     Kind
	Lifetime int
	Active   bool
}

// NewItem creates an inactive item with the kind's full lifetime.
func NewItem(kind Kind) *Item {
	item := &Item{Kind: kind}
	switch kind {
	case KindGarlic:
		item.Lifetime = GarlicLifetime
	case KindCrossbow:
		item.Lifetime = CrossbowLifetime
	}
	return item
}

// Usable reports whether the item can be switched on. The time machine is
// triggered by losing, not by the player.
func (i *Item) Usable() bool {
	return i.Kind != KindTimeMachine
}

// Inventory holds the player's items in pickup order.
type Inventory struct {
	items []*Item

	// OnChange callback when inventory changes (for UI updates). The world
	// keeps the same Inventory across restarts and rewinds, so it is set once.
	OnChange func()
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add appends an item.
func (inv *Inventory) Add(item *Item) {
	inv.items = append(inv.items, item)
	inv.notifyChange()
}

// Items returns the items in pickup order.
func (inv *Inventory) Items() []*Item {
	return inv.items
}

// Len returns the number of items held.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Contains reports whether any item of the kind is held.
func (inv *Inventory) Contains(kind Kind) bool {
	return inv.Find(kind) != nil
}

// Find returns the first item of the kind, or nil.
func (inv *Inventory) Find(kind Kind) *Item {
	for _, item := range inv.items {
		if item.Kind == kind {
			return item
		}
	}
	return nil
}

// HasActive reports whether an item of the kind is switched on.
func (inv *Inventory) HasActive(kind Kind) bool {
	for _, item := range inv.items {
		if item.Kind == kind && item.Active {
			return true
		}
	}
	return false
}

// Toggle flips the item at index i. An item may be switched on only while
// no other item is active; an active item can always be switched off.
func (inv *Inventory) Toggle(i int) bool {
	if i < 0 || i >= len(inv.items) {
		return false
	}
	item := inv.items[i]
	if !item.Usable() {
		return false
	}
	if !item.Active && inv.anyActive() {
		return false
	}
	item.Active = !item.Active
	inv.notifyChange()
	return true
}

// Remove deletes the given item.
func (inv *Inventory) Remove(target *Item) bool {
	for i, item := range inv.items {
		if item == target {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			inv.notifyChange()
			return true
		}
	}
	return false
}

// Step ages active items and drops the expired ones.
func (inv *Inventory) Step() {
	kept := inv.items[:0]
	changed := false
	for _, item := range inv.items {
		if item.Active {
			item.Lifetime--
			changed = true
			if item.Lifetime <= 0 {
				continue
			}
		}
		kept = append(kept, item)
	}
	for i := len(kept); i < len(inv.items); i++ {
		inv.items[i] = nil
	}
	inv.items = kept
	if changed {
		inv.notifyChange()
	}
}

func (inv *Inventory) anyActive() bool {
	for _, item := range inv.items {
		if item.Active {
			return true
		}
	}
	return false
}

func (inv *Inventory) notifyChange() {
	if inv.OnChange != nil {
		inv.OnChange()
	}
}
