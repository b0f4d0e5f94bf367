package domain

// ItemID is the authored numeric identifier of an item kind.
// Valid identifiers are positive; zero is never assigned.
type ItemID int64

// ItemBehavior is the capability an item kind may carry beyond its static metadata.
// Only the behavior name is part of the contract.
type ItemBehavior interface {
	BehaviorName() string
}

// ItemDefinition describes one item kind:
// - ID: stable numeric identifier (e.g., 1)
// - DisplayName: human-readable name (e.g., "Gas Mask")
// - Behavior: optional, nil for items without special behavior
type ItemDefinition struct {
	ID          ItemID       `json:"id"`
	DisplayName string       `json:"display_name"`
	Behavior    ItemBehavior `json:"-"`
}

// HasBehavior reports whether the definition carries a behavior reference
func (d ItemDefinition) HasBehavior() bool {
	return d.Behavior != nil
}

// BehaviorName returns the behavior name, or "" when the item has none
func (d ItemDefinition) BehaviorName() string {
	if d.Behavior == nil {
		return ""
	}
	return d.Behavior.BehaviorName()
}
