package domain

// Seed catalog item identifiers
const (
	ItemGasMask       ItemID = 1
	ItemGasMaskFilter ItemID = 2
)
