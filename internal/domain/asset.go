package domain

import "github.com/shopspring/decimal"

// Asset is one entry of the investable asset catalog.
type Asset struct {
	ID           string
	Name         string
	Symbol       string
	AssetType    string
	CurrentPrice decimal.Decimal
}

// FindAsset resolves an asset id against a fetched catalog.
func FindAsset(catalog []Asset, id string) (Asset, bool) {
	for _, asset := range catalog {
		if asset.ID == id {
			return asset, true
		}
	}
	return Asset{}, false
}
