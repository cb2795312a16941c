package asset

// StockCatalog is the built-in set of stock images the catalog is seeded with.
func StockCatalog() []Asset {
	return []Asset{
		stock("1", "Mountain Landscape", "photo-1506905925346-21bda4d32df4", "John Doe", "landscape", "mountain", "nature"),
		stock("2", "Urban Cityscape", "photo-1449824913935-59a10b8d2000", "Jane Smith", "city", "urban", "skyline"),
		stock("3", "Forest Path", "photo-1441974231531-c6227db76b6e", "Bob Johnson", "forest", "path", "nature"),
		stock("4", "Ocean Waves", "photo-1505142468610-359e7d316be0", "Alice Brown", "ocean", "waves", "water"),
		stock("5", "Desert Dunes", "photo-1509316975850-ff9c5deb0cd9", "Mike Wilson", "desert", "dunes", "sand"),
		stock("6", "Night Sky", "photo-1419242902214-272b3f66ee7a", "Sarah Davis", "night", "stars", "sky"),
	}
}

func stock(id, title, photo, author string, tags ...string) Asset {
	base := "https://images.unsplash.com/" + photo
	return Asset{
		ID:        id,
		Title:     title,
		URL:       base + "?w=800",
		Thumbnail: base + "?w=300",
		Type:      TypeImage,
		Tags:      tags,
		Author:    author,
		Source:    "Unsplash",
	}
}
