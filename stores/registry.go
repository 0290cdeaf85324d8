package stores

// Registry returns every store adapter in the fixed order used for the
// sheet's columns. The selector sets mirror each retailer's live markup
// and are maintained by hand.
func Registry() []Adapter {
	return []Adapter{
		{
			Seller:    "Jumia",
			SearchURL: "https://www.jumia.com.eg/catalog/?q=",
			Selectors: []string{"article.prd div.prc"},
		},
		{
			Seller:    "2B",
			SearchURL: "https://2b.com.eg/en/search?query=",
			Selectors: []string{".price", ".price-wrapper .price"},
		},
		{
			Seller:    "BTECH",
			SearchURL: "https://btech.com/en/search?q=",
			Selectors: []string{"[data-cy='product-price']", ".product-card [class*=price]"},
		},
		{
			Seller:    "Rizkalla",
			SearchURL: "https://rizkalla.com/search?q=",
			Selectors: []string{".price", ".card-product .price", ".product-price"},
		},
		{
			Seller:    "Carrefour",
			SearchURL: "https://www.carrefouregypt.com/mafegy/en/search?q=",
			Selectors: []string{"[data-test='product-price']", ".product-price", ".price"},
		},
		{
			Seller:    "Vodafone Shop",
			SearchURL: "https://eshop.vodafone.com.eg/shop/search?q=",
			Selectors: []string{".product-price", ".price", "[class*=price]"},
		},
		{
			Seller:    "Etisalat",
			SearchURL: "https://www.etisalat.eg/etisalat/portal/Search?text=",
			Selectors: []string{".price", ".prd-price", "[class*=price]"},
		},
		{
			Seller:    "Raneen",
			SearchURL: "https://raneen.com/en/catalogsearch/result/?q=",
			Selectors: []string{".price", ".special-price .price", ".old-price .price"},
		},
		{
			Seller:    "Raya Shop",
			SearchURL: "https://www.rayashop.com/search?q=",
			Selectors: []string{".price", ".product-price", "[class*=price]"},
		},
		{
			Seller:    "Shaheen Center",
			SearchURL: "https://shaheen.center/en/search?q=",
			Selectors: []string{".price", ".woocommerce-Price-amount", "[class*=price]"},
		},
		{
			Seller:    "Noon",
			SearchURL: "https://www.noon.com/egypt-en/search?q=",
			Selectors: []string{"[data-qa='product-price']", ".price", "[class*=price]"},
		},
	}
}

// Sellers returns the registry's seller names in column order.
func Sellers() []string {
	registry := Registry()
	names := make([]string, len(registry))
	for i, adapter := range registry {
		names[i] = adapter.Seller
	}
	return names
}
