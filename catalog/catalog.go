// Package catalog holds the static product list priced on every run.
// The sheet is seeded from Default on first run; later runs reprice
// whatever products the sheet already contains.
package catalog

// TVs returns the television section of the catalog.
func TVs() []string {
	return []string{
		"Samsung 43 inch Crystal UHD 4K TV",
		"Samsung 50 inch Crystal UHD 4K TV",
		"Samsung 55 inch Crystal UHD 4K TV",
		"Samsung 65 inch Crystal UHD 4K TV",
		"Samsung 75 inch Crystal UHD 4K TV",
		"Samsung 43 inch Smart TV",
		"Samsung 55 inch Smart TV",
		"Samsung 65 inch QLED 4K TV",
		"Samsung 55 inch QLED 4K TV",
		"Samsung 50 inch QLED 4K TV",
		"LG 43 inch 4K Smart TV",
		"LG 50 inch 4K Smart TV",
		"LG 55 inch 4K Smart TV",
		"LG 65 inch 4K Smart TV",
		"LG 75 inch 4K Smart TV",
		"LG 55 inch OLED Smart TV",
		"LG 65 inch OLED Smart TV",
		"LG 43 inch Smart TV",
		"LG 55 inch NanoCell 4K TV",
		"LG 65 inch NanoCell 4K TV",
	}
}

// Phones returns the mobile phone section of the catalog.
func Phones() []string {
	return []string{
		"Samsung Galaxy A15 6GB 128GB",
		"Samsung Galaxy A25 8GB 128GB",
		"Samsung Galaxy A35 8GB 256GB",
		"Samsung Galaxy A55 8GB 256GB",
		"Samsung Galaxy S23 FE 8GB 256GB",
		"Samsung Galaxy A05s 6GB 128GB",
		"Samsung Galaxy A14 6GB 128GB",
		"Samsung Galaxy M14 6GB 128GB",
		"Apple iPhone 13 128GB",
		"Apple iPhone 14 128GB",
		"Apple iPhone 14 Plus 128GB",
		"Apple iPhone 15 128GB",
		"Apple iPhone 15 Plus 128GB",
		"Apple iPhone SE 64GB",
		"Xiaomi Redmi Note 13 8GB 256GB",
		"Xiaomi Redmi Note 13 6GB 128GB",
		"Xiaomi Redmi Note 13 Pro 8GB 256GB",
		"POCO X6 8GB 256GB",
		"POCO X6 Pro 12GB 256GB",
		"Xiaomi Redmi 13C 4GB 128GB",
		"OPPO Reno 11 8GB 256GB",
		"OPPO Reno 11F 8GB 256GB",
		"OPPO A78 8GB 256GB",
		"OPPO A79 8GB 128GB",
		"Realme 12 Pro 8GB 256GB",
		"Realme 12+ 8GB 256GB",
		"Realme C67 6GB 128GB",
		"Samsung Galaxy A24 8GB 128GB",
		"Samsung Galaxy A34 8GB 128GB",
		"Samsung Galaxy A54 8GB 256GB",
		"Xiaomi Redmi Note 12 8GB 128GB",
		"Xiaomi Redmi Note 12S 8GB 256GB",
		"Xiaomi Redmi Note 11 6GB 128GB",
		"POCO M6 Pro 8GB 256GB",
		"POCO C65 6GB 128GB",
		"OPPO A58 8GB 128GB",
		"Realme C53 6GB 128GB",
		"Realme Narzo 70 8GB 128GB",
		"Samsung Galaxy A15 4GB 128GB",
		"Xiaomi Redmi Note 13 Pro+ 12GB 512GB",
	}
}

// AirConditioners returns the air conditioner section of the catalog.
func AirConditioners() []string {
	return []string{
		"Carrier Split Air Conditioner 1.5 HP Cool",
		"Carrier Split Air Conditioner 2.25 HP Cool",
		"Carrier Split Air Conditioner 3 HP Cool",
		"Carrier Optimax Inverter 1.5 HP Cool",
		"Sharp Split Air Conditioner 1.5 HP Cool",
		"Sharp Split Air Conditioner 2.25 HP Cool",
		"Sharp Split Air Conditioner 3 HP Cool",
		"Unionaire Split Air Conditioner 1.5 HP Cool",
		"Unionaire Split Air Conditioner 2.25 HP Cool",
		"LG Dual Inverter 1.5 HP Cool",
		"LG Dual Inverter 2.25 HP Cool",
		"Tornado Split Air Conditioner 1.5 HP Cool",
		"Tornado Split Air Conditioner 2.25 HP Cool",
		"Fresh Split Air Conditioner 1.5 HP Cool",
		"Fresh Split Air Conditioner 2.25 HP Cool",
		"Midea Split Air Conditioner 1.5 HP Cool",
		"Midea Split Air Conditioner 2.25 HP Cool",
		"Carrier Optimum Inverter 1.5 HP Cool",
		"Sharp Plasmacluster 1.5 HP Cool",
		"Unionaire Artify 1.5 HP Cool",
	}
}

// Default returns the full catalog in sheet order: TVs, phones, then
// air conditioners.
func Default() []string {
	products := make([]string, 0, 80)
	products = append(products, TVs()...)
	products = append(products, Phones()...)
	products = append(products, AirConditioners()...)
	return products
}
