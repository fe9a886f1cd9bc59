package httphandler

type (
	Product struct {
		SKU         string   `json:"sku"`
		Title       string   `json:"title"`
		Price       string   `json:"price"`
		ImageURL    string   `json:"image_url"`
		Categories  []string `json:"categories"`
		Description string   `json:"description"`
	}

	CatalogPage struct {
		Products []Product `json:"products"`
		HasMore  bool      `json:"has_more"`
	}

	CategoriesResponse struct {
		Categories []string `json:"categories"`
	}
)

type (
	AddItem struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Price string `json:"price"`
		Image string `json:"image"`
	}

	QuantityUpdate struct {
		Quantity int `json:"quantity"`
	}

	OpenFlag struct {
		Open bool `json:"open"`
	}

	CartItem struct {
		ID         string `json:"id"`
		Title      string `json:"title"`
		PriceCents int64  `json:"price_cents"`
		Price      string `json:"price"`
		Image      string `json:"image"`
		Quantity   int    `json:"quantity"`
	}

	Cart struct {
		Items         []CartItem `json:"items"`
		IsOpen        bool       `json:"is_open"`
		Count         int        `json:"count"`
		SubtotalCents int64      `json:"subtotal_cents"`
		Subtotal      string     `json:"subtotal"`
	}
)

type (
	CheckoutDraft struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Address string `json:"address"`
		City    string `json:"city"`
		Card    string `json:"card"`
	}

	CheckoutResult struct {
		OrderID    string `json:"order_id"`
		TotalCents int64  `json:"total_cents"`
		Total      string `json:"total"`
	}

	Bestseller struct {
		SKU       string `json:"sku"`
		UnitsSold int64  `json:"units_sold"`
	}
)
