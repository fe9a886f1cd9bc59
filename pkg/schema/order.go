package schema

const OrderPlacedSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "order_placed",
	"fields": [
		{"name": "order_id", "type": "string"},
		{"name": "email", "type": "string"},
		{"name": "items", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "order_item",
				"fields": [
					{"name": "sku", "type": "string"},
					{"name": "title", "type": "string"},
					{"name": "price_cents", "type": "long"},
					{"name": "quantity", "type": "int"}
				]
			}
		}},
		{"name": "subtotal_cents", "type": "long"},
		{"name": "shipping_cents", "type": "long"},
		{"name": "total_cents", "type": "long"},
		{"name": "created_at", "type": "string"}
	]
}`

type (
	OrderPlacedV1 struct {
		OrderID       string        `avro:"order_id"`
		Email         string        `avro:"email"`
		Items         []OrderItemV1 `avro:"items"`
		SubtotalCents int64         `avro:"subtotal_cents"`
		ShippingCents int64         `avro:"shipping_cents"`
		TotalCents    int64         `avro:"total_cents"`
		CreatedAt     string        `avro:"created_at"`
	}

	OrderItemV1 struct {
		SKU        string `avro:"sku"`
		Title      string `avro:"title"`
		PriceCents int64  `avro:"price_cents"`
		Quantity   int    `avro:"quantity"`
	}
)
