package models

// ProductRecord is the durable result of processing one artisan submission.
// Records are append-only: once written they are never mutated or deleted.
// Image and Audio hold stored artifact filenames and are nil when the
// submission carried no upload.
type ProductRecord struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Image      *string  `json:"image"`
	Audio      *string  `json:"audio"`
	Transcript string   `json:"transcript"`
	Story      string   `json:"story"`
	Tags       []string `json:"tags"`
	PriceRange string   `json:"price_range"`
	QR         string   `json:"qr"`
	CreatedAt  string   `json:"created_at"`
}
