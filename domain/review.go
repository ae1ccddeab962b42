package domain

// Review is a single product review shown in the reviews drawer.
type Review struct {
	User   string
	Rating int // 1..5
	Text   string
}

// MockReviews returns the placeholder reviews shown until a review backend exists.
func MockReviews() []Review {
	return []Review{
		{User: "Aditi", Rating: 5, Text: "Great quality, totally worth it!"},
		{User: "Rohit", Rating: 4, Text: "Looks premium, delivery was fast."},
		{User: "Maya", Rating: 4, Text: "Exactly as shown. Good value."},
	}
}
