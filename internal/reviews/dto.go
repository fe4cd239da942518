package reviews

// CreateReviewInput is the request payload for posting a review. At
// least one of product_id / vendor_id must be present; both at once is
// allowed and recomputes both subjects.
type CreateReviewInput struct {
	ProductID *string `json:"product_id,omitempty"`
	VendorID  *string `json:"vendor_id,omitempty"`
	Rating    int     `json:"rating" validate:"required,min=1,max=5"`
	Comment   string  `json:"comment,omitempty"`
}

// RatingStats is a raw aggregate over the reviews of one subject.
type RatingStats struct {
	Average float64
	Count   int
}
