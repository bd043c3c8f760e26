// Package inventory loads the vehicle record sets backing the bot's listings.
package inventory

// Record is one vehicle as stored in a category's cars.json file. Records are
// loaded fresh for every request and never mutated. VIN is an opaque
// identifier; duplicates are allowed and rendered independently.
type Record struct {
	Year       int      `json:"year"`
	Make       string   `json:"make"`
	Model      string   `json:"model"`
	Price      float64  `json:"price"`
	VIN        string   `json:"vin"`
	Condition  string   `json:"condition"`
	Mileage    float64  `json:"mileage"`
	FuelType   string   `json:"fuel_type"`
	ImagePaths []string `json:"image_paths,omitempty"`
}
