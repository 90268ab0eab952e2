// models/property.go
package models

// PropertyData holds the stored fields of a property record. The record key
// is kept outside this struct so the same shape can be written to the
// database without persisting its own id.
type PropertyData struct {
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Bedrooms     int     `json:"bedrooms"`
	Bathrooms    int     `json:"bathrooms"`
	PropertyType string  `json:"propertyType"`
	Period       string  `json:"period"`
	ImageURL     string  `json:"imageUrl"`
}

// Property is a persisted record annotated with its generated key.
type Property struct {
	ID string `json:"id"`
	PropertyData
}

// ApplyCreateDefaults fills the defaults used at creation time. Numeric
// fields already default to zero; only the property type carries a non-zero
// default.
func (p *PropertyData) ApplyCreateDefaults() {
	if p.PropertyType == "" {
		p.PropertyType = "Rent"
	}
}
