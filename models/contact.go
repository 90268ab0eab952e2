// models/contact.go
package models

// ContactForm holds the fields submitted by the public contact form.
type ContactForm struct {
	Name       string `json:"name" form:"name"`
	Telephone  string `json:"telephone" form:"telephone"`
	Email      string `json:"email" form:"email"`
	TravelDate string `json:"travelDate" form:"travelDate"`
	City       string `json:"city" form:"city"`
	Guests     string `json:"guests" form:"guests"`
	Rooms      string `json:"rooms" form:"rooms"`
	HouseType  string `json:"houseType" form:"houseType"`
}
