package customer

import (
	"errors"
	"fmt"
)

var (
	ErrStreetRequired  = errors.New("street is required")
	ErrNumberRequired  = errors.New("number is required")
	ErrCityRequired    = errors.New("city is required")
	ErrZipcodeRequired = errors.New("zipcode is required")
)

// Address is a value object; build it with NewAddress.
type Address struct {
	Street  string `json:"street"`
	Number  int    `json:"number"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
} // @name customer.Address

func NewAddress(street string, number int, city, zipcode string) (Address, error) {
	a := Address{
		Street:  street,
		Number:  number,
		City:    city,
		Zipcode: zipcode,
	}

	if err := a.Validate(); err != nil {
		return Address{}, err
	}

	return a, nil
}

func (a Address) Validate() error {
	switch {
	case a.Street == "":
		return ErrStreetRequired
	case a.Number == 0:
		return ErrNumberRequired
	case a.City == "":
		return ErrCityRequired
	case a.Zipcode == "":
		return ErrZipcodeRequired
	}

	return nil
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %d, %s - %s", a.Street, a.Number, a.City, a.Zipcode)
}
